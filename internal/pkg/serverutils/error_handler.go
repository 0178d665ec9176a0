package serverutils

import (
	"errors"

	"study-assistant-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by controllers into the
// uniform JSON envelope. Typed app errors carry their own status mapping;
// anything unrecognized becomes a generic 500 with a best-effort message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "internal server error"

		var appErr *apperror.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = statusFromKind(appErr.Kind)
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": message,
		})
	}
}

func statusFromKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindBadRequest:
		return fiber.StatusBadRequest
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindTimeout:
		return fiber.StatusRequestTimeout
	case apperror.KindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
