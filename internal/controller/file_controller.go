package controller

import (
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	service service.IFileService
}

func NewFileController(service service.IFileService) IFileController {
	return &fileController{service: service}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/upload", c.Upload)
	h.Get("", c.GetAll)
	h.Delete(":id", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	folderId, err := uuid.Parse(ctx.FormValue("folder_id"))
	if err != nil {
		return apperror.BadRequest("folder_id is required")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.BadRequest("file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := c.service.Upload(ctx.Context(), userId, folderId, fileHeader.Filename, f, fileHeader.Size, contentType)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *fileController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	folderId, err := uuid.Parse(ctx.Query("folderId"))
	if err != nil {
		return apperror.BadRequest("folderId query is required")
	}

	res, err := c.service.GetAllByFolder(ctx.Context(), userId, folderId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all files", res))
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete file", nil))
}
