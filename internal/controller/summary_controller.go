package controller

import (
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/apperror"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type summaryController struct {
	service service.ISummaryService
}

func NewSummaryController(service service.ISummaryService) ISummaryController {
	return &summaryController{service: service}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Get("", c.GetAll)
	h.Delete(":id", c.Delete)
}

func (c *summaryController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateSummariesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summaries", res))
}

func (c *summaryController) GetAll(ctx *fiber.Ctx) error {
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

	return ctx.JSON(serverutils.SuccessResponse("Success get all summaries", res))
}

func (c *summaryController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete summary", nil))
}
