package controller

import (
	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/pkg/serverutils"
	"ironlady-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
	BySession(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackController(feedbackService service.IFeedbackService) IFeedbackController {
	return &feedbackController{
		feedbackService: feedbackService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback")
	h.Post("", c.Submit)
	h.Get("/stats", c.Stats)
	h.Get("/recent", c.Recent)
	h.Get("/session/:id", c.BySession)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.feedbackService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}

func (c *feedbackController) Stats(ctx *fiber.Ctx) error {
	res, err := c.feedbackService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feedback stats", res))
}

func (c *feedbackController) Recent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)

	res, err := c.feedbackService.Recent(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recent feedback", res))
}

func (c *feedbackController) BySession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session id is required")
	}

	res, err := c.feedbackService.BySession(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session feedback", res))
}
