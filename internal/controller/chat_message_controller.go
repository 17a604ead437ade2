package controller

import (
	"chat-storage-be/internal/dto"
	"chat-storage-be/internal/pkg/serverutils"
	"chat-storage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage = 0
	defaultSize = 20
)

type IChatMessageController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	GetPage(ctx *fiber.Ctx) error
}

type chatMessageController struct {
	service service.IChatMessageService
}

func NewChatMessageController(service service.IChatMessageService) IChatMessageController {
	return &chatMessageController{service: service}
}

func (c *chatMessageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions/:sessionId/messages")
	h.Post("", c.Add)
	h.Get("", c.GetPage)
}

func (c *chatMessageController) Add(ctx *fiber.Ctx) error {
	sessionId, err := parseId(ctx, "sessionId")
	if err != nil {
		return err
	}

	var req dto.AddMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.JSON(res)
}

func (c *chatMessageController) GetPage(ctx *fiber.Ctx) error {
	sessionId, err := parseId(ctx, "sessionId")
	if err != nil {
		return err
	}

	page := ctx.QueryInt("page", defaultPage)
	if page < 0 {
		page = defaultPage
	}
	size := ctx.QueryInt("size", defaultSize)
	if size <= 0 {
		size = defaultSize
	}

	res, err := c.service.GetPage(ctx.Context(), sessionId, page, size)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.JSON(res)
}
