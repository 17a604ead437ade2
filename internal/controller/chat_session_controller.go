package controller

import (
	"strconv"

	"chat-storage-be/internal/dto"
	"chat-storage-be/internal/pkg/serverutils"
	"chat-storage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatSessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	SetFavorite(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatSessionController struct {
	service service.IChatSessionService
}

func NewChatSessionController(service service.IChatSessionService) IChatSessionController {
	return &chatSessionController{service: service}
}

func (c *chatSessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Patch(":id/rename", c.Rename)
	h.Patch(":id/favorite", c.SetFavorite)
	h.Delete(":id", c.Delete)
}

func (c *chatSessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Query("userId")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}
	favorite := ctx.QueryBool("favorite", false)

	res, err := c.service.GetAll(ctx.Context(), userId, favorite)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) Rename(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id")
	if err != nil {
		return err
	}
	name := ctx.Query("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	res, err := c.service.Rename(ctx.Context(), id, name)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) SetFavorite(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id")
	if err != nil {
		return err
	}
	favorite, err := strconv.ParseBool(ctx.Query("favorite"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "favorite must be a boolean")
	}

	res, err := c.service.SetFavorite(ctx.Context(), id, favorite)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.JSON(res)
}

func (c *chatSessionController) Delete(ctx *fiber.Ctx) error {
	id, err := parseId(ctx, "id")
	if err != nil {
		return err
	}

	found, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func parseId(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return uint(id), nil
}
