package controller

import (
	"fmt"

	"med-voice-be/internal/dto"
	"med-voice-be/internal/pkg/serverutils"
	"med-voice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatRoomController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	AddMessage(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatRoomController struct {
	service service.IChatRoomService
}

func NewChatRoomController(service service.IChatRoomService) IChatRoomController {
	return &chatRoomController{service: service}
}

func (c *chatRoomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat-rooms")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/messages", c.AddMessage)
	h.Delete(":id", c.Delete)
}

func (c *chatRoomController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.CreateRoom(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat room", res))
}

func (c *chatRoomController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllRooms(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all chat rooms", res))
}

func (c *chatRoomController) Show(ctx *fiber.Ctx) error {
	id, err := parseRoomId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetRoomWithMessages(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat room", res))
}

func (c *chatRoomController) AddMessage(ctx *fiber.Ctx) error {
	id, err := parseRoomId(ctx)
	if err != nil {
		return err
	}

	var req dto.AddMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddMessage(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add chat message", res))
}

func (c *chatRoomController) Delete(ctx *fiber.Ctx) error {
	id, err := parseRoomId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteRoom(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// parseRoomId treats a malformed id the same as an unknown one.
func parseRoomId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("chat room %s: %w", ctx.Params("id"), serverutils.ErrNotFound)
	}
	return id, nil
}
