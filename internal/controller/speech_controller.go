package controller

import (
	"fmt"

	"med-voice-be/internal/dto"
	"med-voice-be/internal/pkg/serverutils"
	"med-voice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpeechController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
	Synthesize(ctx *fiber.Ctx) error
}

type speechController struct {
	service service.ISpeechService
}

func NewSpeechController(service service.ISpeechService) ISpeechController {
	return &speechController{service: service}
}

func (c *speechController) RegisterRoutes(r fiber.Router) {
	r.Post("/transcribe", c.Transcribe)
	r.Post("/tts", c.Synthesize)
}

func (c *speechController) Transcribe(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("audio")
	if err != nil {
		return fmt.Errorf("audio file is required: %w", serverutils.ErrValidation)
	}

	res, err := c.service.Transcribe(ctx.Context(), file)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *speechController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	audio, err := c.service.Synthesize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "audio/mpeg")
	return ctx.Send(audio)
}
