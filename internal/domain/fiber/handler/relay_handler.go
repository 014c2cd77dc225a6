package handler

import (
	"log"
	"strings"

	"printfolio/internal/dto"
	"printfolio/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// RelayHandler is the generation relay's HTTP surface. The response shape is
// a fixed contract with the generation service: {html} on success, a 5xx
// {error, details} payload on failure.
type RelayHandler struct {
	uc *usecase.RelayUsecase
}

func NewRelayHandler(uc *usecase.RelayUsecase) *RelayHandler {
	return &RelayHandler{uc: uc}
}

func (h *RelayHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/generate-portfolio", h.Generate)
}

func (h *RelayHandler) Generate(c *fiber.Ctx) error {
	var req dto.GeneratePortfolioRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "prompt is required",
		})
	}

	generated, err := h.uc.GeneratePortfolio(c.Context(), req.Prompt)
	if err != nil {
		log.Printf("relay: portfolio generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "portfolio generation failed",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"html": generated})
}
