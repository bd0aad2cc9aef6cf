package http

import (
	"assist_server/core/port/in"
	"assist_server/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// AIHandler serves the classify, draft and status endpoints.
type AIHandler struct {
	aiService in.AIService
}

func NewAIHandler(aiService in.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Register mounts the handlers under /ai.
func (h *AIHandler) Register(app fiber.Router) {
	ai := app.Group("/ai")
	ai.Get("/status", h.Status)
	ai.Post("/classify", h.Classify)
	ai.Post("/draft", h.Draft)
}

// Status reports which providers have credentials and which one is used.
func (h *AIHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.aiService.ProviderStatus())
}

// Classify returns labels, a priority score, a summary and suggested actions
// for the posted email. Once the body validates the response is always 200.
func (h *AIHandler) Classify(c *fiber.Ctx) error {
	var req in.ClassifyRequest
	if err := parseBody(c, &req); err != nil {
		return AppErrorResponse(c, apperr.BadRequest("invalid request body"))
	}

	result, err := h.aiService.ClassifyEmail(c.Context(), &req)
	if err != nil {
		return AppErrorResponse(c, err)
	}

	return c.JSON(result)
}

// Draft returns three reply variants in the requested tone. Once the body
// validates the response is always 200.
func (h *AIHandler) Draft(c *fiber.Ctx) error {
	var req in.DraftRequest
	if err := parseBody(c, &req); err != nil {
		return AppErrorResponse(c, apperr.BadRequest("invalid request body"))
	}

	result, err := h.aiService.DraftReply(c.Context(), &req)
	if err != nil {
		return AppErrorResponse(c, err)
	}

	return c.JSON(result)
}
