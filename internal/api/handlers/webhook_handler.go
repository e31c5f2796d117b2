package handlers

import (
	"github.com/Manoj7ar/float-your-ai-cfo/internal/dto"
	"github.com/Manoj7ar/float-your-ai-cfo/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebhookHandler receives provider-pushed bank events. The endpoint carries
// no per-request auth; it trusts its transport the way the provider expects.
type WebhookHandler struct {
	webhookService *service.WebhookService
	logger         *zap.Logger
}

func NewWebhookHandler(webhookService *service.WebhookService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		logger:         logger,
	}
}

// HandleMonzoWebhook ingests one webhook delivery. Every absorbed outcome
// answers 200 so the provider never retries deliveries we chose to skip.
func (h *WebhookHandler) HandleMonzoWebhook(c *fiber.Ctx) error {
	var event dto.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		h.logger.Warn("Invalid webhook payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payload",
		})
	}

	result, err := h.webhookService.ProcessEvent(c.Context(), &event)
	if err != nil {
		h.logger.Error("Failed to process webhook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process webhook",
		})
	}

	switch result {
	case service.ResultSkipped:
		return c.JSON(fiber.Map{"ok": true, "skipped": true})
	case service.ResultDuplicate:
		return c.JSON(fiber.Map{"ok": true, "duplicate": true})
	case service.ResultUnhandled:
		return c.JSON(fiber.Map{"ok": true, "unhandled": event.Type})
	default:
		return c.JSON(fiber.Map{"ok": true})
	}
}
