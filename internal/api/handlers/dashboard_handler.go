package handlers

import (
	"errors"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) ListInvoices(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	invoices, err := h.dashboardService.ListInvoices(c.Context(), userID)
	if err != nil {
		return h.respondError(c, err, "Failed to list invoices")
	}

	return c.JSON(invoices)
}

func (h *DashboardHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, err := h.dashboardService.ListTransactions(c.Context(), userID, limit)
	if err != nil {
		return h.respondError(c, err, "Failed to list transactions")
	}

	return c.JSON(transactions)
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	summary, err := h.dashboardService.Summary(c.Context(), userID)
	if err != nil {
		return h.respondError(c, err, "Failed to load summary")
	}

	return c.JSON(summary)
}

func (h *DashboardHandler) respondError(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, service.ErrNoAccount) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No account found",
		})
	}
	h.logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}
