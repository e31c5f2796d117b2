package handlers

import (
	"errors"
	"io"

	"github.com/Manoj7ar/float-your-ai-cfo/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// ExtractInvoice accepts a multipart upload (field "file", PDF/PNG/JPG),
// forwards it to the extraction model and stores the resulting invoice
// against the caller's account.
func (h *InvoiceHandler) ExtractInvoice(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	contentType := file.Header.Get("Content-Type")

	result, err := h.invoiceService.ExtractFromUpload(c.Context(), userID, content, contentType, file.Filename)
	if err != nil {
		h.logger.Error("Failed to extract invoice", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrNoAccount):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No account found",
			})
		case errors.Is(err, service.ErrExtractionFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "AI extraction failed",
			})
		case errors.Is(err, service.ErrUnparsableReply):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Could not parse invoice data from AI response",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to extract invoice",
			})
		}
	}

	return c.JSON(result)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
