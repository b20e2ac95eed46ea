package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pingo/internal/services/transfer"
	"pingo/internal/utils/response"
)

// TransferHandler exposes the money transfer endpoint.
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s transfer.Service) *TransferHandler { return &TransferHandler{service: s} }

// Transfer handles POST /transfer requests.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	// Fields are decoded per field inside the service's validation so
	// the reported token follows the declared field order, not the
	// position of the offending value in the document.
	var input transfer.Input
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Transfer(c.Context(), input); err != nil {
		return renderError(c, err)
	}
	return response.Success(c, "transfer completed", nil)
}
