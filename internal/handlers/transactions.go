package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pingo/internal/services/history"
	"pingo/internal/utils/response"
)

// TransactionHandler exposes transfer history endpoints.
type TransactionHandler struct {
	service history.Service
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(s history.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListByCustomer handles GET /transactions/customers/:customerId requests.
func (h *TransactionHandler) ListByCustomer(c *fiber.Ctx) error {
	var customerID *string
	if raw := c.Params("customerId"); raw != "" {
		customerID = &raw
	}

	records, err := h.service.GetByCustomerID(c.Context(), customerID)
	if err != nil {
		return renderError(c, err)
	}
	return response.Success(c, "transactions retrieved", records)
}
