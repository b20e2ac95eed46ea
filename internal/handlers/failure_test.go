package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"PAYER_WALLET_NOT_FOUND", fiber.StatusNotFound},
		{"PAYEE_WALLET_NOT_FOUND", fiber.StatusNotFound},
		{"CUSTOMER_NOT_FOUND", fiber.StatusNotFound},
		{"UNAUTHORIZED_TRANSFER", fiber.StatusConflict},
		{"PAYER_AND_PAYEE_ARE_THE_SAME", fiber.StatusConflict},
		{"SHOPKEEPERS_CANNOT_MAKE_TRANSFERS", fiber.StatusConflict},
		{"PAYER_ID_IS_REQUIRED", fiber.StatusBadRequest},
		{"PAYEE_ID_MUST_BE_STRING", fiber.StatusBadRequest},
		{"VALUE_MUST_BE_NUMBER", fiber.StatusBadRequest},
		{"CUSTOMER_ID_MUST_BE_UUID", fiber.StatusBadRequest},
		{"INSUFFICIENT_BALANCE", fiber.StatusBadRequest},
		{"NEGATIVE_AMOUNT", fiber.StatusBadRequest},
		{"NOT_A_NUMBER", fiber.StatusBadRequest},
		{"INVALID_IDENTIFIER", fiber.StatusBadRequest},
		// Codes outside the contract are not business rejections.
		{"SOMETHING_ELSE", fiber.StatusInternalServerError},
		{"", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForCode(tt.code), tt.code)
	}
}
