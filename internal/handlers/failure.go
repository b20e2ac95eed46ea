package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"pingo/internal/domain"
	"pingo/internal/utils/response"
)

// statusForCode maps a business failure code to the HTTP status used to
// report it. The codes are listed exhaustively; a code outside the list
// is treated as an unexpected error and surfaces as a 500.
func statusForCode(code string) int {
	switch code {
	case "PAYER_WALLET_NOT_FOUND", "PAYEE_WALLET_NOT_FOUND", "CUSTOMER_NOT_FOUND":
		return fiber.StatusNotFound
	case "UNAUTHORIZED_TRANSFER", "PAYER_AND_PAYEE_ARE_THE_SAME", "SHOPKEEPERS_CANNOT_MAKE_TRANSFERS":
		return fiber.StatusConflict
	case "PAYER_ID_IS_REQUIRED", "PAYER_ID_MUST_BE_STRING", "PAYER_ID_MUST_BE_UUID",
		"PAYEE_ID_IS_REQUIRED", "PAYEE_ID_MUST_BE_STRING", "PAYEE_ID_MUST_BE_UUID",
		"VALUE_IS_REQUIRED", "VALUE_MUST_BE_NUMBER",
		"CUSTOMER_ID_IS_REQUIRED", "CUSTOMER_ID_MUST_BE_STRING", "CUSTOMER_ID_MUST_BE_UUID",
		"NOT_A_NUMBER", "NEGATIVE_AMOUNT", "INVALID_IDENTIFIER", "INSUFFICIENT_BALANCE":
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func renderError(c *fiber.Ctx, err error) error {
	if code := domain.FailureCode(err); code != "" {
		if status := statusForCode(code); status != fiber.StatusInternalServerError {
			return response.Failure(c, status, code, err.Error())
		}
	}
	slog.Error("unexpected handler error", "path", c.Path(), "error", err)
	return response.ServerError(c, "internal server error")
}
