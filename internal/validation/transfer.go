// Package validation checks request input against the transfer API
// schema. Rules run in a fixed, declared order and the first failing
// rule wins, so the surfaced token is deterministic.
package validation

import (
	"encoding/json"
	"strings"

	"pingo/internal/domain"
)

var (
	ErrPayerIDRequired = &domain.Failure{Code: "PAYER_ID_IS_REQUIRED", Message: "payer id is required"}
	ErrPayerIDString   = &domain.Failure{Code: "PAYER_ID_MUST_BE_STRING", Message: "payer id must be a string"}
	ErrPayerIDUUID     = &domain.Failure{Code: "PAYER_ID_MUST_BE_UUID", Message: "payer id must be a valid UUID"}

	ErrPayeeIDRequired = &domain.Failure{Code: "PAYEE_ID_IS_REQUIRED", Message: "payee id is required"}
	ErrPayeeIDString   = &domain.Failure{Code: "PAYEE_ID_MUST_BE_STRING", Message: "payee id must be a string"}
	ErrPayeeIDUUID     = &domain.Failure{Code: "PAYEE_ID_MUST_BE_UUID", Message: "payee id must be a valid UUID"}

	ErrValueRequired = &domain.Failure{Code: "VALUE_IS_REQUIRED", Message: "value is required"}
	ErrValueNumber   = &domain.Failure{Code: "VALUE_MUST_BE_NUMBER", Message: "value must be a number"}

	ErrCustomerIDRequired = &domain.Failure{Code: "CUSTOMER_ID_IS_REQUIRED", Message: "customer id is required"}
	ErrCustomerIDString   = &domain.Failure{Code: "CUSTOMER_ID_MUST_BE_STRING", Message: "customer id must be a string"}
	ErrCustomerIDUUID     = &domain.Failure{Code: "CUSTOMER_ID_MUST_BE_UUID", Message: "customer id must be a valid UUID"}
)

// TransferInput validates the raw transfer request fields in declared
// order: payer id (required, string, UUID), payee id (required, string,
// UUID), value (required, number). Fields arrive as raw JSON so a wrong
// type on a later field never preempts an earlier field's failure.
// On success the parsed field values are returned.
func TransferInput(payerID, payeeID, value json.RawMessage) (string, string, float64, error) {
	if len(payerID) == 0 {
		return "", "", 0, ErrPayerIDRequired
	}
	payer, ok := decodeString(payerID)
	if !ok {
		return "", "", 0, ErrPayerIDString
	}
	payer = strings.TrimSpace(payer)
	if _, err := domain.NewIdentifier(payer); err != nil {
		return "", "", 0, ErrPayerIDUUID
	}

	if len(payeeID) == 0 {
		return "", "", 0, ErrPayeeIDRequired
	}
	payee, ok := decodeString(payeeID)
	if !ok {
		return "", "", 0, ErrPayeeIDString
	}
	payee = strings.TrimSpace(payee)
	if _, err := domain.NewIdentifier(payee); err != nil {
		return "", "", 0, ErrPayeeIDUUID
	}

	if len(value) == 0 {
		return "", "", 0, ErrValueRequired
	}
	amount, ok := decodeNumber(value)
	if !ok {
		return "", "", 0, ErrValueNumber
	}

	return payer, payee, amount, nil
}

// CustomerID validates the history request parameter.
func CustomerID(customerID *string) error {
	if customerID == nil {
		return ErrCustomerIDRequired
	}
	if _, err := domain.NewIdentifier(strings.TrimSpace(*customerID)); err != nil {
		return ErrCustomerIDUUID
	}
	return nil
}

// decodeString reports whether raw holds a JSON string. A JSON null is
// present but not a string, so it fails the type rule, not the required
// rule.
func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	if string(raw) == "null" {
		return "", false
	}
	return s, true
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if string(raw) == "null" {
		return 0, false
	}
	return f, true
}
