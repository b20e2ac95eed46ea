// Package domain holds the transfer domain model: validated value objects,
// the wallet entity and the transaction aggregate that enforces transfer
// business rules and emits domain events.
package domain

import "errors"

// Failure is an expected domain failure. Code is a stable token that is
// safe to surface across the system boundary; Message is for humans.
type Failure struct {
	Code    string
	Message string
}

func (f *Failure) Error() string { return f.Message }

var (
	ErrNotANumber = &Failure{
		Code:    "NOT_A_NUMBER",
		Message: "amount is not a number",
	}
	ErrNegativeAmount = &Failure{
		Code:    "NEGATIVE_AMOUNT",
		Message: "amount cannot be negative",
	}
	ErrInvalidIdentifier = &Failure{
		Code:    "INVALID_IDENTIFIER",
		Message: "identifier is not a valid UUID",
	}
	ErrInsufficientBalance = &Failure{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrPayerAndPayeeAreTheSame = &Failure{
		Code:    "PAYER_AND_PAYEE_ARE_THE_SAME",
		Message: "payer and payee cannot be the same wallet",
	}
	ErrMerchantCannotTransfer = &Failure{
		Code:    "SHOPKEEPERS_CANNOT_MAKE_TRANSFERS",
		Message: "merchant wallets cannot make transfers",
	}
)

// FailureCode returns the stable code carried by err, or an empty string
// when err is not a domain failure.
func FailureCode(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return ""
}
