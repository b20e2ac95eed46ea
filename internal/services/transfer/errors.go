package transfer

import "pingo/internal/domain"

// Use-case failures
var (
	ErrUnauthorizedTransfer = &domain.Failure{
		Code:    "UNAUTHORIZED_TRANSFER",
		Message: "the transfer was not authorized",
	}
	ErrPayerWalletNotFound = &domain.Failure{
		Code:    "PAYER_WALLET_NOT_FOUND",
		Message: "payer wallet not found",
	}
	ErrPayeeWalletNotFound = &domain.Failure{
		Code:    "PAYEE_WALLET_NOT_FOUND",
		Message: "payee wallet not found",
	}
)
