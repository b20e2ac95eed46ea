package repositories

import (
	"context"
	"fmt"

	"pingo/internal/models"

	"gorm.io/gorm"
)

// TransactionReader serves the transaction-history read side.
type TransactionReader struct {
	db *gorm.DB
}

func NewTransactionReader(db *gorm.DB) *TransactionReader {
	return &TransactionReader{db: db}
}

// ListByCustomerID returns every transaction where the customer owns the
// payer or the payee wallet, newest first.
func (r *TransactionReader) ListByCustomerID(ctx context.Context, customerID string) ([]models.Transaction, error) {
	walletIDs := r.db.Model(&models.Wallet{}).Select("id").Where("user_id = ?", customerID)

	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("payer_wallet_id IN (?)", walletIDs).
		Or("payee_wallet_id IN (?)", r.db.Model(&models.Wallet{}).Select("id").Where("user_id = ?", customerID)).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for customer %s: %w", customerID, err)
	}
	return transactions, nil
}
