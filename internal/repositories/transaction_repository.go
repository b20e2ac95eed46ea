package repositories

import (
	"context"
	"fmt"

	"pingo/internal/domain"
	"pingo/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository persists completed transfers.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create writes the transaction record and both updated wallet balances
// in a single database transaction. This atomic commit is what makes the
// transfer all-or-nothing at the storage layer: the in-memory aggregate
// never reaches storage in a partially applied state.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := &models.Transaction{
			ID:            txn.ID().String(),
			PayerWalletID: txn.PayerWallet().ID().String(),
			PayeeWalletID: txn.PayeeWallet().ID().String(),
			Value:         txn.Value().Decimal(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if err := tx.Model(&models.Wallet{}).
			Where("id = ?", txn.PayerWallet().ID().String()).
			Update("balance", txn.PayerWallet().Balance().Decimal()).Error; err != nil {
			return fmt.Errorf("failed to update payer balance: %w", err)
		}

		if err := tx.Model(&models.Wallet{}).
			Where("id = ?", txn.PayeeWallet().ID().String()).
			Update("balance", txn.PayeeWallet().Balance().Decimal()).Error; err != nil {
			return fmt.Errorf("failed to update payee balance: %w", err)
		}

		return nil
	})
}
