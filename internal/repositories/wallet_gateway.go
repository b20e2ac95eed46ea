package repositories

import (
	"context"
	"errors"
	"fmt"

	"pingo/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletGateway loads wallet snapshots joined with their owner's category.
type WalletGateway struct {
	db *gorm.DB
}

func NewWalletGateway(db *gorm.DB) *WalletGateway {
	return &WalletGateway{db: db}
}

// FindOneByOwnerID returns the wallet owned by the given user, or nil
// when no such wallet exists.
func (g *WalletGateway) FindOneByOwnerID(ctx context.Context, ownerID string) (*domain.WalletData, error) {
	var row struct {
		ID       string
		UserID   string
		Category string
		Balance  decimal.Decimal
	}
	err := g.db.WithContext(ctx).
		Table("wallets").
		Select("wallets.id, wallets.user_id, wallets.balance, users.category").
		Joins("JOIN users ON users.id = wallets.user_id").
		Where("wallets.user_id = ?", ownerID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet for owner %s: %w", ownerID, err)
	}

	return &domain.WalletData{
		ID:       row.ID,
		OwnerID:  row.UserID,
		Category: domain.WalletCategory(row.Category),
		Balance:  row.Balance,
	}, nil
}
