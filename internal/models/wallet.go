package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        string          `gorm:"type:uuid;primarykey"`
	UserID    string          `gorm:"type:uuid;uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
