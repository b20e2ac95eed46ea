package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID            string          `gorm:"type:uuid;primarykey"`
	PayerWalletID string          `gorm:"type:uuid;not null;index"`
	PayeeWalletID string          `gorm:"type:uuid;not null;index"`
	Value         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time
}
