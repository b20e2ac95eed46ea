// Package models defines the persistence records mapped by GORM.
package models

import "time"

// User categories. The category gates transfer capability: merchants
// receive but never send.
const (
	UserCategoryStandard = "STANDARD"
	UserCategoryMerchant = "MERCHANT"
)

type User struct {
	ID        string `gorm:"type:uuid;primarykey"`
	FullName  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Document  string `gorm:"uniqueIndex;not null"`
	Category  string `gorm:"not null;default:'STANDARD'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
