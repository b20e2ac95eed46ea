// Package history serves a customer's transaction history through a
// Redis-backed read-side cache.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pingo/internal/domain"
	"pingo/internal/models"
	"pingo/internal/validation"
)

// ErrCustomerNotFound is returned when the customer id is well formed
// but unknown.
var ErrCustomerNotFound = &domain.Failure{
	Code:    "CUSTOMER_NOT_FOUND",
	Message: "customer not found",
}

// Record is one transaction in a customer's history.
type Record struct {
	ID            string  `json:"id"`
	PayerWalletID string  `json:"payerWalletId"`
	PayeeWalletID string  `json:"payeeWalletId"`
	Value         float64 `json:"value"`
}

// TransactionReader lists persisted transactions for a customer.
type TransactionReader interface {
	ListByCustomerID(ctx context.Context, customerID string) ([]models.Transaction, error)
}

// UserGateway answers customer existence checks.
type UserGateway interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Cache is the read-side cache. Get reports whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}

type Service interface {
	GetByCustomerID(ctx context.Context, customerID *string) ([]Record, error)
}

type service struct {
	transactions TransactionReader
	users        UserGateway
	cache        Cache
	cacheTTL     time.Duration
}

// NewService creates a new history service.
func NewService(transactions TransactionReader, users UserGateway, cache Cache, cacheTTL time.Duration) Service {
	if transactions == nil {
		panic("transaction reader is required")
	}
	if users == nil {
		panic("user gateway is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	return &service{
		transactions: transactions,
		users:        users,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *service) GetByCustomerID(ctx context.Context, customerID *string) ([]Record, error) {
	if err := validation.CustomerID(customerID); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, *customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	key := cacheKey(*customerID)
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		// Cache trouble degrades to a database read.
		slog.Warn("history cache read failed", "customer_id", *customerID, "err", err)
	} else if ok {
		var records []Record
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			return records, nil
		}
		slog.Warn("discarding corrupt history cache entry", "customer_id", *customerID)
	}

	transactions, err := s.transactions.ListByCustomerID(ctx, *customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	records := make([]Record, 0, len(transactions))
	for _, txn := range transactions {
		value, _ := txn.Value.Float64()
		records = append(records, Record{
			ID:            txn.ID,
			PayerWalletID: txn.PayerWalletID,
			PayeeWalletID: txn.PayeeWalletID,
			Value:         value,
		})
	}

	if data, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
			slog.Warn("history cache write failed", "customer_id", *customerID, "err", err)
		}
	}
	return records, nil
}

func cacheKey(customerID string) string {
	return "transactions:customer:" + customerID
}
