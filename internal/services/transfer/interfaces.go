package transfer

import (
	"context"

	"pingo/internal/domain"
)

// AuthorizerGateway decides whether a transfer may proceed. It is
// consulted before any wallet is loaded.
type AuthorizerGateway interface {
	Authorize(ctx context.Context) (bool, error)
}

// WalletGateway loads wallet snapshots by owner id. A nil snapshot with
// a nil error means the wallet does not exist.
type WalletGateway interface {
	FindOneByOwnerID(ctx context.Context, ownerID string) (*domain.WalletData, error)
}

// TransactionRepository durably persists a completed transfer: the
// transaction record and both wallet balances in one atomic write.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
}

// EventPublisher hands a domain event to the external queue.
type EventPublisher interface {
	Publish(topic string, event domain.Event) error
}
