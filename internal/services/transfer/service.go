// Package transfer implements the transfer use case: validate, authorize,
// load both wallets, drive the transaction aggregate, persist atomically
// and forward the emitted event to the external queue.
package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pingo/internal/domain"
	"pingo/internal/telemetry"
	"pingo/internal/validation"
)

// Input is the raw transfer request. Fields stay undecoded JSON so
// validation can check presence, type and format per field in declared
// order and report the right token.
type Input struct {
	PayerID json.RawMessage `json:"payerId"`
	PayeeID json.RawMessage `json:"payeeId"`
	Value   json.RawMessage `json:"value"`
}

// Service executes transfers. A successful call returns nil: the caller
// gets no payload, only the synchronous answer that the money moved.
type Service interface {
	Transfer(ctx context.Context, input Input) error
}

type service struct {
	repo       TransactionRepository
	wallets    WalletGateway
	authorizer AuthorizerGateway
	events     EventPublisher
}

// NewService creates a new transfer service.
func NewService(
	repo TransactionRepository,
	wallets WalletGateway,
	authorizer AuthorizerGateway,
	events EventPublisher,
) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	if wallets == nil {
		panic("wallet gateway is required")
	}
	if authorizer == nil {
		panic("authorizer gateway is required")
	}
	if events == nil {
		panic("event publisher is required")
	}
	return &service{
		repo:       repo,
		wallets:    wallets,
		authorizer: authorizer,
		events:     events,
	}
}

func (s *service) Transfer(ctx context.Context, input Input) error {
	err := s.transfer(ctx, input)
	if err != nil {
		telemetry.TransfersTotal.WithLabelValues("failed").Inc()
		if code := domain.FailureCode(err); code != "" {
			telemetry.TransferFailuresTotal.WithLabelValues(code).Inc()
		}
		return err
	}
	telemetry.TransfersTotal.WithLabelValues("success").Inc()
	return nil
}

func (s *service) transfer(ctx context.Context, input Input) error {
	payerID, payeeID, value, err := validation.TransferInput(input.PayerID, input.PayeeID, input.Value)
	if err != nil {
		return err
	}

	authorized, err := s.authorizer.Authorize(ctx)
	if err != nil {
		return fmt.Errorf("failed to authorize transfer: %w", err)
	}
	if !authorized {
		return ErrUnauthorizedTransfer
	}

	payer, err := s.wallets.FindOneByOwnerID(ctx, payerID)
	if err != nil {
		return fmt.Errorf("failed to load payer wallet: %w", err)
	}
	payee, err := s.wallets.FindOneByOwnerID(ctx, payeeID)
	if err != nil {
		return fmt.Errorf("failed to load payee wallet: %w", err)
	}
	if payer == nil {
		return ErrPayerWalletNotFound
	}
	if payee == nil {
		return ErrPayeeWalletNotFound
	}

	txn, err := domain.NewTransaction(*payer, *payee, value)
	if err != nil {
		return err
	}

	// The aggregate notifies subscribers synchronously during Transfer;
	// the outbound publish is deferred until the transfer is durable.
	var emitted []domain.Event
	txn.Subscribe(domain.EventValueTransferred, func(event domain.Event) {
		emitted = append(emitted, event)
	})

	if err := txn.Transfer(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return fmt.Errorf("failed to persist transaction: %w", err)
	}

	// The caller's answer does not depend on the notification consumer:
	// the broker takes over delivery from here. A publish error is logged
	// rather than failing a transfer that is already durable.
	for _, event := range emitted {
		if err := s.events.Publish(domain.EventValueTransferred, event); err != nil {
			slog.Error("failed to publish transfer event",
				"aggregate_id", event.AggregateID, "err", err)
		}
	}

	telemetry.TransferValue.Observe(txn.Value().Float64())
	return nil
}
