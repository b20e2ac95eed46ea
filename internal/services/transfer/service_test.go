package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pingo/internal/domain"
)

const (
	payerOwnerID  = "fa6fb9dd-e67e-4c33-9c72-4a8990785b65"
	payeeOwnerID  = "3ce586df-e49e-495f-927f-594da350cdd2"
	payerWalletID = "b8c2f320-1d80-4adf-84ca-6120b9b01f94"
	payeeWalletID = "f8b1f0f5-0b4b-4b3f-8e9c-0e3e4d9d1d1d"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

type MockWalletGateway struct {
	mock.Mock
}

func (m *MockWalletGateway) FindOneByOwnerID(ctx context.Context, ownerID string) (*domain.WalletData, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletData), args.Error(1)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, event domain.Event) error {
	args := m.Called(topic, event)
	return args.Error(0)
}

func rawStr(s string) json.RawMessage { return json.RawMessage(`"` + s + `"`) }

func validInput() Input {
	return Input{
		PayerID: rawStr(payerOwnerID),
		PayeeID: rawStr(payeeOwnerID),
		Value:   json.RawMessage("124.5"),
	}
}

func payerWallet(category domain.WalletCategory, balance string) *domain.WalletData {
	return &domain.WalletData{
		ID:       payerWalletID,
		OwnerID:  payerOwnerID,
		Category: category,
		Balance:  decimal.RequireFromString(balance),
	}
}

func payeeWallet(balance string) *domain.WalletData {
	return &domain.WalletData{
		ID:       payeeWalletID,
		OwnerID:  payeeOwnerID,
		Category: domain.CategoryStandard,
		Balance:  decimal.RequireFromString(balance),
	}
}

func newTestService() (Service, *MockRepository, *MockWalletGateway, *MockAuthorizer, *MockPublisher) {
	repo := new(MockRepository)
	wallets := new(MockWalletGateway)
	authorizer := new(MockAuthorizer)
	publisher := new(MockPublisher)
	return NewService(repo, wallets, authorizer, publisher), repo, wallets, authorizer, publisher
}

func TestTransferSuccess(t *testing.T) {
	svc, repo, wallets, authorizer, publisher := newTestService()

	authorizer.On("Authorize", mock.Anything).Return(true, nil)
	wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryStandard, "1000"), nil)
	wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)

	var persisted *domain.Transaction
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*domain.Transaction)
	}).Return(nil)

	var published []domain.Event
	publisher.On("Publish", domain.EventValueTransferred, mock.Anything).Run(func(args mock.Arguments) {
		published = append(published, args.Get(1).(domain.Event))
	}).Return(nil)

	err := svc.Transfer(context.Background(), validInput())
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, 875.5, persisted.PayerWallet().Balance().Float64())
	assert.Equal(t, 1124.5, persisted.PayeeWallet().Balance().Float64())

	require.Len(t, published, 1)
	assert.Equal(t, domain.EventValueTransferred, published[0].Name)
	assert.Equal(t, persisted.ID().String(), published[0].AggregateID)

	repo.AssertExpectations(t)
	wallets.AssertExpectations(t)
	authorizer.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTransferUnauthorized(t *testing.T) {
	svc, repo, wallets, authorizer, publisher := newTestService()
	authorizer.On("Authorize", mock.Anything).Return(false, nil)

	err := svc.Transfer(context.Background(), validInput())
	assert.Equal(t, "UNAUTHORIZED_TRANSFER", domain.FailureCode(err))

	// Authorization denial happens before any wallet lookup.
	wallets.AssertNotCalled(t, "FindOneByOwnerID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestTransferWalletLookupFailures(t *testing.T) {
	t.Run("payer wallet missing", func(t *testing.T) {
		svc, repo, wallets, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(nil, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)

		err := svc.Transfer(context.Background(), validInput())
		assert.Equal(t, "PAYER_WALLET_NOT_FOUND", domain.FailureCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("payee wallet missing", func(t *testing.T) {
		svc, repo, wallets, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryStandard, "1000"), nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(nil, nil)

		err := svc.Transfer(context.Background(), validInput())
		assert.Equal(t, "PAYEE_WALLET_NOT_FOUND", domain.FailureCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("payer missing wins when both are missing", func(t *testing.T) {
		svc, _, wallets, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, mock.Anything).Return(nil, nil)

		err := svc.Transfer(context.Background(), validInput())
		assert.Equal(t, "PAYER_WALLET_NOT_FOUND", domain.FailureCode(err))
	})
}

func TestTransferValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantCode string
	}{
		{name: "missing payer", input: Input{PayeeID: rawStr(payeeOwnerID), Value: json.RawMessage("10")}, wantCode: "PAYER_ID_IS_REQUIRED"},
		{name: "missing payer wins over wrong-typed payee", input: Input{PayeeID: json.RawMessage("123"), Value: json.RawMessage("10")}, wantCode: "PAYER_ID_IS_REQUIRED"},
		{name: "malformed payer", input: Input{PayerID: rawStr("abc"), PayeeID: rawStr(payeeOwnerID), Value: json.RawMessage("10")}, wantCode: "PAYER_ID_MUST_BE_UUID"},
		{name: "wrong-typed payee", input: Input{PayerID: rawStr(payerOwnerID), PayeeID: json.RawMessage("123"), Value: json.RawMessage("10")}, wantCode: "PAYEE_ID_MUST_BE_STRING"},
		{name: "missing payee", input: Input{PayerID: rawStr(payerOwnerID), Value: json.RawMessage("10")}, wantCode: "PAYEE_ID_IS_REQUIRED"},
		{name: "malformed payee", input: Input{PayerID: rawStr(payerOwnerID), PayeeID: rawStr("abc"), Value: json.RawMessage("10")}, wantCode: "PAYEE_ID_MUST_BE_UUID"},
		{name: "missing value", input: Input{PayerID: rawStr(payerOwnerID), PayeeID: rawStr(payeeOwnerID)}, wantCode: "VALUE_IS_REQUIRED"},
		{name: "wrong-typed value", input: Input{PayerID: rawStr(payerOwnerID), PayeeID: rawStr(payeeOwnerID), Value: json.RawMessage(`"abc"`)}, wantCode: "VALUE_MUST_BE_NUMBER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, authorizer, _ := newTestService()

			err := svc.Transfer(context.Background(), tt.input)
			assert.Equal(t, tt.wantCode, domain.FailureCode(err))

			// Validation fails before the authorizer is consulted.
			authorizer.AssertNotCalled(t, "Authorize", mock.Anything)
		})
	}
}

func TestTransferDomainRules(t *testing.T) {
	t.Run("merchant payer", func(t *testing.T) {
		svc, repo, wallets, authorizer, publisher := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryMerchant, "1000"), nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)

		err := svc.Transfer(context.Background(), validInput())
		assert.Equal(t, "SHOPKEEPERS_CANNOT_MAKE_TRANSFERS", domain.FailureCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc, repo, wallets, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryStandard, "100"), nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)

		err := svc.Transfer(context.Background(), validInput())
		assert.Equal(t, "INSUFFICIENT_BALANCE", domain.FailureCode(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("same payer and payee wallet", func(t *testing.T) {
		svc, _, wallets, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		same := payerWallet(domain.CategoryStandard, "1000")
		wallets.On("FindOneByOwnerID", mock.Anything, mock.Anything).Return(same, nil)

		input := validInput()
		input.PayeeID = rawStr(payerOwnerID)
		err := svc.Transfer(context.Background(), input)
		assert.Equal(t, "PAYER_AND_PAYEE_ARE_THE_SAME", domain.FailureCode(err))
	})
}

func TestTransferInfrastructureErrors(t *testing.T) {
	t.Run("authorizer error propagates as fault", func(t *testing.T) {
		svc, _, _, authorizer, _ := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(false, errors.New("connection refused"))

		err := svc.Transfer(context.Background(), validInput())
		require.Error(t, err)
		assert.Empty(t, domain.FailureCode(err))
	})

	t.Run("repository error propagates as fault", func(t *testing.T) {
		svc, repo, wallets, authorizer, publisher := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryStandard, "1000"), nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

		err := svc.Transfer(context.Background(), validInput())
		require.Error(t, err)
		assert.Empty(t, domain.FailureCode(err))
		// Nothing durable, nothing published.
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("publish error does not fail a durable transfer", func(t *testing.T) {
		svc, repo, wallets, authorizer, publisher := newTestService()
		authorizer.On("Authorize", mock.Anything).Return(true, nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payerOwnerID).Return(payerWallet(domain.CategoryStandard, "1000"), nil)
		wallets.On("FindOneByOwnerID", mock.Anything, payeeOwnerID).Return(payeeWallet("1000"), nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		publisher.On("Publish", domain.EventValueTransferred, mock.Anything).Return(errors.New("broker down"))

		err := svc.Transfer(context.Background(), validInput())
		assert.NoError(t, err)
	})
}
