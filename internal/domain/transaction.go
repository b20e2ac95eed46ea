package domain

import "time"

type subscriber struct {
	eventName string
	handler   func(Event)
}

// Transaction is the aggregate root governing a single payer to payee
// value movement. It owns both wallets for the duration of a transfer
// and emits a value_transferred event when the transfer succeeds.
type Transaction struct {
	id          Identifier
	payerWallet *Wallet
	payeeWallet *Wallet
	value       Money

	// Transient; never persisted.
	subscribers []subscriber
}

// NewTransaction reconstitutes both wallets from their snapshots and
// validates the transfer value. Value validity is checked before the
// same-party rule, so an invalid value surfaces first.
func NewTransaction(payer, payee WalletData, rawValue float64) (*Transaction, error) {
	payerWallet := ReconstituteWallet(payer)
	payeeWallet := ReconstituteWallet(payee)

	value, err := NewMoney(rawValue)
	if err != nil {
		return nil, err
	}
	if payerWallet.ID().Equals(payeeWallet.ID()) {
		return nil, ErrPayerAndPayeeAreTheSame
	}

	return &Transaction{
		id:          NewRandomIdentifier(),
		payerWallet: payerWallet,
		payeeWallet: payeeWallet,
		value:       value,
	}, nil
}

func (t *Transaction) ID() Identifier       { return t.id }
func (t *Transaction) PayerWallet() *Wallet { return t.payerWallet }
func (t *Transaction) PayeeWallet() *Wallet { return t.payeeWallet }
func (t *Transaction) Value() Money         { return t.value }

// Subscribe registers a handler invoked synchronously, in registration
// order, when Transfer emits an event with a matching name. Call it
// before Transfer.
func (t *Transaction) Subscribe(eventName string, handler func(Event)) {
	t.subscribers = append(t.subscribers, subscriber{eventName: eventName, handler: handler})
}

// Transfer moves the transaction value from the payer to the payee.
// The payer category is checked before any balance mutation. A debit
// failure leaves both wallets untouched. A credit failure leaves the
// payer debited: the aggregate does not compensate, the atomic persist
// that only happens after full success is what keeps storage consistent.
func (t *Transaction) Transfer() error {
	if t.payerWallet.Category() == CategoryMerchant {
		return ErrMerchantCannotTransfer
	}

	if err := t.payerWallet.Debit(t.value.Float64()); err != nil {
		return err
	}
	if err := t.payeeWallet.Credit(t.value.Float64()); err != nil {
		return err
	}

	t.notify(Event{
		Name:        EventValueTransferred,
		AggregateID: t.id.String(),
		OccurredAt:  time.Now().UTC(),
	})
	return nil
}

func (t *Transaction) notify(event Event) {
	for _, s := range t.subscribers {
		if s.eventName == event.Name {
			s.handler(event)
		}
	}
}
