package domain

import "github.com/shopspring/decimal"

// WalletCategory restricts what a wallet may do: merchant wallets can
// receive transfers but never initiate them.
type WalletCategory string

const (
	CategoryStandard WalletCategory = "STANDARD"
	CategoryMerchant WalletCategory = "MERCHANT"
)

// WalletData is the storage-shaped snapshot used to rehydrate a wallet.
// Its values are trusted: they were validated when first written.
type WalletData struct {
	ID       string
	OwnerID  string
	Category WalletCategory
	Balance  decimal.Decimal
}

// Wallet is an owned monetary account. Identity is the wallet id: two
// wallets are the same entity iff their ids match, regardless of balance.
type Wallet struct {
	id       Identifier
	ownerID  Identifier
	category WalletCategory
	balance  Money
}

// ReconstituteWallet rebuilds a wallet from a trusted snapshot.
func ReconstituteWallet(data WalletData) *Wallet {
	return &Wallet{
		id:       ReconstituteIdentifier(data.ID),
		ownerID:  ReconstituteIdentifier(data.OwnerID),
		category: data.Category,
		balance:  ReconstituteMoney(data.Balance),
	}
}

func (w *Wallet) ID() Identifier           { return w.id }
func (w *Wallet) OwnerID() Identifier      { return w.ownerID }
func (w *Wallet) Category() WalletCategory { return w.category }
func (w *Wallet) Balance() Money           { return w.balance }

// Debit removes amount from the balance. The raw amount is validated
// through Money first, and the new balance is itself a re-validated
// Money. On any failure the balance is left untouched.
func (w *Wallet) Debit(amount float64) error {
	value, err := NewMoney(amount)
	if err != nil {
		return err
	}
	if w.balance.LessThan(value) {
		return ErrInsufficientBalance
	}
	balance, err := w.balance.Sub(value)
	if err != nil {
		return err
	}
	w.balance = balance
	return nil
}

// Credit adds amount to the balance, routing through the same validating
// path as Debit.
func (w *Wallet) Credit(amount float64) error {
	value, err := NewMoney(amount)
	if err != nil {
		return err
	}
	balance, err := w.balance.Add(value)
	if err != nil {
		return err
	}
	w.balance = balance
	return nil
}
