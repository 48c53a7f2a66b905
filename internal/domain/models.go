package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies an account holder.
type ClientID uint16

// TxID identifies a transaction. IDs are globally unique across all clients.
type TxID uint32

// RecordKind is the type tag on an incoming record.
type RecordKind string

const (
	KindDeposit    RecordKind = "deposit"
	KindWithdrawal RecordKind = "withdrawal"
	KindDispute    RecordKind = "dispute"
	KindResolve    RecordKind = "resolve"
	KindChargeback RecordKind = "chargeback"
)

// ParseRecordKind maps the wire value of the type column to a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return RecordKind(s), nil
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Record is one row of the input stream. Amount is only meaningful for
// deposits and withdrawals; dispute-family records reference a prior
// transaction by id and carry no amount of their own.
type Record struct {
	Kind     RecordKind
	ClientID ClientID
	TxID     TxID
	Amount   decimal.NullDecimal
}

// Account represents a client's balance state.
type Account struct {
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total is derived, never stored.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// DisputeStatus tracks where a stored transaction is in the dispute
// state machine: none -> disputed -> resolved | charged_back.
// Both resolved and charged_back are terminal.
type DisputeStatus uint8

const (
	StatusNone DisputeStatus = iota
	StatusDisputed
	StatusResolved
	StatusChargedBack
)

func (s DisputeStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusDisputed:
		return "disputed"
	case StatusResolved:
		return "resolved"
	case StatusChargedBack:
		return "charged_back"
	}
	return "unknown"
}

// Transaction is the stored record of an accepted deposit or withdrawal,
// kept so later dispute-family records can be adjudicated against it.
type Transaction struct {
	Kind     RecordKind
	ClientID ClientID
	Amount   decimal.Decimal
	Status   DisputeStatus
}
