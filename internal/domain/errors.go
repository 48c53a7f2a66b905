package domain

import "errors"

// Rejection reasons. Every one of these is per-record and recoverable:
// the engine skips the record and the run continues.
var (
	ErrDuplicateTx        = errors.New("duplicate transaction id")
	ErrInvalidAmount      = errors.New("missing or non-positive amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountLocked      = errors.New("account is locked")
	ErrUnknownTransaction = errors.New("referenced transaction does not exist")
	ErrWrongKind          = errors.New("only deposits can be disputed")
	ErrClientMismatch     = errors.New("transaction belongs to a different client")
	ErrWrongState         = errors.New("dispute status does not permit this transition")
)

// ReasonLabel maps a rejection to a stable label for metrics and logs.
func ReasonLabel(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateTx):
		return "duplicate_tx"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrUnknownTransaction):
		return "unknown_transaction"
	case errors.Is(err, ErrWrongKind):
		return "wrong_kind"
	case errors.Is(err, ErrClientMismatch):
		return "client_mismatch"
	case errors.Is(err, ErrWrongState):
		return "wrong_state"
	}
	return "internal"
}
