package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordKind(t *testing.T) {
	for _, s := range []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"} {
		kind, err := ParseRecordKind(s)
		require.NoError(t, err)
		assert.Equal(t, RecordKind(s), kind)
	}

	_, err := ParseRecordKind("transfer")
	assert.Error(t, err)
	_, err = ParseRecordKind("Deposit")
	assert.Error(t, err, "kinds are lowercase on the wire")
}

func TestAccountTotal(t *testing.T) {
	acct := Account{
		Available: decimal.RequireFromString("1.5"),
		Held:      decimal.RequireFromString("2.25"),
	}
	assert.True(t, acct.Total().Equal(decimal.RequireFromString("3.75")))
}

func TestReasonLabels(t *testing.T) {
	cases := map[error]string{
		ErrDuplicateTx:        "duplicate_tx",
		ErrInvalidAmount:      "invalid_amount",
		ErrInsufficientFunds:  "insufficient_funds",
		ErrAccountLocked:      "account_locked",
		ErrUnknownTransaction: "unknown_transaction",
		ErrWrongKind:          "wrong_kind",
		ErrClientMismatch:     "client_mismatch",
		ErrWrongState:         "wrong_state",
	}
	for err, want := range cases {
		assert.Equal(t, want, ReasonLabel(err))
		assert.Equal(t, want, ReasonLabel(fmt.Errorf("tx 9: %w", err)), "wrapped errors keep their label")
	}
	assert.Equal(t, "internal", ReasonLabel(fmt.Errorf("boom")))
}

func TestDisputeStatusString(t *testing.T) {
	assert.Equal(t, "none", StatusNone.String())
	assert.Equal(t, "disputed", StatusDisputed.String())
	assert.Equal(t, "resolved", StatusResolved.String())
	assert.Equal(t, "charged_back", StatusChargedBack.String())
}
