package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyakanth/payengine/internal/domain"
)

func testTx(client domain.ClientID, amt string) *domain.Transaction {
	return &domain.Transaction{
		Kind:     domain.KindDeposit,
		ClientID: client,
		Amount:   decimal.RequireFromString(amt),
		Status:   domain.StatusNone,
	}
}

func TestTransactionInsertAndGet(t *testing.T) {
	s := NewTransactionStore()

	require.NoError(t, s.Insert(445, testTx(12, "45")))

	tx, ok := s.Get(445)
	require.True(t, ok)
	assert.Equal(t, domain.ClientID(12), tx.ClientID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("45")))
	assert.Equal(t, domain.StatusNone, tx.Status)

	_, ok = s.Get(446)
	assert.False(t, ok)
	assert.True(t, s.Has(445))
	assert.False(t, s.Has(446))
}

func TestTransactionDuplicateInsert(t *testing.T) {
	s := NewTransactionStore()

	require.NoError(t, s.Insert(445, testTx(12, "45")))

	err := s.Insert(445, testTx(99, "1"))
	require.ErrorIs(t, err, domain.ErrDuplicateTx)

	// The original entry survives.
	tx, _ := s.Get(445)
	assert.Equal(t, domain.ClientID(12), tx.ClientID)
}

func TestTransactionUpdateStatus(t *testing.T) {
	s := NewTransactionStore()

	require.NoError(t, s.Insert(7, testTx(1, "10")))

	s.UpdateStatus(7, domain.StatusDisputed)
	tx, _ := s.Get(7)
	assert.Equal(t, domain.StatusDisputed, tx.Status)

	s.UpdateStatus(7, domain.StatusChargedBack)
	assert.Equal(t, domain.StatusChargedBack, tx.Status)
}
