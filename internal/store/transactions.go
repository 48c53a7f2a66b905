package store

import (
	"fmt"

	"github.com/priyakanth/payengine/internal/domain"
)

// TransactionStore keeps the minimal record of every accepted deposit
// and withdrawal, keyed by transaction id, so later dispute-family
// records can be adjudicated. Entries are never deleted.
type TransactionStore struct {
	txs map[domain.TxID]*domain.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{txs: make(map[domain.TxID]*domain.Transaction)}
}

// Get returns the stored transaction for id if it exists.
func (s *TransactionStore) Get(id domain.TxID) (*domain.Transaction, bool) {
	tx, ok := s.txs[id]
	return tx, ok
}

// Has reports whether id is already taken.
func (s *TransactionStore) Has(id domain.TxID) bool {
	_, ok := s.txs[id]
	return ok
}

// Insert stores a new transaction. A duplicate id is rejected, never
// overwritten.
func (s *TransactionStore) Insert(id domain.TxID, tx *domain.Transaction) error {
	if _, ok := s.txs[id]; ok {
		return fmt.Errorf("tx %d: %w", id, domain.ErrDuplicateTx)
	}
	s.txs[id] = tx
	return nil
}

// UpdateStatus moves the transaction's dispute status. The caller
// guarantees id exists and that the transition is legal.
func (s *TransactionStore) UpdateStatus(id domain.TxID, status domain.DisputeStatus) {
	s.txs[id].Status = status
}
