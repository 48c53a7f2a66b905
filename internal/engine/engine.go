package engine

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/priyakanth/payengine/internal/domain"
	"github.com/priyakanth/payengine/internal/store"
)

// Metrics
var (
	recordsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payengine_records_applied_total",
		Help: "Records accepted and applied to the ledger",
	}, []string{"kind"})

	recordsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payengine_records_rejected_total",
		Help: "Records rejected without mutating the ledger, labeled by reason",
	}, []string{"kind", "reason"})
)

// Engine applies the ledger rules to one record at a time, in input
// order. It is the sole writer to both stores; callers must not mutate
// them for the duration of a run.
type Engine struct {
	accounts *store.AccountStore
	txs      *store.TransactionStore
}

func New(accounts *store.AccountStore, txs *store.TransactionStore) *Engine {
	return &Engine{accounts: accounts, txs: txs}
}

// Process applies a single record. A returned error is a per-record
// rejection (one of the domain.Err* sentinels, wrapped with context);
// state is untouched and the caller should continue with the next
// record.
func (e *Engine) Process(rec domain.Record) error {
	var err error
	switch rec.Kind {
	case domain.KindDeposit:
		err = e.deposit(rec)
	case domain.KindWithdrawal:
		err = e.withdrawal(rec)
	case domain.KindDispute:
		err = e.dispute(rec)
	case domain.KindResolve:
		err = e.resolve(rec)
	case domain.KindChargeback:
		err = e.chargeback(rec)
	default:
		err = fmt.Errorf("unhandled record kind %q", rec.Kind)
	}

	if err != nil {
		recordsRejected.WithLabelValues(string(rec.Kind), domain.ReasonLabel(err)).Inc()
		return err
	}
	recordsApplied.WithLabelValues(string(rec.Kind)).Inc()
	return nil
}

func (e *Engine) deposit(rec domain.Record) error {
	acct := e.accounts.GetOrCreate(rec.ClientID)
	if acct.Locked {
		return fmt.Errorf("client %d: %w", rec.ClientID, domain.ErrAccountLocked)
	}

	amount, err := requireAmount(rec)
	if err != nil {
		return err
	}

	if err := e.txs.Insert(rec.TxID, &domain.Transaction{
		Kind:     domain.KindDeposit,
		ClientID: rec.ClientID,
		Amount:   amount,
		Status:   domain.StatusNone,
	}); err != nil {
		return err
	}

	acct.Available = acct.Available.Add(amount)
	return nil
}

func (e *Engine) withdrawal(rec domain.Record) error {
	acct := e.accounts.GetOrCreate(rec.ClientID)
	if acct.Locked {
		return fmt.Errorf("client %d: %w", rec.ClientID, domain.ErrAccountLocked)
	}

	amount, err := requireAmount(rec)
	if err != nil {
		return err
	}

	if e.txs.Has(rec.TxID) {
		return fmt.Errorf("tx %d: %w", rec.TxID, domain.ErrDuplicateTx)
	}
	if acct.Available.LessThan(amount) {
		return fmt.Errorf("client %d cannot withdraw %s with %s available: %w",
			rec.ClientID, amount, acct.Available, domain.ErrInsufficientFunds)
	}

	if err := e.txs.Insert(rec.TxID, &domain.Transaction{
		Kind:     domain.KindWithdrawal,
		ClientID: rec.ClientID,
		Amount:   amount,
		Status:   domain.StatusNone,
	}); err != nil {
		return err
	}

	acct.Available = acct.Available.Sub(amount)
	return nil
}

func (e *Engine) dispute(rec domain.Record) error {
	tx, acct, err := e.adjudicable(rec)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusNone {
		return fmt.Errorf("tx %d is %s: %w", rec.TxID, tx.Status, domain.ErrWrongState)
	}
	if acct.Available.LessThan(tx.Amount) {
		return fmt.Errorf("client %d cannot dispute %s with %s available: %w",
			rec.ClientID, tx.Amount, acct.Available, domain.ErrInsufficientFunds)
	}

	acct.Available = acct.Available.Sub(tx.Amount)
	acct.Held = acct.Held.Add(tx.Amount)
	e.txs.UpdateStatus(rec.TxID, domain.StatusDisputed)
	return nil
}

func (e *Engine) resolve(rec domain.Record) error {
	tx, acct, err := e.adjudicable(rec)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusDisputed {
		return fmt.Errorf("tx %d is %s: %w", rec.TxID, tx.Status, domain.ErrWrongState)
	}
	if acct.Held.LessThan(tx.Amount) {
		return fmt.Errorf("client %d cannot resolve %s with %s held: %w",
			rec.ClientID, tx.Amount, acct.Held, domain.ErrInsufficientFunds)
	}

	acct.Held = acct.Held.Sub(tx.Amount)
	acct.Available = acct.Available.Add(tx.Amount)
	e.txs.UpdateStatus(rec.TxID, domain.StatusResolved)
	return nil
}

func (e *Engine) chargeback(rec domain.Record) error {
	tx, acct, err := e.adjudicable(rec)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusDisputed {
		return fmt.Errorf("tx %d is %s: %w", rec.TxID, tx.Status, domain.ErrWrongState)
	}
	if acct.Held.LessThan(tx.Amount) {
		return fmt.Errorf("client %d cannot charge back %s with %s held: %w",
			rec.ClientID, tx.Amount, acct.Held, domain.ErrInsufficientFunds)
	}

	acct.Held = acct.Held.Sub(tx.Amount)
	e.txs.UpdateStatus(rec.TxID, domain.StatusChargedBack)
	acct.Locked = true
	return nil
}

// adjudicable runs the shared validation for dispute-family records:
// locked short-circuit, transaction lookup, kind check, client check.
// Dispute-family records never create accounts; if the transaction
// exists, its owning account does too.
func (e *Engine) adjudicable(rec domain.Record) (*domain.Transaction, *domain.Account, error) {
	if acct, ok := e.accounts.Get(rec.ClientID); ok && acct.Locked {
		return nil, nil, fmt.Errorf("client %d: %w", rec.ClientID, domain.ErrAccountLocked)
	}

	tx, ok := e.txs.Get(rec.TxID)
	if !ok {
		return nil, nil, fmt.Errorf("tx %d: %w", rec.TxID, domain.ErrUnknownTransaction)
	}
	if tx.Kind != domain.KindDeposit {
		return nil, nil, fmt.Errorf("tx %d is a %s: %w", rec.TxID, tx.Kind, domain.ErrWrongKind)
	}
	if tx.ClientID != rec.ClientID {
		return nil, nil, fmt.Errorf("tx %d belongs to client %d, not %d: %w",
			rec.TxID, tx.ClientID, rec.ClientID, domain.ErrClientMismatch)
	}

	acct, _ := e.accounts.Get(rec.ClientID)
	return tx, acct, nil
}

func requireAmount(rec domain.Record) (decimal.Decimal, error) {
	if !rec.Amount.Valid || !rec.Amount.Decimal.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("tx %d: %w", rec.TxID, domain.ErrInvalidAmount)
	}
	return rec.Amount.Decimal, nil
}
