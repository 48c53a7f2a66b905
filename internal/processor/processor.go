// Package processor wires the CSV boundary to the ledger engine: one
// pass over the input stream, rejects reported on the diagnostics
// logger, then a summary export.
package processor

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/priyakanth/payengine/internal/csvio"
	"github.com/priyakanth/payengine/internal/domain"
	"github.com/priyakanth/payengine/internal/engine"
	"github.com/priyakanth/payengine/internal/store"
)

type Processor struct {
	accounts  *store.AccountStore
	engine    *engine.Engine
	logger    *zap.Logger
	precision int32
}

func New(logger *zap.Logger, precision int32) *Processor {
	accounts := store.NewAccountStore()
	txs := store.NewTransactionStore()
	return &Processor{
		accounts:  accounts,
		engine:    engine.New(accounts, txs),
		logger:    logger,
		precision: precision,
	}
}

// Run consumes the whole input stream. Rejected records and undecodable
// rows are logged and skipped; only an unreadable stream returns an
// error, and then no output should be produced.
func (p *Processor) Run(r io.Reader) error {
	reader, err := csvio.NewReader(r)
	if err != nil {
		return fmt.Errorf("opening record stream: %w", err)
	}

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(err, csvio.ErrMalformedRow) {
				p.logger.Warn("skipping undecodable row", zap.Error(err))
				continue
			}
			return fmt.Errorf("reading record stream: %w", err)
		}

		if err := p.engine.Process(rec); err != nil {
			p.logger.Warn("record rejected",
				zap.String("kind", string(rec.Kind)),
				zap.Uint32("tx", uint32(rec.TxID)),
				zap.Uint16("client", uint16(rec.ClientID)),
				zap.String("reason", domain.ReasonLabel(err)),
				zap.Error(err),
			)
		}
	}
}

// Export writes the final account summaries.
func (p *Processor) Export(w io.Writer) error {
	return csvio.Export(w, p.accounts, p.precision)
}
