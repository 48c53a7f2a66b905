// Package csvio implements the CSV boundary of the ledger: decoding the
// input stream into typed records and encoding final account summaries.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/priyakanth/payengine/internal/domain"
)

// ErrMalformedRow marks a row that could not be decoded into a record.
// Such rows are skippable; any other read error is fatal for the run.
var ErrMalformedRow = errors.New("malformed row")

// Reader decodes the input CSV into domain records. The expected header
// is "type, client, tx, amount"; fields are trimmed, and an amount cell
// that fails to parse decodes as no amount so the engine can reject the
// record rather than the reader aborting the run.
type Reader struct {
	cr   *csv.Reader
	cols map[string]int
}

func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("header missing %q column", required)
		}
	}

	return &Reader{cr: cr, cols: cols}, nil
}

// Read returns the next record. It returns io.EOF at end of stream and
// an error wrapping ErrMalformedRow for rows that cannot be decoded.
func (r *Reader) Read() (domain.Record, error) {
	row, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Record{}, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return domain.Record{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		return domain.Record{}, err
	}
	return r.decode(row)
}

func (r *Reader) decode(row []string) (domain.Record, error) {
	kindStr, err := r.field(row, "type")
	if err != nil {
		return domain.Record{}, err
	}
	kind, err := domain.ParseRecordKind(kindStr)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	clientStr, err := r.field(row, "client")
	if err != nil {
		return domain.Record{}, err
	}
	client, err := strconv.ParseUint(clientStr, 10, 16)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: client %q: %v", ErrMalformedRow, clientStr, err)
	}

	txStr, err := r.field(row, "tx")
	if err != nil {
		return domain.Record{}, err
	}
	tx, err := strconv.ParseUint(txStr, 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: tx %q: %v", ErrMalformedRow, txStr, err)
	}

	rec := domain.Record{
		Kind:     kind,
		ClientID: domain.ClientID(client),
		TxID:     domain.TxID(tx),
	}

	// An absent or unparsable amount is not a row error: the record
	// flows through and the engine rejects it if the kind needs one.
	if i, ok := r.cols["amount"]; ok && i < len(row) {
		if s := strings.TrimSpace(row[i]); s != "" {
			if d, err := decimal.NewFromString(s); err == nil {
				rec.Amount = decimal.NullDecimal{Decimal: d, Valid: true}
			}
		}
	}

	return rec, nil
}

func (r *Reader) field(row []string, name string) (string, error) {
	i := r.cols[name]
	if i >= len(row) {
		return "", fmt.Errorf("%w: missing %q field", ErrMalformedRow, name)
	}
	return strings.TrimSpace(row[i]), nil
}
