package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/priyakanth/payengine/internal/store"
)

// Export writes one summary row per known client, client ids ascending.
// Amounts are rounded to precision fractional digits here and nowhere
// else; accumulation upstream is exact.
func Export(w io.Writer, accounts *store.AccountStore, precision int32) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, id := range accounts.Clients() {
		acct, _ := accounts.Get(id)
		row := []string{
			strconv.FormatUint(uint64(id), 10),
			acct.Available.StringFixed(precision),
			acct.Held.StringFixed(precision),
			acct.Total().StringFixed(precision),
			strconv.FormatBool(acct.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing client %d: %w", id, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
