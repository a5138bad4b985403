// Package render writes the final account snapshot for display. Rounding to
// four fractional digits happens here, once, and never touches stored
// balances.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/amirasaad/payengine/pkg/domain"
)

// displayPlaces is the wire precision for balances.
const displayPlaces = 4

// WriteAccounts serializes one record per account to w as CSV, in the order
// given (callers pass repository.All(), which is ascending by client id).
func WriteAccounts(w io.Writer, accounts []*domain.Account) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for _, acc := range accounts {
		record := []string{
			strconv.FormatUint(uint64(acc.ClientID()), 10),
			acc.Available().StringFixed(displayPlaces),
			acc.Held().StringFixed(displayPlaces),
			acc.Total().StringFixed(displayPlaces),
			strconv.FormatBool(acc.Locked()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
