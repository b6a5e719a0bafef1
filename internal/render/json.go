package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/loctok/loctok/internal/aggregate"
)

// JSON emits the Report pretty-printed with two-space indentation. Key
// order is stable and alphabetical because aggregate.Report and
// filestat.Record declare their fields in that order.
func JSON(w io.Writer, report aggregate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report as json: %w", err)
	}
	return nil
}
