// Package clipboard places the copy payload on the system clipboard. It is
// a thin wrapper over github.com/atotto/clipboard: a clipboard failure
// (headless environment, missing xclip/xsel, etc.) is never fatal.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Write copies payload to the system clipboard. On failure it returns an
// error describing the cause; callers should treat this as a warning, not
// an abort condition, since the payload can still be printed to stdout.
func Write(payload string) error {
	if err := clipboard.WriteAll(payload); err != nil {
		return fmt.Errorf("writing to system clipboard: %w", err)
	}
	return nil
}
