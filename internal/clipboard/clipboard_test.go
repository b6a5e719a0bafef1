package clipboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrite_WrapsUnderlyingError exercises Write against whatever clipboard
// backend is available in the test environment. Headless CI typically has
// none, in which case Write must return a wrapped, non-nil error rather
// than panicking; an environment with a working clipboard must see nil.
func TestWrite_WrapsUnderlyingError(t *testing.T) {
	t.Parallel()

	err := Write("loctok clipboard test payload")
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), "writing to system clipboard"))
	}
}
