package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("boom")
	e := Config("bad flag", wrapped)
	assert.Equal(t, "bad flag: boom", e.Error())

	bare := &Error{Code: ExitConfig, Message: "bad flag"}
	assert.Equal(t, "bad flag", bare.Error())
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("underlying")
	e := NoRoot("no root", wrapped)

	assert.True(t, errors.Is(e, wrapped))
}

func TestConfig_NoRoot_ExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitConfig, Config("x", nil).Code)
	assert.Equal(t, ExitNoRoot, NoRoot("x", nil).Code)
}
