package palet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/palet"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := palet.Errorf(palet.EINVALID, "descriptor %q rejected", "foo.desktop")

	assert.Equal(t, palet.EINVALID, palet.ErrorCode(err))
	assert.Equal(t, "descriptor \"foo.desktop\" rejected", palet.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, palet.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, palet.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scan: %w", palet.Errorf(palet.ENOTFOUND, "missing"))

	assert.Equal(t, palet.ENOTFOUND, palet.ErrorCode(err))
	assert.Equal(t, "missing", palet.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, palet.EINTERNAL, palet.ErrorCode(err))
	assert.Equal(t, "Internal error.", palet.ErrorMessage(err))
}
