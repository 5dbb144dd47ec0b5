package vitae_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vitae.Errorf(vitae.ENOTFOUND, "resume %q not found", "abc")

	assert.Equal(t, vitae.ENOTFOUND, vitae.ErrorCode(err))
	assert.Equal(t, "resume \"abc\" not found", vitae.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, vitae.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", vitae.Errorf(vitae.EINVALID, "bad input"))

		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
		assert.Equal(t, "bad input", vitae.ErrorMessage(err))
	})

	t.Run("non-application error is internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("disk on fire")

		assert.Equal(t, vitae.EINTERNAL, vitae.ErrorCode(err))
		assert.Equal(t, "Internal error.", vitae.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitae.ErrorMessage(nil))
}
