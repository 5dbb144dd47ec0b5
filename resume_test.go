package vitae_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts resume with source and format", func(t *testing.T) {
		t.Parallel()

		r := &vitae.Resume{Source: "cv.txt", Format: vitae.FormatText}

		require.NoError(t, r.Validate())
	})

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		r := &vitae.Resume{Format: vitae.FormatText}

		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})

	t.Run("requires format", func(t *testing.T) {
		t.Parallel()

		r := &vitae.Resume{Source: "cv.txt"}

		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})
}
