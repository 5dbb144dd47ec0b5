package vitae_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("flat mode collapses whitespace including newlines", func(t *testing.T) {
		t.Parallel()

		got := vitae.Clean("  EXPERIENCE\n\n Software   Engineer\t- Acme \n", vitae.CleanFlat)

		assert.Equal(t, "EXPERIENCE Software Engineer - Acme", got)
	})

	t.Run("flat mode strips unsupported characters", func(t *testing.T) {
		t.Parallel()

		got := vitae.Clean("• Engineer | Acme (2020) — jane@example.com, +1: ok; [x]", vitae.CleanFlat)

		assert.Equal(t, "Engineer  Acme (2020)  jane@example.com, +1: ok; x", got)
	})

	t.Run("flat mode keeps non-ASCII letters", func(t *testing.T) {
		t.Parallel()

		got := vitae.Clean("Müller GmbH, Zürich", vitae.CleanFlat)

		assert.Equal(t, "Müller GmbH, Zürich", got)
	})

	t.Run("lines mode keeps line structure and double spaces", func(t *testing.T) {
		t.Parallel()

		got := vitae.Clean("EXPERIENCE\r\nEngineer  Acme | 2020 - Present (Remote)   \r\n\r\n\r\n\r\nEDUCATION\n", vitae.CleanLines)

		assert.Equal(t, "EXPERIENCE\nEngineer  Acme | 2020 - Present (Remote)\n\nEDUCATION", got)
	})

	t.Run("lines mode drops control characters", func(t *testing.T) {
		t.Parallel()

		got := vitae.Clean("\ufeffJane\x00 Doe Smith", vitae.CleanLines)

		assert.Equal(t, "Jane Doe Smith", got)
	})

	t.Run("none mode returns input unchanged", func(t *testing.T) {
		t.Parallel()

		in := "  raw\r\ntext  "

		assert.Equal(t, in, vitae.Clean(in, vitae.CleanNone))
	})
}

func TestParseCleanMode(t *testing.T) {
	t.Parallel()

	t.Run("defaults to lines", func(t *testing.T) {
		t.Parallel()

		mode, err := vitae.ParseCleanMode("")

		require.NoError(t, err)
		assert.Equal(t, vitae.CleanLines, mode)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		mode, err := vitae.ParseCleanMode("FLAT")

		require.NoError(t, err)
		assert.Equal(t, vitae.CleanFlat, mode)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		_, err := vitae.ParseCleanMode("aggressive")

		require.Error(t, err)
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})
}
