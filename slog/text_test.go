package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/mock"
	vslog "github.com/fwojciec/vitae/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	debug := &slog.HandlerOptions{Level: slog.LevelDebug}

	t.Run("logs format and sizes at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, debug))
		inner := &mock.TextExtractor{
			ExtractTextFn: func(data []byte) (string, error) {
				return "héllo", nil
			},
		}

		e := vslog.NewLoggingTextExtractor(inner, vitae.FormatDocx, logger)
		text, err := e.ExtractText([]byte("0123456789"))

		require.NoError(t, err)
		assert.Equal(t, "héllo", text)
		output := buf.String()
		assert.Contains(t, output, "text extraction")
		assert.Contains(t, output, "format=docx")
		assert.Contains(t, output, "bytes=10")
		assert.Contains(t, output, "chars=5")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, debug))
		inner := &mock.TextExtractor{
			ExtractTextFn: func(data []byte) (string, error) {
				return "", errors.New("corrupt archive")
			},
		}

		e := vslog.NewLoggingTextExtractor(inner, vitae.FormatDocx, logger)
		_, err := e.ExtractText(nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"corrupt archive\"")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractTextFn: func(data []byte) (string, error) {
				return "text", nil
			},
		}

		_, err := vslog.NewLoggingTextExtractor(inner, vitae.FormatText, logger).ExtractText([]byte("text"))

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
