package pdfcpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFromContent(t *testing.T) {
	t.Parallel()

	t.Run("keeps positioned lines apart", func(t *testing.T) {
		t.Parallel()

		content := []byte(`BT
/F1 12 Tf
72 720 Td
(EXPERIENCE) Tj
0 -14 Td
(Data Analyst, Acme Corp January 2021 - March 2022) Tj
ET`)

		assert.Equal(t, "EXPERIENCE\nData Analyst, Acme Corp January 2021 - March 2022", textFromContent(content))
	})

	t.Run("joins TJ arrays", func(t *testing.T) {
		t.Parallel()

		content := []byte(`BT
[(Soft) -20 (ware) 10 ( Engineer)] TJ
ET`)

		assert.Equal(t, "Software Engineer", textFromContent(content))
	})

	t.Run("handles next-line operators", func(t *testing.T) {
		t.Parallel()

		content := []byte(`BT
(Skills) Tj
T*
(Go) Tj
(SQL) '
ET`)

		assert.Equal(t, "Skills\nGo\nSQL", textFromContent(content))
	})

	t.Run("decodes escapes", func(t *testing.T) {
		t.Parallel()

		content := []byte(`(Engineer \(Remote\)\040- Acme) Tj`)

		assert.Equal(t, "Engineer (Remote) - Acme", textFromContent(content))
	})
}
