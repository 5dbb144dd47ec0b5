package etree_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx returns a minimal .docx archive with the given document body.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDocxExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("writes one line per paragraph", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t,
			`<w:p><w:r><w:t>EXPERIENCE</w:t></w:r></w:p>`+
				`<w:p><w:r><w:t xml:space="preserve">Data Analyst, </w:t></w:r><w:r><w:t>Acme Corp January 2021 - March 2022</w:t></w:r></w:p>`)

		got, err := etree.DocxExtractor{}.ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "EXPERIENCE\nData Analyst, Acme Corp January 2021 - March 2022", got)
	})

	t.Run("keeps tabs, breaks and empty paragraphs", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t,
			`<w:p><w:r><w:t>Engineer</w:t><w:tab/><w:t>Acme</w:t><w:br/><w:t>Boston</w:t></w:r></w:p>`+
				`<w:p/>`+
				`<w:p><w:hyperlink><w:r><w:t>acme.com</w:t></w:r></w:hyperlink></w:p>`)

		got, err := etree.DocxExtractor{}.ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "Engineer\tAcme\nBoston\n\nacme.com", got)
	})

	t.Run("reads table cells in order", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t,
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>2020</w:t></w:r></w:p></w:tc>`+
				`<w:tc><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)

		got, err := etree.DocxExtractor{}.ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "2020\nEngineer", got)
	})

	t.Run("rejects data that is not a zip archive", func(t *testing.T) {
		t.Parallel()

		_, err := etree.DocxExtractor{}.ExtractText([]byte("plain text"))

		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})

	t.Run("rejects archives without a document part", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("docProps/core.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = etree.DocxExtractor{}.ExtractText(buf.Bytes())

		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})
}
