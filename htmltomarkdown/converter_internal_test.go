package htmltomarkdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want string
	}{
		{"drops heading markers", "## Experience\n\nEngineer", "Experience\n\nEngineer"},
		{"keeps link text", "See [Acme](https://acme.example) site", "See Acme site"},
		{"drops images", "![logo](logo.png)Jane", "Jane"},
		{"drops emphasis", "**Data Analyst**, *Acme Corp*", "Data Analyst, Acme Corp"},
		{"unescapes characters", `1\. Engineer \- Acme`, "1. Engineer - Acme"},
		{"keeps list markers", "- Built APIs\n- Led team", "- Built APIs\n- Led team"},
		{"joins table cells with double spaces", "| Engineer | Acme |\n| --- | --- |\n| Intern | Initech |", "Engineer  Acme\nIntern  Initech"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, plainText(tt.md))
		})
	}
}
