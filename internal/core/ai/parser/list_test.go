package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["Use cold butter", "Rest the dough"]`,
			want: []string{"Use cold butter", "Rest the dough"},
		},
		{
			name: "fenced json array",
			raw:  "```json\n[\"Margarine\", \"Coconut oil\"]\n```",
			want: []string{"Margarine", "Coconut oil"},
		},
		{
			name: "array inside prose",
			raw:  "Sure! [\"Tofu\", \"Tempeh\"] hope this helps",
			want: []string{"Tofu", "Tempeh"},
		},
		{
			name: "plain lines capped at five",
			raw:  "one\n\ntwo\nthree\nfour\nfive\nsix\n",
			want: []string{"one", "two", "three", "four", "five"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStringList(tt.raw, DefaultListLimit))
		})
	}
}
