package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Fell on the playground", want: "Fell on the playground"},
		{name: "strips script tags", input: `<script>alert(1)</script>Fell down`, want: "Fell down"},
		{name: "strips markup keeps text", input: "<b>bumped</b> head on <i>table</i>", want: "bumped head on table"},
		{name: "keeps angle comparisons", input: "temp was < 99 degrees", want: "temp was < 99 degrees"},
		{name: "trims whitespace", input: "  scraped knee  ", want: "scraped knee"},
		{name: "empty after stripping", input: "<img src=x onerror=alert(1)>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}
