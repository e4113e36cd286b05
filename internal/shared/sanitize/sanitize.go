// Package sanitize strips HTML markup from user-supplied free text before
// it is stored or echoed back to clients.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML elements from s, restores escaped entities, and
// trims surrounding whitespace. The result is plain text safe to store
// and render anywhere.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
