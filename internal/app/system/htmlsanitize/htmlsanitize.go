// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips markup from user-supplied text. Group titles,
// subtitles, and banner tokens are display strings, not rich text, so the
// strict policy (no tags at all) is applied before storage.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Strict removes all HTML from s, returning plain text.
func Strict(s string) string {
	return strict.Sanitize(s)
}
