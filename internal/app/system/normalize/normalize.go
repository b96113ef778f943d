// internal/app/system/normalize/normalize.go
//
// Package normalize holds the small canonicalization helpers applied to
// user-supplied strings before they are stored or compared. Keeping them in
// one place means uploads, handlers, and stores all agree on what a
// "normalized" email or regNo looks like.
package normalize

import "strings"

// Email lower-cases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// RegNo trims a registration number. Case is preserved: regNos come from
// institutional rosters and are matched verbatim.
func RegNo(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a free-form query or form value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
