// Package normalize provides input normalization for user-supplied fields.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases the address. Emails are
// the business key for users, so every read and write goes through this.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
