// internal/domain/rota/normalize.go
package rota

import "strings"

// Normalize canonicalizes a raw shift identifier: trims, lower-cases, strips
// commas, and collapses whitespace runs to single spaces. Idempotent, so
// "Gold,  5" and "gold 5" normalize identically.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", "")
	return strings.Join(strings.Fields(s), " ")
}
