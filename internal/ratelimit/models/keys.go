package models

import "strings"

// SanitizeKeySegment escapes delimiter characters in rate limit key segments
// so an identifier containing ':' cannot address an adjacent bucket.
//
// Example: an IPv6 address "::1" becomes "__1".
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// IPKey returns the bucket key for a client IP.
func IPKey(ip string) string {
	return "ip:" + SanitizeKeySegment(ip)
}
