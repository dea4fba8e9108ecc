// Package form normalizes raw submitted form values.
//
// Helpers never return errors: an invalid or missing value is reported as
// absent and callers branch on that.
package form

import (
	"crypto/subtle"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxTags is the outer bound on tags kept per review.
const DefaultMaxTags = 10

// Str trims surrounding whitespace.
func Str(v string) string {
	return strings.TrimSpace(v)
}

// Optional trims the value and maps empty to nil.
func Optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Last returns the last submitted value for a repeated key, trimmed.
func Last(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return Str(values[len(values)-1])
}

// Float parses a finite number.
func Float(v string) (float64, bool) {
	v = Str(v)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// IntInRange parses v, truncates it toward zero and reports whether the
// result lies within [min, max].
func IntInRange(v string, min, max int) (int, bool) {
	n, ok := Float(v)
	if !ok {
		return 0, false
	}
	t := math.Trunc(n)
	if t < float64(min) || t > float64(max) {
		return 0, false
	}
	return int(t), true
}

// Bool coerces checkbox style tokens.
func Bool(v string) bool {
	switch strings.ToLower(Str(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// List splits a comma separated value, trimming items and dropping empties.
func List(raw string) []string {
	result := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Tags normalizes a comma separated tag list: the first max non-empty items,
// upper-cased. Duplicates are kept.
func Tags(raw string, max int) []string {
	if max < 0 {
		max = 0
	}
	items := List(raw)
	if len(items) > max {
		items = items[:max]
	}
	for i, item := range items {
		items[i] = strings.ToUpper(item)
	}
	return items
}

// HasEmailDomain reports whether email belongs to domain, ignoring case.
func HasEmailDomain(email, domain string) bool {
	email = strings.ToLower(Str(email))
	domain = strings.ToLower(strings.TrimPrefix(Str(domain), "@"))
	if email == "" || domain == "" {
		return false
	}
	return strings.HasSuffix(email, "@"+domain)
}

// SafeEqual compares two secrets in constant time.
func SafeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// SafeRedirect keeps same-site relative paths only.
func SafeRedirect(target, fallback string) string {
	v := Str(target)
	if v == "" {
		return fallback
	}
	if !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") || strings.Contains(v, "://") {
		return fallback
	}
	return v
}

// Truncate cuts v to at most max runes.
func Truncate(v string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(v) <= max {
		return v
	}
	return string([]rune(v)[:max])
}

// Len counts characters rather than bytes.
func Len(v string) int {
	return utf8.RuneCountInString(v)
}
