// Package rules holds ordered keyword tables. Each table is plain data so
// callers and tests can enumerate every entry; matching is a case-insensitive
// substring scan and the first matching rule wins.
package rules

import "strings"

// Rule maps any of Keywords to Value. Keywords must be lower-case.
type Rule[T any] struct {
	Keywords []string
	Value    T
}

// Table is evaluated in order.
type Table[T any] []Rule[T]

// Match returns the value of the first rule with a keyword contained in text.
func (t Table[T]) Match(text string) (T, bool) {
	lower := strings.ToLower(text)
	for _, r := range t {
		if containsAnyLower(lower, r.Keywords) {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

// MatchOr is Match with a fallback value.
func (t Table[T]) MatchOr(text string, fallback T) T {
	if v, ok := t.Match(text); ok {
		return v
	}
	return fallback
}

// MatchAll returns the values of every rule that matches any of texts, in
// table order.
func (t Table[T]) MatchAll(texts ...string) []T {
	lowered := make([]string, len(texts))
	for i, s := range texts {
		lowered[i] = strings.ToLower(s)
	}
	out := []T{}
	for _, r := range t {
		for _, s := range lowered {
			if containsAnyLower(s, r.Keywords) {
				out = append(out, r.Value)
				break
			}
		}
	}
	return out
}

// ContainsAny reports whether text contains any of words, ignoring case.
func ContainsAny(text string, words []string) bool {
	return containsAnyLower(strings.ToLower(text), words)
}

func containsAnyLower(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
