package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatClock renders seconds as "M:SS".
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// FormatRange renders a scene span as "M:SS-M:SS".
func FormatRange(start, end int) string {
	return FormatClock(start) + "-" + FormatClock(end)
}

// ParseClock parses "M:SS" (leading zeros on minutes allowed).
func ParseClock(s string) (int, error) {
	m, sec, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(sec) != 2 {
		return 0, fmt.Errorf("%w: bad clock %q", ErrInvalidRequest, s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidRequest, s)
	}
	secs, err := strconv.Atoi(sec)
	if err != nil || secs < 0 || secs > 59 {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidRequest, s)
	}
	return mins*60 + secs, nil
}

// ParseRange parses "M:SS-M:SS" and requires end >= start.
func ParseRange(s string) (start, end int, err error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: bad range %q", ErrInvalidRequest, s)
	}
	if start, err = ParseClock(a); err != nil {
		return 0, 0, err
	}
	if end, err = ParseClock(b); err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: range %q ends before it starts", ErrInvalidRequest, s)
	}
	return start, end, nil
}
