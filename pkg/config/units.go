package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration read from YAML. Besides the units
// time.ParseDuration knows it accepts d (days) and w (weeks).
type Duration time.Duration

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.Std().String(), nil
}

// ParseDuration is time.ParseDuration plus d and w. Blank input is zero.
// Day and week runs are rewritten to hours so composites such as "1w2d3h"
// keep the standard parser's validation.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !strings.ContainsAny(s, "dw") {
		return time.ParseDuration(s)
	}

	var b strings.Builder
	for rest := s; rest != ""; {
		num, unit, tail, err := nextRun(rest)
		if err != nil {
			return 0, fmt.Errorf("duration %q: %w", s, err)
		}
		rest = tail

		var hours float64
		switch unit {
		case "d":
			hours = Day.Hours()
		case "w":
			hours = Week.Hours()
		default:
			b.WriteString(num + unit)
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("duration %q: bad number %q", s, num)
		}
		b.WriteString(strconv.FormatFloat(v*hours, 'f', -1, 64) + "h")
	}
	return time.ParseDuration(b.String())
}

// nextRun splits the leading number and unit off s.
func nextRun(s string) (num, unit, rest string, err error) {
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) && r != '.' })
	if i <= 0 {
		return "", "", "", fmt.Errorf("expected a number at %q", s)
	}
	j := strings.IndexFunc(s[i:], func(r rune) bool { return unicode.IsDigit(r) || r == '.' })
	if j < 0 {
		j = len(s) - i
	}
	return s[:i], s[i : i+j], s[i+j:], nil
}
