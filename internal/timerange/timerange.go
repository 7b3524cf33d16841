// Package timerange resolves the compact --timerange expression into a
// typed start/stop window for historical data selection.
//
// The expression is a single string of the form "start-stop" where
// either side may be empty. The length of a numeral decides how it is
// read: exactly 8 digits is a YYYYMMDD calendar date, exactly 10
// digits is a literal epoch timestamp, anything else is a line count
// or dataset index.
package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Bound says how the corresponding boundary value is interpreted.
type Bound int

const (
	// BoundNone marks an open boundary; the value is always 0.
	BoundNone Bound = iota
	// BoundDate marks a boundary in epoch seconds.
	BoundDate
	// BoundLine marks a boundary counted in data lines.
	BoundLine
	// BoundIndex marks an absolute dataset index.
	BoundIndex
)

func (b Bound) String() string {
	switch b {
	case BoundDate:
		return "date"
	case BoundLine:
		return "line"
	case BoundIndex:
		return "index"
	default:
		return "none"
	}
}

// TimeRange is a resolved window. Immutable value object: built once
// per parsed expression and never modified afterwards.
type TimeRange struct {
	StartKind Bound
	StopKind  Bound
	Start     int64
	Stop      int64
}

func (t TimeRange) String() string {
	return fmt.Sprintf("%s(%d)-%s(%d)", t.StartKind, t.Start, t.StopKind, t.Stop)
}

// ParseError reports an expression matching none of the known forms.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("incorrect syntax for timerange %q", e.Text)
}

// rules are tried strictly in order and the first match wins. The
// order is load-bearing: the exact-length date forms must be checked
// before the open-ended line and index forms, which would otherwise
// swallow 8- and 10-digit numerals.
var rules = []struct {
	re    *regexp.Regexp
	start Bound
	stop  Bound
}{
	{regexp.MustCompile(`^-(\d{8})$`), BoundNone, BoundDate},
	{regexp.MustCompile(`^(\d{8})-$`), BoundDate, BoundNone},
	{regexp.MustCompile(`^(\d{8})-(\d{8})$`), BoundDate, BoundDate},
	{regexp.MustCompile(`^-(\d{10})$`), BoundNone, BoundDate},
	{regexp.MustCompile(`^(\d{10})-$`), BoundDate, BoundNone},
	{regexp.MustCompile(`^(\d{10})-(\d{10})$`), BoundDate, BoundDate},
	{regexp.MustCompile(`^(-\d+)$`), BoundNone, BoundLine},
	{regexp.MustCompile(`^(\d+)-$`), BoundLine, BoundNone},
	{regexp.MustCompile(`^(\d+)-(\d+)$`), BoundIndex, BoundIndex},
}

// Parse resolves text into a TimeRange. The empty string means "no
// restriction" and yields the zero TimeRange. Any other text that
// matches no rule fails with a *ParseError.
func Parse(text string) (TimeRange, error) {
	if text == "" {
		return TimeRange{}, nil
	}

	for _, rule := range rules {
		match := rule.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		rng := TimeRange{StartKind: rule.start, StopKind: rule.stop}
		vals := match[1:]

		if rule.start != BoundNone {
			v, err := boundValue(vals[0], rule.start)
			if err != nil {
				return TimeRange{}, err
			}

			rng.Start = v
			vals = vals[1:]
		}

		if rule.stop != BoundNone {
			v, err := boundValue(vals[0], rule.stop)
			if err != nil {
				return TimeRange{}, err
			}

			rng.Stop = v
		}

		return rng, nil
	}

	return TimeRange{}, &ParseError{Text: text}
}

// boundValue converts one captured numeral. Eight-digit date captures
// are calendar days at UTC midnight; everything else is read verbatim,
// which covers 10-digit epoch seconds and signed line counts alike.
func boundValue(capture string, bound Bound) (int64, error) {
	if bound == BoundDate && len(capture) == 8 {
		day, err := time.Parse("20060102", capture)
		if err != nil {
			return 0, &ParseError{Text: capture}
		}

		return day.Unix(), nil
	}

	v, err := strconv.ParseInt(capture, 10, 64)
	if err != nil {
		return 0, &ParseError{Text: capture}
	}

	return v, nil
}
