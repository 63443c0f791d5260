package fields

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDateTime = "2006-01-02T15:04:05"

var cnDateReplacer = strings.NewReplacer("年", "-", "月", "-", "日", "")

// ParseDate normalizes "2024年3月5日" or "2024-3-5" into an ISO datetime
// string at midnight. Malformed input reports ok=false instead of guessing.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(cnDateReplacer.Replace(s))
	t, err := time.Parse("2006-1-2", s)
	if err != nil {
		return "", false
	}
	return t.Format(isoDateTime), true
}

// ParseISODateTime converts a normalized date string back into a time value,
// for callers merging extracted dates into records.
func ParseISODateTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(isoDateTime, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

var reDecimal = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)

// ParseAmount converts a captured money string to a numeric value. The
// currency symbol and thousands separators are stripped; anything that does
// not then resolve to exactly two fraction digits is rejected.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "￥¥")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if !reDecimal.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
