package money

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var periodRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// Round2 rounds a monetary amount to two decimal places and clamps
// negative or non-finite values to zero.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value < 0 {
		return 0
	}
	return math.Round(value*100) / 100
}

// MonthKey returns the YYYY-MM period key for a timestamp.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// SafeMonthKey buckets zero timestamps into the "unknown" period.
func SafeMonthKey(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return MonthKey(t)
}

// YMD formats a timestamp as YYYY-MM-DD.
func YMD(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsPeriod reports whether s is a YYYY-MM period key.
func IsPeriod(s string) bool {
	return periodRegex.MatchString(s)
}

// ParsePeriod parses a YYYY-MM key into its year and month.
func ParsePeriod(period string) (int, time.Month, error) {
	if !periodRegex.MatchString(period) {
		return 0, 0, fmt.Errorf("invalid period %q", period)
	}
	year, _ := strconv.Atoi(period[:4])
	month, _ := strconv.Atoi(period[5:])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid period %q", period)
	}
	return year, time.Month(month), nil
}

// DueDate returns the due date for a billing period: the cutoff day of the
// month following the period, in UTC. Days past the end of that month clamp
// to its last day.
func DueDate(period string, cutoffDay int) (time.Time, error) {
	year, month, err := ParsePeriod(period)
	if err != nil {
		return time.Time{}, err
	}
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	day := cutoffDay
	if day < 1 {
		day = 1
	}
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.UTC), nil
}

// ClampCutoffDay keeps a configured cutoff day inside [1, 31], falling back
// to the default for out-of-range values.
func ClampCutoffDay(day, fallback int) int {
	if day < 1 || day > 31 {
		return fallback
	}
	return day
}
