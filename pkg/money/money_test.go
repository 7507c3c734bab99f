package money

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Rounds half up", value: 2.005, expected: 2.0},
		{name: "Rounds down", value: 7.494, expected: 7.49},
		{name: "Rounds up", value: 7.495, expected: 7.5},
		{name: "Negative clamps to zero", value: -3.5, expected: 0},
		{name: "NaN clamps to zero", value: math.NaN(), expected: 0},
		{name: "Infinity clamps to zero", value: math.Inf(1), expected: 0},
		{name: "Exact value unchanged", value: 12.34, expected: 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.value), 1e-9)
		})
	}
}

func TestMonthKeys(t *testing.T) {
	sample := time.Date(2024, time.March, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03", MonthKey(sample))
	assert.Equal(t, "2024-03", SafeMonthKey(sample))
	assert.Equal(t, "unknown", SafeMonthKey(time.Time{}))
	assert.Equal(t, "2024-03-02", YMD(sample))
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		name      string
		period    string
		cutoffDay int
		expected  string
		expectErr bool
	}{
		{name: "Regular month", period: "2024-03", cutoffDay: 15, expected: "2024-04-15"},
		{name: "Following month wraps year", period: "2024-12", cutoffDay: 15, expected: "2025-01-15"},
		{name: "Day clamps to short month", period: "2024-01", cutoffDay: 31, expected: "2024-02-29"},
		{name: "Day below range clamps to first", period: "2024-03", cutoffDay: 0, expected: "2024-04-01"},
		{name: "Malformed period", period: "2024/03", cutoffDay: 15, expectErr: true},
		{name: "Month out of range", period: "2024-13", cutoffDay: 15, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := DueDate(tt.period, tt.cutoffDay)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, YMD(due))
			assert.Equal(t, time.UTC, due.Location())
		})
	}
}

func TestClampCutoffDay(t *testing.T) {
	assert.Equal(t, 15, ClampCutoffDay(0, 15))
	assert.Equal(t, 15, ClampCutoffDay(32, 15))
	assert.Equal(t, 1, ClampCutoffDay(1, 15))
	assert.Equal(t, 31, ClampCutoffDay(31, 15))
}

func TestParsePeriod(t *testing.T) {
	year, month, err := ParsePeriod("2024-03")
	assert.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.March, month)

	_, _, err = ParsePeriod("not-a-period")
	assert.Error(t, err)
}
