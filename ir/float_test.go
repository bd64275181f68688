package ir

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{100, "100.0"},
		{0.7, "0.7"},
		{-0.7, "-0.7"},
		{5.6, "5.6"},
		{-6.17, "-6.17"},
		{-1.17e5, "-117000.0"},
		{1e27, "1e+27"},
		{1e28, "1e+28"},
		{1e16, "1e+16"},
		{1e15, "1000000000000000.0"},
		{1e-24, "1e-24"},
		{3.56e-32, "3.56e-32"},
		{1e-5, "1e-05"},
		{0.0001, "0.0001"},
		{1e12, "1000000000000.0"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		got := FormatFloat(tt.in)
		if got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
		if _, err := strconv.ParseInt(got, 10, 64); err == nil {
			t.Errorf("FormatFloat(%v) = %q reads back as an integer", tt.in, got)
		}
		back, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Errorf("FormatFloat(%v) = %q: %v", tt.in, got, err)
			continue
		}
		if !math.IsNaN(tt.in) && back != tt.in {
			t.Errorf("FormatFloat(%v) = %q reads back as %v", tt.in, got, back)
		}
	}
}
