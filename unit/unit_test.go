// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/latticeui/lattice/unit"
)

func TestMetric_DpToSp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := m.Dp(5)
		got := m.Sp(m.DpToSp(5))
		if got != exp {
			t.Errorf("DpToSp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := m.Sp(5)
		got := m.Dp(m.SpToDp(5))
		if got != exp {
			t.Errorf("SpToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Sp(5)
		got := m.PxToSp(m.Sp(5))
		if got != exp {
			t.Errorf("PxToSp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestParse(t *testing.T) {
	m := unit.Metric{PxPerDp: 2, PxPerSp: 3}
	tests := []struct {
		in   string
		want unit.Value
		px   int
	}{
		{"8dp", unit.Value{V: 8, U: unit.UnitDp}, 16},
		{" 10sp", unit.Value{V: 10, U: unit.UnitSp}, 30},
		{"40px", unit.Value{V: 40, U: unit.UnitPx}, 40},
		{"12", unit.Value{V: 12, U: unit.UnitPx}, 12},
		{"2.5 dp", unit.Value{V: 2.5, U: unit.UnitDp}, 5},
		{"-4dp", unit.Value{V: -4, U: unit.UnitDp}, -8},
	}
	for _, tt := range tests {
		got, err := unit.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if px := m.Px(got); px != tt.px {
			t.Errorf("Px(%v) = %d, want %d", got, px, tt.px)
		}
	}
	for _, bad := range []string{"", "dp", "8em", "1.2.3px"} {
		if _, err := unit.Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}
