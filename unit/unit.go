// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units and values.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

Layout algorithms work in pixels. Scene descriptions and hosts state
sizes in dp or sp and convert them with a Metric before handing them to
an algorithm.
*/
package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

// Dp represents device independent pixels. 1 dp will have the same
// apparent size across platforms and display resolutions.
type Dp float32

// Sp is like Dp but for font sizes.
type Sp float32

// Value is a length with a unit, as written in scene files.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels.
	UnitDp
	// UnitSp is like UnitDp but for font sizes.
	UnitSp
)

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * nonZero(c.PxPerDp) / nonZero(c.PxPerSp))
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * nonZero(c.PxPerSp) / nonZero(c.PxPerDp))
}

// PxToSp converts v px to sp.
func (c Metric) PxToSp(v int) Sp {
	return Sp(float32(v) / nonZero(c.PxPerSp))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(c.PxPerDp))
}

// Px converts v to pixels, rounded to the nearest integer value.
func (c Metric) Px(v Value) int {
	switch v.U {
	case UnitDp:
		return c.Dp(Dp(v.V))
	case UnitSp:
		return c.Sp(Sp(v.V))
	default:
		return int(math.Round(float64(v.V)))
	}
}

// Parse parses a length such as "8dp", "12.5sp" or "40px". A bare
// number is in pixels.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	u := UnitPx
	num := s
	for _, suffix := range []Unit{UnitPx, UnitDp, UnitSp} {
		if n, ok := strings.CutSuffix(s, suffix.String()); ok {
			u, num = suffix, strings.TrimSpace(n)
			break
		}
	}
	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Value{}, fmt.Errorf("unit: invalid length %q", s)
	}
	return Value{V: float32(v), U: u}, nil
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
