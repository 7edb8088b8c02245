package rigidwalk

import (
	"fmt"
	"math"
)

// NearestMultiple rounds the magnitude of n half-up to the nearest multiple
// of step and reapplies the sign of n. Zero takes the negative branch, which
// yields -0 and compares equal to 0.
func NearestMultiple(n, step float64) float64 {
	r := math.Abs(n) + step/2
	r -= math.Mod(r, step)
	if n > 0 {
		return r
	}
	return -r
}

// Directions is a direction-set policy used to quantize a target angle.
type Directions int

const (
	// EightWay allows the four axes and the four diagonals.
	EightWay Directions = iota
	// FourWay allows the four axes only.
	FourWay
)

// String implements fmt.Stringer.
func (d Directions) String() string {
	switch d {
	case EightWay:
		return "8-way"
	case FourWay:
		return "4-way"
	default:
		return fmt.Sprintf("Directions(%d)", int(d))
	}
}

// ParseDirections accepts "4", "8", "4-way" and "8-way".
func ParseDirections(s string) (Directions, error) {
	switch s {
	case "8", "8-way", "eight":
		return EightWay, nil
	case "4", "4-way", "four":
		return FourWay, nil
	}
	return 0, fmt.Errorf("%w: unknown directions %q", ErrInvalidParameter, s)
}

// Cycle returns the other policy.
func (d Directions) Cycle() Directions {
	if d == FourWay {
		return EightWay
	}
	return FourWay
}

// Quantize returns the two allowed angles bracketing angle. For EightWay the
// primary is an axis and the secondary a diagonal, 45° apart. For FourWay
// the primary is horizontal-axis aligned (0 or π) and the secondary
// vertical-axis aligned (π/2 or 3π/2), 90° apart.
func (d Directions) Quantize(angle float64) (primary, secondary float64) {
	switch d {
	case FourWay:
		primary = NearestMultiple(angle, math.Pi)
		secondary = NearestMultiple(angle-math.Pi/2, math.Pi) + math.Pi/2
	default:
		primary = NearestMultiple(angle, math.Pi/2)
		secondary = NearestMultiple(angle-math.Pi/4, math.Pi/2) + math.Pi/4
	}
	return primary, secondary
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeDegrees maps a degree value into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
