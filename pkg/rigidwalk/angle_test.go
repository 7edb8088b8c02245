package rigidwalk

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const angleTol = 1e-9

// isMultiple reports whether x is an integer multiple of step.
func isMultiple(x, step float64) bool {
	q := x / step
	return scalar.EqualWithinAbs(q, math.Round(q), angleTol)
}

// ── NearestMultiple ──

func TestNearestMultiple(t *testing.T) {
	tests := []struct {
		n, step, want float64
	}{
		{0.3, 1, 0},
		{0.5, 1, 1}, // half rounds up on the magnitude
		{1.49, 1, 1},
		{2.6, 1, 3},
		{-0.5, 1, -1},
		{-2.6, 1, -3},
		{7, 5, 5},
		{8, 5, 10},
	}
	for _, tc := range tests {
		got := NearestMultiple(tc.n, tc.step)
		if got != tc.want {
			t.Errorf("NearestMultiple(%g, %g) = %g, want %g", tc.n, tc.step, got, tc.want)
		}
	}
}

func TestNearestMultipleZeroTakesNegativeBranch(t *testing.T) {
	got := NearestMultiple(0, math.Pi/2)
	if got != 0 {
		t.Fatalf("expected 0, got %g", got)
	}
	if !math.Signbit(got) {
		t.Error("zero input should come back as -0")
	}
}

// ── Quantize ──

func TestQuantizeEightWayBounds(t *testing.T) {
	for a := -4 * math.Pi; a <= 4*math.Pi; a += 0.013 {
		p, s := EightWay.Quantize(a)
		if !isMultiple(p, math.Pi/2) {
			t.Fatalf("angle %g: primary %g is not a multiple of 90°", a, p)
		}
		if !isMultiple(s-math.Pi/4, math.Pi/2) {
			t.Fatalf("angle %g: secondary %g is not 45° mod 90°", a, s)
		}
		if math.Abs(p-a) > math.Pi/4+angleTol || math.Abs(s-a) > math.Pi/4+angleTol {
			t.Fatalf("angle %g: allowed angles %g/%g do not straddle it", a, p, s)
		}
		if !scalar.EqualWithinAbs(math.Abs(p-s), math.Pi/4, angleTol) {
			t.Fatalf("angle %g: allowed angles %g/%g are not 45° apart", a, p, s)
		}
	}
}

func TestQuantizeFourWayBounds(t *testing.T) {
	for a := -4 * math.Pi; a <= 4*math.Pi; a += 0.013 {
		p, s := FourWay.Quantize(a)
		if !isMultiple(p, math.Pi) {
			t.Fatalf("angle %g: primary %g is not 0° or 180°", a, p)
		}
		if !isMultiple(s-math.Pi/2, math.Pi) {
			t.Fatalf("angle %g: secondary %g is not 90° or 270°", a, s)
		}
		if !scalar.EqualWithinAbs(math.Abs(p-s), math.Pi/2, angleTol) {
			t.Fatalf("angle %g: allowed angles %g/%g are not 90° apart", a, p, s)
		}
	}
}

func TestQuantizeFourWayTenDegrees(t *testing.T) {
	p, s := FourWay.Quantize(Radians(10))
	pd := NormalizeDegrees(Degrees(p))
	sd := NormalizeDegrees(Degrees(s))
	if !scalar.EqualWithinAbs(pd, 0, angleTol) && !scalar.EqualWithinAbs(pd, 180, angleTol) {
		t.Errorf("primary: expected 0° or 180°, got %g°", pd)
	}
	if !scalar.EqualWithinAbs(sd, 90, angleTol) && !scalar.EqualWithinAbs(sd, 270, angleTol) {
		t.Errorf("secondary: expected 90° or 270°, got %g°", sd)
	}
}

func TestQuantizeEightWayDiagonal(t *testing.T) {
	p, s := EightWay.Quantize(math.Pi / 4)
	if p != math.Pi/2 {
		t.Errorf("primary: expected π/2, got %g", p)
	}
	if s != math.Pi/4 {
		t.Errorf("secondary: expected π/4, got %g", s)
	}
}

// ── Directions ──

func TestParseDirections(t *testing.T) {
	tests := []struct {
		in   string
		want Directions
	}{
		{"8", EightWay},
		{"8-way", EightWay},
		{"4", FourWay},
		{"four", FourWay},
	}
	for _, tc := range tests {
		got, err := ParseDirections(tc.in)
		if err != nil {
			t.Errorf("ParseDirections(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDirections(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDirections("6"); err == nil {
		t.Error("ParseDirections(\"6\"): expected error")
	}
}

func TestDirectionsCycle(t *testing.T) {
	if EightWay.Cycle() != FourWay || FourWay.Cycle() != EightWay {
		t.Error("Cycle should alternate between the two policies")
	}
	if EightWay.String() != "8-way" || FourWay.String() != "4-way" {
		t.Errorf("unexpected names %q, %q", EightWay, FourWay)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{370, 10},
		{-10, 350},
		{720, 0},
	}
	for _, tc := range tests {
		if got := NormalizeDegrees(tc.in); !scalar.EqualWithinAbs(got, tc.want, angleTol) {
			t.Errorf("NormalizeDegrees(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
