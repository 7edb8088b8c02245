package rigidwalk

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// bracketTolerance absorbs rounding when checking that the allowed
	// angles straddle the target.
	bracketTolerance = 1e-9

	// maxRepeat bounds the number of leg-pairs a single walk may contain.
	maxRepeat = math.MaxInt32
)

// Walk is an immutable plan for travelling displacement along angle using
// only the primary and secondary directions. The zero value is a degenerate
// walk of length zero along angle 0.
type Walk struct {
	angle        float64
	displacement float64
	offset       float64

	primaryAngle   float64
	secondaryAngle float64

	// Leg fields stay zero for degenerate walks.
	primaryLeg   float64
	secondaryLeg float64
	pair         float64
	repeat       int
	remaining    float64

	lastPrimary   float64
	lastSecondary float64
}

// New plans a walk restricted to primary and secondary. The allowed angles
// must bracket angle, each within a right angle of it, unless angle equals
// one of them exactly, in which case the walk is a single straight leg.
//
// Angles whose difference from an allowed angle is tiny but non-zero are
// accepted and produce very long legs.
func New(primary, secondary, angle, displacement, offset float64) (Walk, error) {
	for _, v := range [...]struct {
		name string
		val  float64
	}{
		{"primary angle", primary},
		{"secondary angle", secondary},
		{"angle", angle},
		{"displacement", displacement},
		{"offset", offset},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return Walk{}, fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, v.name)
		}
	}
	if offset <= 0 {
		return Walk{}, fmt.Errorf("%w: offset %g must be positive", ErrInvalidParameter, offset)
	}
	if displacement < 0 {
		return Walk{}, fmt.Errorf("%w: displacement %g must not be negative", ErrInvalidParameter, displacement)
	}

	w := Walk{
		angle:          angle,
		displacement:   displacement,
		offset:         offset,
		primaryAngle:   primary,
		secondaryAngle: secondary,
	}
	if w.Degenerate() {
		Logger().Debug("rigidwalk: degenerate walk",
			slog.Float64("angle", angle),
			slog.Float64("displacement", displacement))
		return w, nil
	}

	primaryRel := math.Abs(primary - angle)
	secondaryRel := math.Abs(secondary - angle)
	if primaryRel > math.Pi/2+bracketTolerance || secondaryRel > math.Pi/2+bracketTolerance {
		return Walk{}, fmt.Errorf("%w: allowed angles %g and %g are more than a right angle from %g",
			ErrInvalidParameter, primary, secondary, angle)
	}
	span := math.Abs(primary - secondary)
	if math.Abs(primaryRel+secondaryRel-span) > bracketTolerance*math.Max(1, span) {
		return Walk{}, fmt.Errorf("%w: allowed angles %g and %g do not bracket %g",
			ErrInvalidParameter, primary, secondary, angle)
	}

	primarySin, secondarySin := math.Sin(primaryRel), math.Sin(secondaryRel)
	w.primaryLeg = offset / primarySin
	w.secondaryLeg = offset / secondarySin
	w.pair = offset/math.Tan(primaryRel) + offset/math.Tan(secondaryRel)

	times := math.Floor(displacement / w.pair)
	if times > maxRepeat {
		return Walk{}, fmt.Errorf("%w: offset %g is too small for displacement %g",
			ErrInvalidParameter, offset, displacement)
	}
	remaining := displacement - w.pair*times
	// Rounding in the division can land a hair on the wrong side of an
	// integer; keep 0 <= remaining < pair.
	if remaining >= w.pair {
		times++
		remaining -= w.pair
	}
	if remaining < 0 {
		remaining = 0
	}
	w.repeat = int(times)
	w.remaining = remaining

	lastOffset := offset * remaining / w.pair
	w.lastPrimary = lastOffset / primarySin
	w.lastSecondary = lastOffset / secondarySin

	Logger().Debug("rigidwalk: planned walk",
		slog.Float64("angle", angle),
		slog.Float64("primary", primary),
		slog.Float64("secondary", secondary),
		slog.Float64("primary_leg", w.primaryLeg),
		slog.Float64("secondary_leg", w.secondaryLeg),
		slog.Int("repeat", w.repeat),
		slog.Float64("remaining", w.remaining))
	return w, nil
}

// Walk8 plans a walk that moves along the axes and diagonals only.
func Walk8(angle, displacement, offset float64) (Walk, error) {
	return ForDirections(EightWay, angle, displacement, offset)
}

// Walk4 plans a walk that moves along the axes only.
func Walk4(angle, displacement, offset float64) (Walk, error) {
	return ForDirections(FourWay, angle, displacement, offset)
}

// ForDirections quantizes angle with d and plans the walk.
func ForDirections(d Directions, angle, displacement, offset float64) (Walk, error) {
	primary, secondary := d.Quantize(angle)
	return New(primary, secondary, angle, displacement, offset)
}

// Angle returns the requested direction.
func (w Walk) Angle() float64 { return w.angle }

// Displacement returns the requested net distance.
func (w Walk) Displacement() float64 { return w.displacement }

// Offset returns the maximum lateral deviation.
func (w Walk) Offset() float64 { return w.offset }

// PrimaryAngle returns the first allowed direction.
func (w Walk) PrimaryAngle() float64 { return w.primaryAngle }

// SecondaryAngle returns the second allowed direction.
func (w Walk) SecondaryAngle() float64 { return w.secondaryAngle }

// Degenerate reports whether the walk collapsed to a single leg because the
// requested angle is one of the allowed angles.
func (w Walk) Degenerate() bool {
	return w.angle == w.primaryAngle || w.angle == w.secondaryAngle
}

// PrimaryLegDistance is the length of one full primary leg. Zero for
// degenerate walks.
func (w Walk) PrimaryLegDistance() float64 { return w.primaryLeg }

// SecondaryLegDistance is the length of one full secondary leg. Zero for
// degenerate walks.
func (w Walk) SecondaryLegDistance() float64 { return w.secondaryLeg }

// PairDisplacement is the forward progress of one primary plus one
// secondary leg.
func (w Walk) PairDisplacement() float64 { return w.pair }

// RepeatCount is the number of complete leg-pairs.
func (w Walk) RepeatCount() int { return w.repeat }

// Remaining is the forward distance left after the complete leg-pairs.
func (w Walk) Remaining() float64 { return w.remaining }

// LastPrimaryDistance is the primary leg of the final partial pair.
func (w Walk) LastPrimaryDistance() float64 { return w.lastPrimary }

// LastSecondaryDistance is the secondary leg of the final partial pair.
func (w Walk) LastSecondaryDistance() float64 { return w.lastSecondary }

// TotalDistance returns the length of the whole zig-zag path. It is never
// less than the displacement. For a positive displacement it equals it only
// for degenerate walks; a zero displacement gives zero either way.
func (w Walk) TotalDistance() float64 {
	if w.Degenerate() {
		return w.displacement
	}
	return (w.primaryLeg+w.secondaryLeg)*float64(w.repeat) + w.lastPrimary + w.lastSecondary
}

// String implements fmt.Stringer.
func (w Walk) String() string {
	if w.Degenerate() {
		return fmt.Sprintf("walk{%.2f° x %g, straight}", Degrees(w.angle), w.displacement)
	}
	return fmt.Sprintf("walk{%.2f° x %g via %.2f°/%.2f°, %d pairs}",
		Degrees(w.angle), w.displacement,
		Degrees(w.primaryAngle), Degrees(w.secondaryAngle), w.repeat)
}
