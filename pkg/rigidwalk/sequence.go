package rigidwalk

import (
	"iter"
	"math"
)

// Step is one straight movement of Distance along Angle.
type Step struct {
	Angle    float64
	Distance float64
}

// Delta returns the displacement of the step: (d·sin(angle), d·cos(angle)).
func (s Step) Delta() (dx, dy float64) {
	sin, cos := math.Sincos(s.Angle)
	return s.Distance * sin, s.Distance * cos
}

// phase is the sequencer state. Each case carries only the data it needs.
type phase interface{ isPhase() }

type (
	mainStart  struct{}
	mainMiddle struct {
		left      int
		secondary bool // side of the next doubled leg
	}
	mainEnd struct {
		secondary bool // side whose leg absorbs its leftover
	}
	lastEnd struct {
		secondary bool // side of the final leftover leg
	}
	stopped struct{}
)

func (mainStart) isPhase()  {}
func (mainMiddle) isPhase() {}
func (mainEnd) isPhase()    {}
func (lastEnd) isPhase()    {}
func (stopped) isPhase()    {}

// legs is the copy of a Walk's scalars that a Sequencer works from.
type legs struct {
	primaryAngle    float64
	secondaryAngle  float64
	primaryLeg      float64
	secondaryLeg    float64
	lastPrimary     float64
	lastSecondary   float64
	repeat          int
	displacement    float64
	degenerate      bool
	degenerateAngle float64
}

func (l *legs) angle(secondary bool) float64 {
	if secondary {
		return l.secondaryAngle
	}
	return l.primaryAngle
}

func (l *legs) leg(secondary bool) float64 {
	if secondary {
		return l.secondaryLeg
	}
	return l.primaryLeg
}

func (l *legs) last(secondary bool) float64 {
	if secondary {
		return l.lastSecondary
	}
	return l.lastPrimary
}

// Sequencer lazily produces the steps of a Walk, one per call to Next. It is
// single-pass: once exhausted, a new Sequencer is needed to replay the walk.
// A Sequencer must not be advanced from more than one goroutine.
type Sequencer struct {
	legs         legs
	startPrimary bool
	phase        phase
}

// Sequencer returns a fresh sequencer over w. startPrimary selects which
// allowed direction the first leg follows.
func (w Walk) Sequencer(startPrimary bool) *Sequencer {
	l := legs{
		primaryAngle:   w.primaryAngle,
		secondaryAngle: w.secondaryAngle,
		primaryLeg:     w.primaryLeg,
		secondaryLeg:   w.secondaryLeg,
		lastPrimary:    w.lastPrimary,
		lastSecondary:  w.lastSecondary,
		repeat:         w.repeat,
		displacement:   w.displacement,
	}
	switch w.angle {
	case w.primaryAngle:
		l.degenerate, l.degenerateAngle = true, w.primaryAngle
	case w.secondaryAngle:
		l.degenerate, l.degenerateAngle = true, w.secondaryAngle
	}
	return &Sequencer{legs: l, startPrimary: startPrimary, phase: mainStart{}}
}

// Next returns the next step, or false once the walk is exhausted.
func (s *Sequencer) Next() (Step, bool) {
	l := &s.legs
	for {
		switch p := s.phase.(type) {
		case mainStart:
			if l.degenerate {
				s.phase = stopped{}
				return Step{Angle: l.degenerateAngle, Distance: l.displacement}, true
			}
			first := !s.startPrimary
			if l.repeat == 0 {
				s.phase = lastEnd{secondary: !first}
				return Step{Angle: l.angle(first), Distance: l.last(first)}, true
			}
			s.phase = mainMiddle{left: l.repeat, secondary: !first}
			return Step{Angle: l.angle(first), Distance: l.leg(first)}, true

		case mainMiddle:
			p.left--
			if p.left == 0 {
				s.phase = mainEnd{secondary: p.secondary}
				continue
			}
			s.phase = mainMiddle{left: p.left, secondary: !p.secondary}
			return Step{Angle: l.angle(p.secondary), Distance: 2 * l.leg(p.secondary)}, true

		case mainEnd:
			s.phase = lastEnd{secondary: !p.secondary}
			return Step{
				Angle:    l.angle(p.secondary),
				Distance: l.leg(p.secondary) + l.last(p.secondary),
			}, true

		case lastEnd:
			s.phase = stopped{}
			return Step{Angle: l.angle(p.secondary), Distance: l.last(p.secondary)}, true

		default:
			return Step{}, false
		}
	}
}

// Done reports whether the sequencer is exhausted.
func (s *Sequencer) Done() bool {
	_, ok := s.phase.(stopped)
	return ok
}

// Steps returns an iterator over the walk's steps. Every range over the
// returned sequence starts a fresh Sequencer.
func (w Walk) Steps(startPrimary bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		seq := w.Sequencer(startPrimary)
		for {
			st, ok := seq.Next()
			if !ok || !yield(st) {
				return
			}
		}
	}
}

// StepCount returns how many steps the walk emits. It is the same for both
// starting sides.
func (w Walk) StepCount() int {
	switch {
	case w.Degenerate():
		return 1
	case w.repeat == 0:
		return 2
	default:
		return w.repeat + 2
	}
}

// Collect returns all steps of the walk.
func (w Walk) Collect(startPrimary bool) []Step {
	out := make([]Step, 0, w.StepCount())
	for st := range w.Steps(startPrimary) {
		out = append(out, st)
	}
	return out
}

// NetDisplacement sums the deltas of steps.
func NetDisplacement(steps iter.Seq[Step]) (dx, dy float64) {
	for st := range steps {
		x, y := st.Delta()
		dx += x
		dy += y
	}
	return dx, dy
}
