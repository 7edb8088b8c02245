// Package rigidwalk plans paths that travel an arbitrary direction and
// distance while only ever moving along two allowed directions.
//
// A Walk alternates short legs along a primary and a secondary angle so the
// path never strays more than offset from the ideal straight line. The
// presets Walk4 and Walk8 pick the two allowed angles by quantizing the
// target angle to the nearest axis (4-way) or axis plus diagonal (8-way);
// New accepts any caller-supplied pair.
//
// Angles are radians. A step's displacement is
// (distance·sin(angle), distance·cos(angle)), so angle 0 points along +Y.
//
//	w, err := rigidwalk.Walk8(0.3, 50, 5)
//	if err != nil {
//		return err
//	}
//	for st := range w.Steps(false) {
//		dx, dy := st.Delta()
//		...
//	}
//
// Walk values are immutable and safe to share between goroutines. A
// Sequencer is single-use and must stay on one goroutine.
package rigidwalk
