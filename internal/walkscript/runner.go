// Package walkscript runs small JavaScript programs (via goja) that build a
// scene of walks. Scripts call walk4, walk8 or walk to plan walks; every
// successful call adds the walk to the runner's scene.
//
//	for (let i = 0; i < 12; i++) {
//		walk8(deg(i * 30), 200, 6, i % 2 == 0)
//	}
package walkscript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

var (
	// ErrTooManyWalks is raised inside the script once MaxWalks walks have
	// been planned.
	ErrTooManyWalks = errors.New("walkscript: too many walks")

	// ErrTimeout interrupts a script that runs longer than Timeout.
	ErrTimeout = errors.New("walkscript: timeout")
)

// Runner evaluates walk scripts. It is not safe for concurrent use.
type Runner struct {
	Scene    *scene.Scene
	Output   []string
	MaxWalks int
	Timeout  time.Duration
	Log      *slog.Logger

	runtime *goja.Runtime
}

// New creates a runner with an empty scene and the walk globals installed.
func New() *Runner {
	r := &Runner{
		Scene:    &scene.Scene{},
		MaxWalks: 1000,
		Timeout:  5 * time.Second,
		Log:      slog.New(slog.DiscardHandler),
		runtime:  goja.New(),
	}
	rt := r.runtime

	rt.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		r.Output = append(r.Output, strings.Join(parts, " "))
		return goja.Undefined()
	})

	rt.Set("deg", func(call goja.FunctionCall) goja.Value {
		return rt.ToValue(rigidwalk.Radians(call.Argument(0).ToFloat()))
	})

	rt.Set("walk4", r.preset("walk4", rigidwalk.FourWay))
	rt.Set("walk8", r.preset("walk8", rigidwalk.EightWay))

	rt.Set("walk", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 5 {
			panic(rt.NewTypeError("walk(primary, secondary, angle, displacement, offset[, startPrimary]) needs 5 arguments, got %d", len(call.Arguments)))
		}
		f := floats(call, 5)
		w, err := rigidwalk.New(f[0], f[1], f[2], f[3], f[4])
		return r.add(w, err, call.Argument(5).ToBoolean())
	})

	return r
}

// preset returns the JS binding for Walk4 or Walk8.
func (r *Runner) preset(name string, d rigidwalk.Directions) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(r.runtime.NewTypeError("%s(angle, displacement, offset[, startPrimary]) needs 3 arguments, got %d", name, len(call.Arguments)))
		}
		f := floats(call, 3)
		w, err := rigidwalk.ForDirections(d, f[0], f[1], f[2])
		return r.add(w, err, call.Argument(3).ToBoolean())
	}
}

func floats(call goja.FunctionCall, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = call.Argument(i).ToFloat()
	}
	return out
}

// add records a planned walk or throws its error into the script.
func (r *Runner) add(w rigidwalk.Walk, err error, startPrimary bool) goja.Value {
	if err != nil {
		panic(r.runtime.NewGoError(err))
	}
	if r.Scene.Len() >= r.MaxWalks {
		panic(r.runtime.NewGoError(fmt.Errorf("%w: limit is %d", ErrTooManyWalks, r.MaxWalks)))
	}
	r.Scene.Add(w, startPrimary)
	r.Log.Debug("walkscript: walk added", slog.String("walk", w.String()))
	return r.runtime.ToValue(map[string]any{
		"total":      w.TotalDistance(),
		"repeat":     w.RepeatCount(),
		"steps":      w.StepCount(),
		"degenerate": w.Degenerate(),
		"primary":    w.PrimaryAngle(),
		"secondary":  w.SecondaryAngle(),
	})
}

// Reset clears the scene and output. Globals defined by earlier scripts
// survive.
func (r *Runner) Reset() {
	r.Scene = &scene.Scene{}
	r.Output = nil
}

// Run evaluates src. Walks planned before an error stay in the scene. The
// script is interrupted when ctx is cancelled or Timeout elapses.
func (r *Runner) Run(ctx context.Context, src string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, r.Timeout, ErrTimeout)
		defer cancel()
	}

	done := make(chan struct{})
	watcher := make(chan struct{})
	go func() {
		defer close(watcher)
		select {
		case <-ctx.Done():
			r.runtime.Interrupt(context.Cause(ctx))
		case <-done:
		}
	}()

	_, err := r.runtime.RunString(src)
	close(done)
	<-watcher
	r.runtime.ClearInterrupt()
	if err != nil {
		r.Log.Info("walkscript: script failed", slog.Any("error", err), slog.Int("walks", r.Scene.Len()))
		return fmt.Errorf("walkscript: %w", err)
	}
	r.Log.Debug("walkscript: script done", slog.Int("walks", r.Scene.Len()))
	return nil
}
