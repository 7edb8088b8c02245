package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"

	"github.com/wesen/rigidwalk/internal/canvas"
	"github.com/wesen/rigidwalk/internal/chart"
	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/internal/sketch"
	"github.com/wesen/rigidwalk/internal/walkscript"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
	"github.com/wesen/rigidwalk/pkg/turtle"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// ── plan ──

func runPlan(args []string, stdout, stderr io.Writer) error {
	fs, cf := newFlagSet("plan", stderr)
	_, s, _, err := setup(fs, cf, args, stderr)
	if err != nil {
		return err
	}
	for i, e := range s.Entries {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		writePlan(stdout, e)
	}
	return nil
}

// writePlan prints a walk's planner fields and a table of its steps.
func writePlan(w io.Writer, e scene.Entry) {
	wk := e.Walk
	lipgloss.Fprintln(w, titleStyle.Render(wk.String()))
	if !wk.Degenerate() {
		fmt.Fprintf(w, "legs %.3f / %.3f  pair %.3f  repeat %d  remaining %.3f  last %.3f / %.3f\n",
			wk.PrimaryLegDistance(), wk.SecondaryLegDistance(), wk.PairDisplacement(),
			wk.RepeatCount(), wk.Remaining(), wk.LastPrimaryDistance(), wk.LastSecondaryDistance())
	}

	var origin r2.Vec
	segs := turtle.Trace(wk.Steps(e.StartPrimary), origin)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "angle", "distance", "x", "y").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, sg := range segs {
		t.Row(
			fmt.Sprint(sg.Index),
			fmt.Sprintf("%.2f°", rigidwalk.Degrees(sg.Step.Angle)),
			fmt.Sprintf("%.3f", sg.Step.Distance),
			fmt.Sprintf("%.3f", sg.To.X),
			fmt.Sprintf("%.3f", sg.To.Y),
		)
	}
	lipgloss.Fprintln(w, t.Render())

	end := turtle.End(segs, origin)
	fmt.Fprintf(w, "steps %d  path %.3f  end (%.3f, %.3f)\n", wk.StepCount(), wk.TotalDistance(), end.X, end.Y)
}

// ── ascii ──

func runASCII(args []string, stdout, stderr io.Writer) error {
	fs, cf := newFlagSet("ascii", stderr)
	width := fs.Int("width", 80, "Width in terminal cells")
	height := fs.Int("height", 24, "Height in terminal cells")
	grid := fs.Int("grid", 0, "Grid spacing in rows (0 disables)")
	c, s, _, err := setup(fs, cf, args, stderr)
	if err != nil {
		return err
	}
	writeASCII(stdout, s, c, *width, *height, *grid)
	return nil
}

func writeASCII(w io.Writer, s *scene.Scene, c *config.Config, width, height, grid int) {
	out := sketch.Render(s, width, height, sketch.Options{
		Palette:    c.GetPalette(),
		Background: c.GetBackground(),
		ShowGuides: c.GetShowGuides(),
		Grid:       grid,
	})
	lipgloss.Fprintln(w, out)
}

// ── png ──

func runPNG(args []string, stdout, stderr io.Writer) error {
	fs, cf := newFlagSet("png", stderr)
	out := fs.String("o", "walk.png", "Output file, - for stdout")
	c, s, log, err := setup(fs, cf, args, stderr)
	if err != nil {
		return err
	}
	return writePNG(*out, stdout, s, c, log)
}

func writePNG(path string, stdout io.Writer, s *scene.Scene, c *config.Config, log *slog.Logger) error {
	opts := canvas.OptionsFromConfig(c)
	opts.Log = log
	if path == "-" {
		return canvas.WritePNG(stdout, s, opts)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := canvas.WritePNG(f, s, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Info("wrote png", slog.String("path", path))
	return nil
}

// ── chart ──

func runChart(args []string, stdout, stderr io.Writer) error {
	fs, cf := newFlagSet("chart", stderr)
	out := fs.String("o", "walk.svg", "Output file; the extension picks the format")
	kind := fs.String("kind", "path", "Chart kind: path or deviation")
	size := fs.Float64("size", 360, "Chart size in points")
	title := fs.String("title", "", "Chart title")
	c, s, log, err := setup(fs, cf, args, stderr)
	if err != nil {
		return err
	}
	return writeChart(*out, *kind, *title, *size, s, c, log)
}

func writeChart(path, kind, title string, size float64, s *scene.Scene, c *config.Config, log *slog.Logger) error {
	opts := chart.Options{Title: title, Palette: c.GetPalette(), ShowGuides: c.GetShowGuides()}
	var build func(*scene.Scene, chart.Options) (*plot.Plot, error)
	switch kind {
	case "path":
		build = chart.Path
	case "deviation":
		build = chart.Deviation
	default:
		return fmt.Errorf("%w: unknown chart kind %q", errUsage, kind)
	}
	p, err := build(s, opts)
	if err != nil {
		return err
	}
	if err := chart.Save(p, size, size, path); err != nil {
		return err
	}
	log.Info("wrote chart", slog.String("path", path), slog.String("kind", kind))
	return nil
}

// ── script ──

func runScript(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, cf := newFlagSet("script", stderr)
	out := fs.String("o", "", "Render to this file (.png, .svg, .pdf); empty draws in the terminal")
	width := fs.Int("width", 80, "Terminal width for ascii output")
	height := fs.Int("height", 24, "Terminal height for ascii output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: script needs exactly one file", errUsage)
	}
	log := cf.logger(stderr)
	c, err := cf.load()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	r := walkscript.New()
	r.Log = log
	runErr := r.Run(ctx, string(src))
	for _, line := range r.Output {
		fmt.Fprintln(stdout, line)
	}
	if runErr != nil {
		return runErr
	}
	if r.Scene.Len() == 0 {
		return errors.New("script planned no walks")
	}

	switch ext := strings.ToLower(filepath.Ext(*out)); {
	case *out == "":
		writeASCII(stdout, r.Scene, c, *width, *height, 0)
		return nil
	case ext == ".png":
		return writePNG(*out, stdout, r.Scene, c, log)
	default:
		return writeChart(*out, "path", filepath.Base(fs.Arg(0)), 360, r.Scene, c, log)
	}
}
