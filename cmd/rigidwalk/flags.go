package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/internal/scene"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

// commonFlags are shared by every subcommand. Values only override the
// config file when the flag was given explicitly.
type commonFlags struct {
	fs *flag.FlagSet

	configPath   string
	angle        float64
	displacement float64
	offset       float64
	dirs         string
	startPrimary bool
	snowflake    int
	verbose      bool
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := &commonFlags{fs: fs}
	fs.StringVar(&cf.configPath, "config", "", "JSON or HuJSON configuration file")
	fs.Float64Var(&cf.angle, "angle", 0, "Direction of travel in degrees")
	fs.Float64Var(&cf.displacement, "displacement", config.DefaultDisplacement, "Length of the ideal line")
	fs.Float64Var(&cf.offset, "offset", config.DefaultOffset, "Maximum distance from the ideal line")
	fs.StringVar(&cf.dirs, "dirs", "8", "Allowed directions: 4 or 8")
	fs.BoolVar(&cf.startPrimary, "start-primary", false, "Start on the primary direction")
	fs.IntVar(&cf.snowflake, "snowflake", 0, "Plan this many walks fanning out evenly")
	fs.BoolVar(&cf.verbose, "v", false, "Enable debug logging")
	return fs, cf
}

// load reads the config file, applies explicit flags and validates.
func (cf *commonFlags) load() (*config.Config, error) {
	c := &config.Config{}
	if cf.configPath != "" {
		var err error
		if c, err = config.Load(cf.configPath); err != nil {
			return nil, err
		}
	}
	cf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "angle":
			c.SetAngleDegrees(cf.angle)
		case "displacement":
			c.SetDisplacement(cf.displacement)
		case "offset":
			c.SetOffset(cf.offset)
		case "dirs":
			c.SetDirections(cf.dirs)
		case "start-primary":
			c.SetStartPrimary(cf.startPrimary)
		case "snowflake":
			c.SetAngleCount(cf.snowflake)
		}
	})
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// logger sets up slog on stderr and hands it to the planner.
func (cf *commonFlags) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cf.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rigidwalk.SetLogger(log)
	return log
}

// scene plans a single walk, or a snowflake when -snowflake was given.
func (cf *commonFlags) scene(c *config.Config) (*scene.Scene, error) {
	p := scene.FromConfig(c)
	if cf.snowflake > 0 {
		return scene.Snowflake(p, c.GetAngleCount())
	}
	s, err := scene.Single(p)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return s, nil
}

// setup parses args and returns everything a render command needs.
func setup(fs *flag.FlagSet, cf *commonFlags, args []string, stderr io.Writer) (*config.Config, *scene.Scene, *slog.Logger, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	log := cf.logger(stderr)
	c, err := cf.load()
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := cf.scene(c)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("scene planned", slog.Int("walks", s.Len()))
	return c, s, log, nil
}
