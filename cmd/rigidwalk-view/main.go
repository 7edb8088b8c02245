// rigidwalk-view is the interactive terminal viewer for rigid walks.
//
// Run: go run ./cmd/rigidwalk-view -config walk.hujson -log /tmp/walk.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/rigidwalk/internal/config"
	"github.com/wesen/rigidwalk/internal/walkui"
	"github.com/wesen/rigidwalk/pkg/rigidwalk"
)

func main() {
	configPath := flag.String("config", "", "JSON or HuJSON configuration file")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	c := &config.Config{}
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return err
		}
	}

	m := walkui.NewModel(c)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		rigidwalk.SetLogger(log)
		m.Log = log
	}

	_, err := tea.NewProgram(m).Run()
	return err
}
