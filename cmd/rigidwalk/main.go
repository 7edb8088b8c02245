// rigidwalk plans and renders rigid walks from the command line.
//
// Run: go run ./cmd/rigidwalk plan -angle 30 -displacement 100 -offset 5
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errUsage is returned for a missing or unknown command.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errUsage
	}
	command, rest := args[0], args[1:]

	switch command {
	case "plan":
		return runPlan(rest, stdout, stderr)
	case "ascii":
		return runASCII(rest, stdout, stderr)
	case "png":
		return runPNG(rest, stdout, stderr)
	case "chart":
		return runChart(rest, stdout, stderr)
	case "script":
		return runScript(ctx, rest, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `rigidwalk - plan zig-zag walks restricted to a few directions

Usage: rigidwalk <command> [options]

Commands:
  plan     Print the planned steps of a walk
  ascii    Draw the walk in the terminal
  png      Rasterise the walk to a PNG file
  chart    Plot the walk (or its deviation profile) with gonum/plot
  script   Run a walk script and render the walks it plans
  help     Show this help message

Common Flags:
  -config <file>        JSON or HuJSON configuration file
  -angle <degrees>      Direction of travel (0 points down the screen)
  -displacement <n>     Length of the ideal straight line
  -offset <n>           Maximum distance from the ideal line
  -dirs <4|8>           Allowed directions
  -start-primary        Start on the primary direction
  -snowflake <n>        Plan n walks fanning out evenly instead of one
  -v                    Debug logging on stderr

Examples:
  rigidwalk plan -angle 30 -displacement 100 -offset 5
  rigidwalk ascii -snowflake 12 -dirs 4
  rigidwalk png -config walk.hujson -o walk.png
  rigidwalk chart -kind deviation -o deviation.svg
  rigidwalk script -o flake.png flake.js`)
}
