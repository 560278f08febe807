// Command galaxygen generates procedural galaxy maps and queries saved ones.
//
// Usage:
//
//	galaxygen generate [--config galaxy.yaml] [--out galaxy_data.json] [--db galaxies.db]
//	                   [--svg map.svg] [--snapshots dir --every 50] [--metrics galaxy.prom]
//	                   [--count N --jobs J] [--seed S] [--stars N]
//	galaxygen route   (--in galaxy_data.json | --db galaxies.db --id UUID) [--hops] FROM TO
//	galaxygen inspect (--in galaxy_data.json | --db galaxies.db [--id UUID]) [--at X,Y]
//
// A .env file in the working directory is loaded before GALAXY_* overrides
// are read.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "galaxygen: .env: %v\n", err)
		os.Exit(1)
	}

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "galaxygen: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "galaxygen: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches args[0] to a subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		return runGenerate(ctx, rest, stdout, stderr)
	case "route":
		return runRoute(ctx, rest, stdout, stderr)
	case "inspect":
		return runInspect(ctx, rest, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: galaxygen <generate|route|inspect> [flags]")
	fmt.Fprintln(w, "run 'galaxygen <command> -h' for command flags")
}

// logFlags are shared by every subcommand.
type logFlags struct {
	level  string
	format string
}

func (l *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.level, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&l.format, "log-format", "console", "log encoding: console, json")
}

// newLogger builds a zap logger writing to stderr.
func newLogger(lf logFlags) (*zap.Logger, error) {
	var cfg zap.Config
	switch lf.format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("%w: log format %q", errUsage, lf.format)
	}

	switch lf.level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("%w: log level %q", errUsage, lf.level)
	}

	return cfg.Build()
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// parseFlags wraps flag parse failures in errUsage, leaving flag.ErrHelp alone.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	return nil
}
