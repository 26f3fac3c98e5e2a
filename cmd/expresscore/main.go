// expresscore runs the train's character scripts in a debugger shell.
// Usage: expresscore [--version] [--config <file>] [--plain] [--script <file>] [--trace] [--run]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/nathoo/expresscore/cli"
	"github.com/nathoo/expresscore/config"
	"github.com/nathoo/expresscore/engine"
	"github.com/nathoo/expresscore/engine/events"
	"github.com/nathoo/expresscore/loader"
	"github.com/nathoo/expresscore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: expresscore [--version] [--config <file>] [--plain] [--script <file>] [--trace] [--run]"

func main() {
	plain := false
	trace := false
	headless := false
	var configFile, scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("expresscore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--run":
			headless = true
		case "--config", "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a file path\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--config" {
				configFile = args[i+1]
			} else {
				scriptFile = args[i+1]
			}
			i++
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	var content *loader.Content
	if cfg.ContentDir != "" {
		content, err = loader.Load(cfg.ContentDir)
		if err != nil {
			log.Fatal("loading content", zap.String("dir", cfg.ContentDir), zap.Error(err))
		}
	}

	eng, err := engine.New(cfg, content, engine.Deps{}, log)
	if err != nil {
		log.Fatal("creating engine", zap.Error(err))
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := eng.Run(ctx, &events.Ticks{}); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("run stopped", zap.Error(err))
		}
		log.Info("run finished",
			zap.Uint32("ticks", eng.Clock.NowTicks()),
			zap.Uint32("time", uint32(eng.Clock.Now())),
			zap.Bool("game_over", eng.State.GameOver != nil))
		return
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			log.Fatal("opening script", zap.String("file", scriptFile), zap.Error(err))
		}
		defer f.Close()
		c := cli.New(eng, cfg.SaveDir)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng, cfg.SaveDir)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, cli.New(eng, cfg.SaveDir)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
