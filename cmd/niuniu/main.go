package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/niuniu/internal/config"
	"github.com/lox/niuniu/internal/display"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	NoColor  bool             `help:"Disable styled output"`

	Eval  EvalCmd  `cmd:"" help:"Evaluate a single hand"`
	Play  PlayCmd  `cmd:"" help:"Interactive hand calculator"`
	Serve ServeCmd `cmd:"" help:"Run the evaluation service"`
	Odds  OddsCmd  `cmd:"" help:"Estimate outcome frequencies over random deals"`
	Batch BatchCmd `cmd:"" help:"Evaluate a file of hands and write a JSON report"`
}

// Runtime is shared by every command
type Runtime struct {
	Config *config.Config
	Logger *log.Logger
	Out    io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("niuniu"),
		kong.Description("Niu Niu hand evaluator with 3/6 interchangeability"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.NoColor {
		noColor := false
		cfg.Color = &noColor
	}
	ctx.FatalIfErrorf(cfg.Validate())

	display.SetColor(cfg.ColorEnabled())

	// The TUI owns the terminal, so it only logs when a file is configured.
	quiet := ctx.Command() == "play"
	logger, closeLog, err := setupLogger(cfg, quiet)
	ctx.FatalIfErrorf(err)
	defer closeLog()

	err = ctx.Run(&Runtime{Config: cfg, Logger: logger, Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}

func setupLogger(cfg *config.Config, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "niuniu",
		Level:           level,
	})
	return logger, closeFn, nil
}
