package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/gpu-tools/gpuinfo/config"
	"github.com/gpu-tools/gpuinfo/discover"
	"github.com/gpu-tools/gpuinfo/inspect"
)

// discoverAdapters is overwritten in tests.
var discoverAdapters = discover.Adapters

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "gpuinfo",
		Usage:       "Print the info and capabilities of each graphics adapter on the system",
		UsageText:   "gpuinfo [global options] [option ...]",
		Description: keywordHelp(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file `PATH`",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: \"text\", \"json\" or \"toml\"",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colorize text output: \"auto\", \"always\" or \"never\"",
			},
			&cli.StringFlag{
				Name:  "debug",
				Usage: "Debug log file location. Logs go to stderr when empty",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log `LEVEL`: debug, info, warn or error",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}

			logger, cleanup, err := initLogger(cfg.DebugFilePath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer cleanup()

			args := ctx.Args().Slice()
			if len(args) == 0 {
				args = cfg.DefaultOptions
			}
			req := inspect.ParseRequest(args)
			if req.Help {
				return cli.ShowAppHelp(ctx)
			}

			if err := run(ctx.App.Writer, cfg, req, logger); err != nil {
				logger.Error(err.Error())
				return err
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "formats",
				Usage: "List the texture format names that can be queried",
				Action: func(ctx *cli.Context) error {
					return listFormats(ctx.App.Writer)
				},
			},
			{
				Name:  "nodes",
				Usage: "List DRM device nodes",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "oci",
						Usage: "Print the nodes as OCI runtime spec devices and cgroup allow rules",
					},
				},
				Action: func(ctx *cli.Context) error {
					return listNodes(ctx.App.Writer, ctx.Bool("oci"))
				},
			},
		},
	}
}

func keywordHelp() string {
	var b strings.Builder
	b.WriteString("Prints the info for each adapter on the system, followed by the requested options.\n\nOptions:\n")
	for _, k := range inspect.Keywords {
		fmt.Fprintf(&b, "   %-10s %s\n", k.Name, k.Usage)
	}
	b.WriteString("\nex: gpuinfo features limits r8unorm")
	return b.String()
}

// loadConfig reads the config file and applies flags that were set.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if ctx.IsSet("output") {
		cfg.Output = ctx.String("output")
	}
	if ctx.IsSet("color") {
		cfg.Color = ctx.String("color")
	}
	if ctx.IsSet("debug") {
		cfg.DebugFilePath = ctx.String("debug")
	}
	if ctx.IsSet("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(ctx.String("log-level"))); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initLogger(filePath string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}
	if filePath == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	}

	logFile, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to open debug log file: %v", err)
	}

	log := slog.New(slog.NewJSONHandler(logFile, opts))

	return log, func() { _ = logFile.Close() }, nil
}

func colorProfile(mode string) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

func run(w io.Writer, cfg *config.Config, req inspect.Request, logger *slog.Logger) (err error) {
	logger = logger.With("run_id", uuid.NewString())
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("panic: %s", r))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	renderer, err := inspect.NewRenderer(cfg.Output, colorProfile(cfg.Color))
	if err != nil {
		return err
	}

	if cfg.WGPULogLevel != "" && !discover.SetLogLevel(cfg.WGPULogLevel) {
		logger.Warn("Unknown wgpu log level", "level", cfg.WGPULogLevel)
	}

	adapters, err := discoverAdapters()
	if err != nil {
		return fmt.Errorf("inspecting adapters: %w", err)
	}
	defer discover.ReleaseAll(adapters)
	logger.Info("Found adapters", "count", len(adapters))

	for _, opt := range req.Options {
		if opt.Kind == inspect.KindIllegal {
			logger.Warn("Option is not legal", "option", opt.Token)
		}
	}

	reports := inspect.Build(adapters, req)
	return renderer.Render(w, reports)
}
