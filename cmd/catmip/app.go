package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/config"
)

// app carries the resolved configuration and logger shared by all
// subcommands. It is populated by the root command's PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath   string
		logLevel     string
		standardsDir string
		buildDir     string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "CAT-MIP terminology registry toolchain",
		Long: `Catmip maintains the CAT-MIP terminology registry.

It renders the documentation site with automatic term cross-linking,
exports the JSON indexes, the vendor prompt CSV and the SKOS vocabulary,
and keeps the YAML term sources consistent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath, logLevel, standardsDir, buildDir, strict)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&standardsDir, "standards", "", "Standards tree root (overrides config)")
	cmd.PersistentFlags().StringVar(&buildDir, "build-dir", "", "Artifact output directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&strict, "strict", false, "Escalate registry warnings to errors")

	cmd.AddCommand(
		buildCmd(a),
		jsonCmd(a),
		csvCmd(a),
		skosCmd(a),
		verifyCmd(a),
		newCmd(a),
		convertCmd(a),
		versionCmd(),
	)

	return cmd
}

// setup configures logging and resolves the effective configuration:
// layered defaults, an explicit --config file when given, then flag
// overrides.
func (a *app) setup(configPath, logLevel, standardsDir, buildDir string, strict bool) error {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	cfg := config.DefaultConfig()
	if configPath != "" {
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.Merge(fileCfg)
	} else {
		loaded, err := config.NewLoader(a.logger).Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if standardsDir != "" {
		cfg.Registry.StandardsDir = standardsDir
	}
	if buildDir != "" {
		cfg.Registry.BuildDir = buildDir
	}
	if strict {
		cfg.Registry.Strict = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
