package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
	serveSampleFile string
	servePDF        bool
	serveTemplate   string
	serveLogLevel   string
	serveLogFormat  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume builder web server",
	Long: `Start an HTTP server that serves the resume form, keeps its repeatable
sections in sync, and renders previews and downloads.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveSampleFile, "sample", "", "Path to a JSON or YAML profile used by Load Sample Data")
	serveCmd.Flags().BoolVar(&servePDF, "pdf", false, "Enable PDF downloads (requires Chrome/Chromium)")
	serveCmd.Flags().StringVar(&serveTemplate, "template", "", "Default template choice")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig merges the config file, flags and defaults. Flags win.
func resolveServeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigFile != "" {
		loaded, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("sample") {
		cfg.SampleData = serveSampleFile
	}
	if flags.Changed("pdf") {
		cfg.PDFEnabled = servePDF
	}
	if flags.Changed("template") {
		cfg.DefaultTemplate = serveTemplate
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = serveLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = serveLogFormat
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildServerConfig turns the resolved configuration into server options.
func buildServerConfig(cfg config.Config) (server.Config, error) {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return server.Config{}, err
	}

	sessionCfg, err := config.NewSessionConfig()
	if err != nil {
		return server.Config{}, fmt.Errorf("failed to create session config: %w", err)
	}
	if sessionCfg.Secret == "" {
		logger.Warn("SESSION_SECRET not set; sessions will not survive a restart")
	}

	var profile *types.Profile
	if cfg.SampleData != "" {
		profile, err = sample.Load(cfg.SampleData)
		if err != nil {
			return server.Config{}, err
		}
		logger.WithField("path", cfg.SampleData).Info("Loaded sample data")
	}

	return server.Config{
		Port:            cfg.Port,
		DefaultTemplate: cfg.DefaultTemplate,
		PDFEnabled:      cfg.PDFEnabled,
		PDFTimeout:      time.Duration(cfg.PDFTimeoutSeconds) * time.Second,
		Sample:          profile,
		Logger:          logger,
		Session:         sessionCfg,
		RateLimit:       ratelimit.LoadConfig(),
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd)
	if err != nil {
		return err
	}

	srvCfg, err := buildServerConfig(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
