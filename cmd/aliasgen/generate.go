package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/strongtypes/aliasgen/internal/analyzer"
	"github.com/strongtypes/aliasgen/internal/config"
	"github.com/strongtypes/aliasgen/internal/generator"
)

type options struct {
	debug      bool
	logFile    string
	output     string
	configFile string
}

func setupLogging(opts *options) error {
	logWriter := os.Stderr
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", opts.logFile, err)
		}
		logWriter = f
	}

	logLevel := slog.LevelWarn
	if opts.debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))
	return nil
}

// runGenerate generates every directive directory; independent directories
// run concurrently.
func runGenerate(ctx context.Context, opts *options, dirs []string) error {
	eg, _ := errgroup.WithContext(ctx)
	for _, dir := range dirs {
		eg.Go(func() error {
			return generateDir(dir, opts)
		})
	}
	return eg.Wait()
}

func generateDir(dir string, opts *options) error {
	slog.Info("generating aliases", "dir", dir)

	cfg, err := config.NewParser().WithFile(opts.configFile).Parse(dir)
	if err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}
	if len(cfg.Declarations) == 0 {
		return nil
	}

	infos, err := analyzer.New().Analyze(cfg)
	if err != nil {
		return fmt.Errorf("%s: analysis failed: %w", dir, err)
	}

	code, err := generator.New().Generate(cfg, infos)
	if err != nil {
		return fmt.Errorf("%s: generation failed: %w", dir, err)
	}

	outputFile := opts.output
	if outputFile == "" {
		outputFile = cfg.Output
	}
	if outputFile == "" {
		outputFile = strings.ToLower(cfg.PackageName) + ".gen.go"
	}
	if !filepath.IsAbs(outputFile) {
		outputFile = filepath.Join(dir, outputFile)
	}
	if err := os.WriteFile(outputFile, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	slog.Info("wrote generated code", "file", outputFile, "aliases", len(infos))
	return nil
}
