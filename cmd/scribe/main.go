// Command scribe writes blog posts with a local Ollama server or the Gemini
// API.
//
// Usage:
//
//	scribe [flags]                      interactive form
//	scribe -title "..." [flags]         single headless generation
//	scribe -request post.json -json     headless, JSON envelope output
//
// Flags:
//
//	-config string      Path to a YAML config file
//	-backend string     Backend: ollama, gemini (default ollama)
//	-ollama-url string  Ollama base URL (default http://localhost:11434, or OLLAMA_HOST)
//	-model string       Model to preselect or use
//	-api-key string     Gemini API key (overrides GEMINI_API_KEY)
//	-output-dir string  Directory for downloaded posts (default ".")
//	-log string         Path to a log file
//	-title string       Post title; enables headless mode
//	-keywords string    Comma separated keywords
//	-words int          Target word count (250-1000)
//	-images int         Image count (1-5)
//	-request string     Path to a JSON request file; enables headless mode
//	-json               Print the result as a JSON envelope
//	-save               Save the generated post to the output directory
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/scribe"
	bt "github.com/fwojciec/scribe/bubbletea"
	"github.com/fwojciec/scribe/fs"
	scribeviper "github.com/fwojciec/scribe/viper"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errGenerationFailed) {
			fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	fl := parseFlags(flag.CommandLine, os.Args[1:])

	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg, err := scribeviper.Load(fl.configPath)
	if err != nil {
		return err
	}
	cfg = applyFlags(cfg, fl)
	if err := cfg.Validate(); err != nil {
		return err
	}

	headless := fl.headless()
	logger, closeLog, err := newLogger(cfg.LogFile, cfg.LogLevel, headless, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	backend, err := resolveBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	writer := scribe.NewWriter(backend, scribe.WithLogger(logger))
	logger.Info("starting", "backend", cfg.Backend, "service", backend.Name(), "headless", headless)

	if headless {
		req, err := buildRequest(fl, cfg)
		if err != nil {
			return err
		}
		if req.Model == "" {
			req.Model = scribe.ModelOptions(backend.Probe(ctx))[0]
		}
		return runHeadless(ctx, writer.Write, req, headlessOptions{
			JSON:      fl.json,
			Save:      fl.save,
			OutputDir: cfg.OutputDir,
		}, os.Stdout, os.Stderr)
	}

	probe := backend.Probe(ctx)
	logger.Info("startup probe", "available", probe.Available, "models", len(probe.Models))

	export := func(title, text string) (string, error) {
		path, err := fs.Save(cfg.OutputDir, title, text)
		if err != nil {
			logger.Error("export failed", "error", err)
			return "", err
		}
		logger.Info("exported", "path", path)
		return path, nil
	}
	tuiModel := bt.New(writer.Write, export, scribe.DefaultTheme(), bt.Config{
		Context: ctx,
		Service: backend.Name(),
		Probe:   probe,
		Model:   cfg.Model,
	})
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
