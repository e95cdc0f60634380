package main

import (
	"flag"
	"fmt"

	"github.com/fwojciec/scribe"
	scribejson "github.com/fwojciec/scribe/json"
)

type flags struct {
	configPath string
	backend    string
	ollamaURL  string
	model      string
	apiKey     string
	outputDir  string
	logFile    string

	title       string
	keywords    string
	words       int
	images      int
	requestPath string
	json        bool
	save        bool
}

// parseFlags registers and parses the command line flags on set.
func parseFlags(set *flag.FlagSet, args []string) flags {
	var f flags
	set.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	set.StringVar(&f.backend, "backend", "", "Backend: ollama, gemini")
	set.StringVar(&f.ollamaURL, "ollama-url", "", "Ollama base URL")
	set.StringVar(&f.model, "model", "", "Model to preselect or use")
	set.StringVar(&f.apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	set.StringVar(&f.outputDir, "output-dir", "", "Directory for downloaded posts")
	set.StringVar(&f.logFile, "log", "", "Path to a log file")
	set.StringVar(&f.title, "title", "", "Post title; enables headless mode")
	set.StringVar(&f.keywords, "keywords", "", "Comma separated keywords")
	set.IntVar(&f.words, "words", 0, "Target word count (250-1000)")
	set.IntVar(&f.images, "images", 0, "Image count (1-5)")
	set.StringVar(&f.requestPath, "request", "", "Path to a JSON request file; enables headless mode")
	set.BoolVar(&f.json, "json", false, "Print the result as a JSON envelope")
	set.BoolVar(&f.save, "save", false, "Save the generated post to the output directory")
	// ExitOnError flag sets never return an error.
	_ = set.Parse(args)
	return f
}

func (f flags) headless() bool {
	return f.title != "" || f.requestPath != ""
}

// applyFlags overrides cfg with every flag that was given a value.
func applyFlags(cfg scribe.Config, f flags) scribe.Config {
	if f.backend != "" {
		cfg.Backend = f.backend
	}
	if f.ollamaURL != "" {
		cfg.OllamaURL = scribe.NormalizeURL(f.ollamaURL)
	}
	if f.model != "" {
		cfg.Model = f.model
	}
	if f.apiKey != "" {
		cfg.GeminiAPIKey = f.apiKey
	}
	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	return cfg
}

// buildRequest assembles the headless request from an optional request file
// and the flags, which take precedence. The model falls back to cfg.Model.
func buildRequest(f flags, cfg scribe.Config) (scribe.BlogRequest, error) {
	req := scribe.NewBlogRequest()
	if f.requestPath != "" {
		loaded, err := scribejson.LoadRequest(f.requestPath)
		if err != nil {
			return scribe.BlogRequest{}, fmt.Errorf("load request: %w", err)
		}
		req = loaded
	}
	if f.title != "" {
		req.Title = f.title
	}
	if f.keywords != "" {
		req.Keywords = f.keywords
	}
	if f.words != 0 {
		req.WordCount = f.words
	}
	if f.images != 0 {
		req.ImageCount = f.images
	}
	if f.model != "" || req.Model == "" {
		req.Model = cfg.Model
	}
	return req, nil
}
