// Package viper loads scribe configuration from defaults, an optional YAML
// file, and the environment.
package viper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/scribe"
	"github.com/spf13/viper"
)

const envPrefix = "SCRIBE"

const (
	keyBackend         = "backend"
	keyOllamaURL       = "ollama_url"
	keyGeminiAPIKey    = "gemini_api_key"
	keyModel           = "model"
	keyOutputDir       = "output_dir"
	keyProbeTimeout    = "probe_timeout"
	keyGenerateTimeout = "generate_timeout"
	keyLogFile         = "log_file"
	keyLogLevel        = "log_level"
)

// Load builds a Config in increasing priority: defaults, the YAML file at
// path, then environment variables. An empty path skips the file; a path
// that cannot be read is an error.
func Load(path string) (scribe.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return scribe.Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Prefixed names win over the variables other tools already use.
	if err := v.BindEnv(keyOllamaURL, envPrefix+"_OLLAMA_URL", "OLLAMA_HOST"); err != nil {
		return scribe.Config{}, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv(keyGeminiAPIKey, envPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return scribe.Config{}, fmt.Errorf("bind env: %w", err)
	}

	probeTimeout, err := duration(v, keyProbeTimeout)
	if err != nil {
		return scribe.Config{}, err
	}
	generateTimeout, err := duration(v, keyGenerateTimeout)
	if err != nil {
		return scribe.Config{}, err
	}

	cfg := scribe.Config{
		Backend:         strings.ToLower(strings.TrimSpace(v.GetString(keyBackend))),
		OllamaURL:       scribe.NormalizeURL(v.GetString(keyOllamaURL)),
		GeminiAPIKey:    v.GetString(keyGeminiAPIKey),
		Model:           v.GetString(keyModel),
		OutputDir:       v.GetString(keyOutputDir),
		ProbeTimeout:    probeTimeout,
		GenerateTimeout: generateTimeout,
		LogFile:         v.GetString(keyLogFile),
		LogLevel:        v.GetString(keyLogLevel),
	}
	return cfg, nil
}

// duration reads key as a Go duration string ("5s", "2m30s"). A bare
// number is taken as seconds.
func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(fmt.Sprint(v.Get(key)))
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func setDefaults(v *viper.Viper) {
	d := scribe.DefaultConfig()
	v.SetDefault(keyBackend, d.Backend)
	v.SetDefault(keyOllamaURL, d.OllamaURL)
	v.SetDefault(keyOutputDir, d.OutputDir)
	v.SetDefault(keyProbeTimeout, d.ProbeTimeout)
	v.SetDefault(keyGenerateTimeout, d.GenerateTimeout)
	v.SetDefault(keyLogLevel, d.LogLevel)
}
