package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/creasty/defaults"
)

const (
	ModelEnv  = "OLLAMA_MODEL"
	RenderEnv = "LAI_RENDER"

	RenderPlain    = "plain"
	RenderMarkdown = "markdown"
)

// Config holds the settings resolved once at startup.
type Config struct {
	Model  string `default:"llama3.2"`
	Render string `default:"plain"`
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// newDefaultConfig returns a Config populated from its struct tags.
func newDefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return cfg, nil
}

// Load resolves the configuration from the environment. A nil lookup
// reads the process environment.
func Load(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg, err := newDefaultConfig()
	if err != nil {
		return nil, err
	}

	// Non-UTF-8 values are treated as unset.
	if model, ok := lookup(ModelEnv); ok && utf8.ValidString(model) {
		cfg.Model = model
	}

	if render, ok := lookup(RenderEnv); ok {
		cfg.Render = render
	}

	return cfg, nil
}

// RenderMode returns the validated render mode. It is checked only when
// output is about to be produced, so help still works with a bad value.
func (c *Config) RenderMode() (string, error) {
	switch c.Render {
	case RenderPlain, RenderMarkdown:
		return c.Render, nil
	default:
		return "", fmt.Errorf("invalid %s value %q: want %q or %q", RenderEnv, c.Render, RenderPlain, RenderMarkdown)
	}
}
