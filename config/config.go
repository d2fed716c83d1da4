// Package config loads RAWTERM_* environment settings and maps them onto terminal options.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/lixenwraith/rawterm/logging"
	"github.com/lixenwraith/rawterm/terminal"
)

// Prefix of every environment variable read by Load
const Prefix = "RAWTERM"

// Config holds terminal session and logging settings
type Config struct {
	HandleResize bool          `split_words:"true" default:"true" desc:"track SIGWINCH"`
	Async        bool          `default:"false" desc:"decode input on a background poller"`
	Encoding     string        `desc:"terminal charset (WHATWG label), empty for UTF-8"`
	PollInterval time.Duration `split_words:"true" default:"5ms" desc:"async poll period"`
	ColorHelper  string        `split_words:"true" default:"tput" desc:"color count query command"`

	LogLevel string `split_words:"true" default:"info" desc:"debug, info, warn or error"`
	LogDev   bool   `split_words:"true" default:"false" desc:"console log format"`
	LogFile  string `split_words:"true" desc:"log destination, empty disables logging"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		HandleResize: true,
		PollInterval: terminal.DefaultPollInterval,
		ColorHelper:  terminal.DefaultColorHelper,
		LogLevel:     "info",
	}
}

// Usage prints the recognized environment variables to stdout
func Usage() error {
	return envconfig.Usage(Prefix, &Config{})
}

// ResolveEncoding maps a charset label to an encoding; UTF-8 and empty map to nil
func ResolveEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// Logger builds the configured logger; no file means a no-op logger
func (c *Config) Logger() (*zap.Logger, error) {
	if c.LogFile == "" {
		return zap.NewNop(), nil
	}
	return logging.New(logging.FileConfig(c.LogFile, c.LogLevel, c.LogDev))
}

// Options maps the configuration onto a stdin/stdout session
func (c *Config) Options(logger *zap.Logger) (terminal.Options, error) {
	enc, err := ResolveEncoding(c.Encoding)
	if err != nil {
		return terminal.Options{}, err
	}

	opts := terminal.DefaultOptions()
	opts.HandleResize = c.HandleResize
	opts.Async = c.Async
	opts.In = os.Stdin
	opts.Out = os.Stdout
	opts.Encoding = enc
	opts.PollInterval = c.PollInterval
	opts.ColorHelper = c.ColorHelper
	opts.Logger = logger
	return opts, nil
}
