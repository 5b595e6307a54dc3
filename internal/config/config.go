// Package config loads textline-regions settings from a TOML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the TOML file, then
// environment variables. Keys absent from the file keep their defaults, so a
// file may override a single policy constant.
//
//	refine = true
//
//	[policy]
//	perpendicular_gap = 1.5
//
//	[ocr]
//	language = "jpn_vert"
//
//	[log]
//	level = "debug"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/textline-regions/internal/merge"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "TEXTLINE_LOG_LEVEL"
	EnvOCRLanguage = "TEXTLINE_OCR_LANG"
	EnvRefine      = "TEXTLINE_REFINE"
)

// ErrInvalidConfig is returned by Validate and wraps every load failure
// caused by the file's content rather than by I/O.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full set of tunables.
type Config struct {
	// Policy holds the compatibility constants passed to merge.New.
	Policy merge.Policy `toml:"policy"`

	// Refine enables the region-level outlier split.
	Refine bool `toml:"refine"`

	OCR    OCRConfig    `toml:"ocr"`
	Detect DetectConfig `toml:"detect"`
	Log    LogConfig    `toml:"log"`
}

// OCRConfig configures the Tesseract collaborator.
type OCRConfig struct {
	// Language is a Tesseract language code such as "eng" or "jpn".
	Language string `toml:"language"`

	// VerticalLanguage is used for vertical regions when set; otherwise
	// Language is used for both orientations.
	VerticalLanguage string `toml:"vertical_language"`
}

// DetectConfig configures the heuristic line detector.
type DetectConfig struct {
	// MinConfidence drops candidate lines scoring below it.
	MinConfidence float64 `toml:"min_confidence"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Policy: merge.DefaultPolicy(),
		OCR:    OCRConfig{Language: "eng"},
		Detect: DetectConfig{MinConfidence: 0.3},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result. An empty path
// returns the defaults. Unknown keys are rejected so typos do not pass
// silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, perr.ErrorWithPosition())
		}
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from the process environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvOCRLanguage); ok && v != "" {
		c.OCR.Language = v
	}
	if v, ok := lookup(EnvRefine); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvRefine, v)
		}
		c.Refine = b
	}
	return c.Validate()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.OCR.Language == "" {
		return fmt.Errorf("%w: ocr.language must not be empty", ErrInvalidConfig)
	}
	if c.Detect.MinConfidence < 0 || c.Detect.MinConfidence > 1 {
		return fmt.Errorf("%w: detect.min_confidence must be in [0,1], got %v", ErrInvalidConfig, c.Detect.MinConfidence)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// MergeOptions returns the merge.Options described by the configuration.
func (c Config) MergeOptions(logger *log.Logger) merge.Options {
	return merge.Options{Policy: c.Policy, Refine: c.Refine, Logger: logger}
}

// LanguageFor returns the OCR language for a region orientation.
func (c Config) LanguageFor(o merge.Orientation) string {
	if o == merge.Vertical && c.OCR.VerticalLanguage != "" {
		return c.OCR.VerticalLanguage
	}
	return c.OCR.Language
}
