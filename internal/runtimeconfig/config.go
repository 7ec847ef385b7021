package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-helpdoc/internal/markdown"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

var ErrOutputDirRequired = errors.New("helpdoc config: output directory is required")
var ErrParserExtensionUnknown = errors.New("helpdoc config: markdown extension is not supported")
var ErrLoggingProviderRequired = errors.New("helpdoc config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("helpdoc config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("helpdoc config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("helpdoc config: logging format is invalid")
var ErrTimeoutInvalid = errors.New("helpdoc config: timeout must be zero or positive")

// Config aggregates the settings of a helpdoc run.
type Config struct {
	// OutputDir receives every rendered fragment. There is no default: the
	// right directory depends on which help bundle is being built.
	OutputDir string        `mapstructure:"output_dir"`
	Parser    ParserConfig  `mapstructure:"parser"`
	Logging   LoggingConfig `mapstructure:"logging"`
	// Timeout bounds a whole conversion command. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions       []string `mapstructure:"extensions"`
	HardWraps        bool     `mapstructure:"hard_wraps"`
	SafeMode         bool     `mapstructure:"safe_mode"`
	HeadingIDs       bool     `mapstructure:"heading_ids"`
	StripFrontMatter bool     `mapstructure:"strip_front_matter"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider string `mapstructure:"provider"`
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
}

// DefaultConfig returns every default except OutputDir, which callers must supply.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			HeadingIDs: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// ParseOptions converts the parser section into renderer options.
func (cfg Config) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions:        append([]string(nil), cfg.Parser.Extensions...),
		HardWraps:         cfg.Parser.HardWraps,
		SafeMode:          cfg.Parser.SafeMode,
		DisableHeadingIDs: !cfg.Parser.HeadingIDs,
		StripFrontMatter:  cfg.Parser.StripFrontMatter,
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if unknown := markdown.SupportedExtensions(cfg.Parser.Extensions); len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrParserExtensionUnknown, strings.Join(unknown, ", "))
	}
	if cfg.Timeout < 0 {
		return ErrTimeoutInvalid
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
