package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "helpdoc"
	// ConfigFileEnv names an explicit configuration file, bypassing discovery.
	ConfigFileEnv  = "HELPDOC_CONFIG"
	configFileName = "helpdoc"
)

// applyDefaults seeds Viper with DefaultConfig so every key is known to
// AutomaticEnv, including output_dir which has no meaningful default.
func applyDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("parser.extensions", []string{})
	v.SetDefault("parser.hard_wraps", defaults.Parser.HardWraps)
	v.SetDefault("parser.safe_mode", defaults.Parser.SafeMode)
	v.SetDefault("parser.heading_ids", defaults.Parser.HeadingIDs)
	v.SetDefault("parser.strip_front_matter", defaults.Parser.StripFrontMatter)
	v.SetDefault("logging.provider", defaults.Logging.Provider)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// Load resolves configuration with precedence: defaults < file < env.
// The file is either named by HELPDOC_CONFIG or discovered as helpdoc.{yaml,toml,json}
// under $XDG_CONFIG_HOME/helpdoc or the working directory. A missing
// discovered file is fine; a missing explicit file is an error. The result is
// not validated.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if explicit := strings.TrimSpace(os.Getenv(ConfigFileEnv)); explicit != "" {
		v.SetConfigFile(explicit)
	} else if v.ConfigFileUsed() == "" {
		v.SetConfigName(configFileName)
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, configFileName))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("helpdoc config: read config file: %w", err)
		}
	}

	// HELPDOC_OUTPUT_DIR, HELPDOC_LOGGING_LEVEL, HELPDOC_PARSER_HARD_WRAPS, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("helpdoc config: decode: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.Parser.Extensions = normalizeExtensions(cfg.Parser.Extensions)

	return cfg, nil
}

func normalizeExtensions(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
