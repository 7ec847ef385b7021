package helpdoc

import (
	"github.com/spf13/viper"

	"github.com/goliatone/go-helpdoc/internal/runtimeconfig"
)

// Config is the runtime configuration accepted by New.
type Config = runtimeconfig.Config

// ParserConfig exports the renderer settings.
type ParserConfig = runtimeconfig.ParserConfig

// LoggingConfig exports the logging provider settings.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns every default except OutputDir.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig layers defaults, an optional config file and HELPDOC_* environment
// variables onto v. A nil v uses a fresh viper instance.
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	return runtimeconfig.Load(v)
}
