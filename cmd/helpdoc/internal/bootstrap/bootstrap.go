package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/goliatone/go-helpdoc"
	"github.com/goliatone/go-helpdoc/internal/logging"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

// Options captures overrides for the helpdoc CLI bootstrap.
type Options struct {
	// Viper is the configuration source. Defaults to a fresh instance.
	Viper          *viper.Viper
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the helpdoc module and the CLI logger.
type Module struct {
	Module *helpdoc.Module
	Logger interfaces.Logger
}

// BuildModule loads configuration and constructs a module ready to convert.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := helpdoc.LoadConfig(opts.Viper)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	moduleOpts := []helpdoc.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, helpdoc.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := helpdoc.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise helpdoc module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.CLILogger(module.LoggerProvider()),
	}, nil
}
