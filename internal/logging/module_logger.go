package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

const (
	rootModule    = "helpdoc"
	convertModule = "helpdoc.convert"
	cliModule     = "helpdoc.cli"
	commandModule = "helpdoc.commands"
)

const (
	fieldSourcePath  = "source_path"
	fieldDerivedName = "derived_name"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ConvertLogger returns the logger namespace reserved for document conversion.
func ConvertLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, convertModule)
}

// CLILogger returns the logger namespace used by command line entry points.
func CLILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cliModule)
}

// CommandLogger returns the logger for the named command handler, under
// helpdoc.commands.<name>.
func CommandLogger(provider interfaces.LoggerProvider, name string) interfaces.Logger {
	name = strings.TrimSpace(name)
	if name == "" {
		return ModuleLogger(provider, commandModule)
	}
	return WithFields(ModuleLogger(provider, commandModule+"."+name), map[string]any{
		"command_module": name,
	})
}

// WithDocumentContext enriches the logger with the source path and derived
// output name of the document being converted. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, sourcePath, derivedName string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(sourcePath); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(derivedName); trimmed != "" {
		fields[fieldDerivedName] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches a copy of fields when logger implements
// interfaces.FieldsLogger. Other loggers are returned as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
