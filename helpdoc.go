package helpdoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-helpdoc/internal/commands"
	convertcmd "github.com/goliatone/go-helpdoc/internal/commands/convert"
	"github.com/goliatone/go-helpdoc/internal/logging"
	"github.com/goliatone/go-helpdoc/internal/logging/console"
	"github.com/goliatone/go-helpdoc/internal/logging/gologger"
	"github.com/goliatone/go-helpdoc/internal/markdown"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

// ConversionResult exports the per-file result DTO.
type ConversionResult = interfaces.ConversionResult

// ConvertDocumentsCommand exports the batch conversion command message.
type ConvertDocumentsCommand = convertcmd.ConvertDocumentsCommand

// Module wires the converter, command handler and logger provider for a run.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	converter *markdown.Converter
	handler   *convertcmd.ConvertDocumentsHandler
}

// Option overrides a collaborator used by New.
type Option func(*options)

type options struct {
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	writer   markdown.ArtifactWriter
}

// WithLoggerProvider replaces the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithParser replaces the goldmark parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// WithWriter replaces the filesystem writer.
func WithWriter(writer markdown.ArtifactWriter) Option {
	return func(o *options) {
		o.writer = writer
	}
}

// New validates cfg and constructs a module ready to convert documents.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	provider := o.provider
	if provider == nil {
		built, err := NewLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	converter, err := markdown.NewConverter(markdown.Config{
		OutputDir: strings.TrimSpace(cfg.OutputDir),
		Parser:    cfg.ParseOptions(),
	},
		markdown.WithParser(o.parser),
		markdown.WithWriter(o.writer),
		markdown.WithLogger(logging.ConvertLogger(provider)),
	)
	if err != nil {
		return nil, fmt.Errorf("helpdoc: build converter: %w", err)
	}

	handler := convertcmd.NewConvertDocumentsHandler(
		converter,
		logging.CommandLogger(provider, "convert"),
		commands.WithTimeout[ConvertDocumentsCommand](cfg.Timeout),
	)

	return &Module{
		cfg:       cfg,
		provider:  provider,
		converter: converter,
		handler:   handler,
	}, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Converter exposes the document converter.
func (m *Module) Converter() interfaces.DocConverter {
	return m.converter
}

// ConvertDocuments exposes the command handler used by the CLI.
func (m *Module) ConvertDocuments() *convertcmd.ConvertDocumentsHandler {
	return m.handler
}

// LoggerProvider returns the provider every module logger is derived from.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// ConvertAll runs paths through the conversion command and returns the
// fragments written, including those written before a failure. An empty
// batch is a no-op.
func (m *Module) ConvertAll(ctx context.Context, paths []string) ([]ConversionResult, error) {
	if len(paths) == 0 {
		return []ConversionResult{}, nil
	}
	err := m.handler.Execute(ctx, ConvertDocumentsCommand{Paths: paths})
	return m.handler.Results(), err
}

// Render converts Markdown bytes to an HTML fragment without touching disk.
func (m *Module) Render(source []byte) ([]byte, error) {
	return m.converter.Render(source)
}

// NewLoggerProvider builds the provider selected by cfg.Provider.
func NewLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		opts := console.Options{Writer: os.Stderr}
		if level := strings.TrimSpace(cfg.Level); level != "" {
			parsed, err := console.ParseLevel(level)
			if err != nil {
				return nil, err
			}
			opts.MinLevel = &parsed
		}
		return console.NewProvider(opts), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  cfg.Level,
			Format: cfg.Format,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("helpdoc: unknown logging provider %q", cfg.Provider)
	}
}
