package convertcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-helpdoc/internal/commands"
	"github.com/goliatone/go-helpdoc/internal/logging"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

const convertOperation = "helpdoc.convert_documents"

var _ command.Commander[ConvertDocumentsCommand] = (*ConvertDocumentsHandler)(nil)

// ConvertDocumentsHandler runs a conversion batch through the shared command handler.
type ConvertDocumentsHandler struct {
	inner   *commands.Handler[ConvertDocumentsCommand]
	results []interfaces.ConversionResult
}

// NewConvertDocumentsHandler creates a handler bound to the supplied converter.
func NewConvertDocumentsHandler(converter interfaces.DocConverter, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertDocumentsCommand]) *ConvertDocumentsHandler {
	baseLogger := commands.EnsureLogger(logger)
	h := &ConvertDocumentsHandler{}

	exec := func(ctx context.Context, msg ConvertDocumentsCommand) error {
		results, err := converter.ConvertAll(ctx, msg.Paths)
		h.results = results
		if err != nil {
			return err
		}
		fields := map[string]any{"converted_count": len(results)}
		if dir, ok := converter.(interface{ OutputDir() string }); ok {
			fields["output_dir"] = dir.OutputDir()
		}
		logging.WithFields(baseLogger, fields).Info("helpdoc.command.convert_documents.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDocumentsCommand]{
		commands.WithLogger[ConvertDocumentsCommand](baseLogger),
		commands.WithOperation[ConvertDocumentsCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertDocumentsCommand) map[string]any {
			return map[string]any{
				"path_count": len(msg.Paths),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertDocumentsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	h.inner = commands.NewHandler(exec, handlerOpts...)
	return h
}

// Execute satisfies command.Commander[ConvertDocumentsCommand].
func (h *ConvertDocumentsHandler) Execute(ctx context.Context, msg ConvertDocumentsCommand) error {
	h.results = nil
	return h.inner.Execute(ctx, msg)
}

// Results returns the fragments written by the most recent Execute call,
// including those written before a failure.
func (h *ConvertDocumentsHandler) Results() []interfaces.ConversionResult {
	return append([]interfaces.ConversionResult(nil), h.results...)
}
