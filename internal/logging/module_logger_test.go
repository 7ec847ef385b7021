package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		fields = map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "helpdoc.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, convertModule)

	if len(provider.requested) != 1 || provider.requested[0] != convertModule {
		t.Fatalf("expected module %s, got %v", convertModule, provider.requested)
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}

	if got, ok := rec.fields[0]["module"]; !ok || got != convertModule {
		t.Fatalf("expected module field %s, got %v", convertModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestCLILoggerRequestsCLIModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = CLILogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != cliModule {
		t.Fatalf("expected cli module request, got %v", provider.requested)
	}
}

func TestCommandLoggerScopesByCommand(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	CommandLogger(provider, " convert ")
	CommandLogger(provider, "")

	if len(provider.requested) != 2 ||
		provider.requested[0] != "helpdoc.commands.convert" ||
		provider.requested[1] != "helpdoc.commands" {
		t.Fatalf("unexpected logger names %v", provider.requested)
	}
	if rec.fields[1]["command_module"] != "convert" {
		t.Fatalf("expected command_module field, got %v", rec.fields)
	}
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithDocumentContext(rec, " docs/repl.md ", "")

	if len(rec.fields) != 1 {
		t.Fatalf("expected a single WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldSourcePath] != "docs/repl.md" {
		t.Fatalf("expected trimmed source path, got %v", rec.fields[0][fieldSourcePath])
	}
	if _, ok := rec.fields[0][fieldDerivedName]; ok {
		t.Fatalf("expected empty derived name to be skipped, got %v", rec.fields[0])
	}
}

func TestWithFieldsCopiesInput(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"run_id": "a"}

	WithFields(rec, fields)
	fields["run_id"] = "mutated"

	if len(rec.fields) != 1 || rec.fields[0]["run_id"] != "a" {
		t.Fatalf("expected fields to be copied, got %v", rec.fields)
	}
	if got := WithFields(nil, fields); got != nil {
		t.Fatalf("expected nil logger to stay nil, got %v", got)
	}
}
