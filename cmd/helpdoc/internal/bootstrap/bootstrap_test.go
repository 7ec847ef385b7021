package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-helpdoc/internal/logging"
	"github.com/goliatone/go-helpdoc/internal/runtimeconfig"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

type nopProvider struct{}

func (nopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HELPDOC_CONFIG", "")
	t.Setenv("HELPDOC_OUTPUT_DIR", "")
	t.Chdir(t.TempDir())
}

func TestBuildModuleRequiresOutputDir(t *testing.T) {
	isolate(t)

	_, err := BuildModule(Options{LoggerProvider: nopProvider{}})
	if !errors.Is(err, runtimeconfig.ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestBuildModuleFromConfigFile(t *testing.T) {
	isolate(t)

	out := t.TempDir()
	file := filepath.Join(t.TempDir(), "helpdoc.yaml")
	content := "output_dir: " + out + "\nlogging:\n  provider: gologger\n  format: json\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HELPDOC_CONFIG", file)

	module, err := BuildModule(Options{})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	if module.Module == nil || module.Logger == nil {
		t.Fatal("expected module and logger to be configured")
	}
	if got := module.Module.Config().OutputDir; got != out {
		t.Fatalf("expected output dir %q, got %q", out, got)
	}
	if got := module.Module.Config().Logging.Provider; got != "gologger" {
		t.Fatalf("expected gologger provider, got %q", got)
	}
}
