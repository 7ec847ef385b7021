package runtimeconfig_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-helpdoc/internal/runtimeconfig"
)

// isolate keeps Load away from any helpdoc config on the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(runtimeconfig.ConfigFileEnv, "")
	t.Setenv("HELPDOC_OUTPUT_DIR", "")
	t.Chdir(t.TempDir())
}

func TestLoadDefaultsWithoutSources(t *testing.T) {
	isolate(t)

	cfg, err := runtimeconfig.Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputDir != "" {
		t.Fatalf("expected empty output dir, got %q", cfg.OutputDir)
	}
	if cfg.Logging.Provider != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("expected console/info logging defaults, got %+v", cfg.Logging)
	}
	if !cfg.Parser.HeadingIDs || cfg.Parser.HardWraps {
		t.Fatalf("unexpected parser defaults %+v", cfg.Parser)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("HELPDOC_OUTPUT_DIR", " helper-resources/public/com/bhauman/figwheel/helper/content ")
	t.Setenv("HELPDOC_LOGGING_LEVEL", "debug")
	t.Setenv("HELPDOC_PARSER_EXTENSIONS", "gfm, footnote")
	t.Setenv("HELPDOC_TIMEOUT", "45s")

	cfg, err := runtimeconfig.Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputDir != "helper-resources/public/com/bhauman/figwheel/helper/content" {
		t.Fatalf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if len(cfg.Parser.Extensions) != 2 || cfg.Parser.Extensions[1] != "footnote" {
		t.Fatalf("unexpected extensions %v", cfg.Parser.Extensions)
	}
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("expected 45s timeout, got %s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected loaded config to validate, got %v", err)
	}
}

func TestLoadReadsExplicitFileAndEnvWins(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "helpdoc.yaml")
	content := []byte("output_dir: from-file\nparser:\n  safe_mode: true\nlogging:\n  provider: gologger\n  format: json\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(runtimeconfig.ConfigFileEnv, path)
	t.Setenv("HELPDOC_OUTPUT_DIR", "from-env")

	cfg, err := runtimeconfig.Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputDir != "from-env" {
		t.Fatalf("expected env to override file, got %q", cfg.OutputDir)
	}
	if !cfg.Parser.SafeMode {
		t.Fatal("expected safe_mode from file")
	}
	if cfg.Logging.Provider != "gologger" || cfg.Logging.Format != "json" {
		t.Fatalf("expected logging from file, got %+v", cfg.Logging)
	}
}

func TestLoadDiscoversWorkingDirectoryFile(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("helpdoc.toml", []byte("output_dir = \"helper\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.Load(viper.New())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputDir != "helper" {
		t.Fatalf("expected output dir from discovered file, got %q", cfg.OutputDir)
	}
}

func TestLoadFailsOnMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(runtimeconfig.ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := runtimeconfig.Load(viper.New()); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
