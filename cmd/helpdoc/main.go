// Command helpdoc converts Markdown help documents into HTML fragments.
//
// Usage:
//
//	HELPDOC_OUTPUT_DIR=resources/public/help helpdoc docs/repl.md docs/compile.md
//
// Every argument is a source path. Fragments are written as <name>.html into
// the configured output directory, which must already exist. Conversion stops
// at the first failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-helpdoc/cmd/helpdoc/internal/bootstrap"
	"github.com/goliatone/go-helpdoc/internal/logging"
)

var moduleBuilder = bootstrap.BuildModule

var errUsage = errors.New("usage: helpdoc FILE...")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatalf("helpdoc: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	module, err := moduleBuilder(bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Module == nil {
		return fmt.Errorf("helpdoc module not configured")
	}

	logger := module.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	logger.Debug("helpdoc.cli.start", "path_count", len(args))

	results, err := module.Module.ConvertAll(ctx, args)
	for _, result := range results {
		fmt.Fprintf(stdout, "%s -> %s\n", result.SourcePath, result.OutputPath)
	}
	if err != nil {
		logger.Error("helpdoc.cli.failed", "converted_count", len(results), "error", err)
		return fmt.Errorf("convert documents: %w", err)
	}
	return nil
}
