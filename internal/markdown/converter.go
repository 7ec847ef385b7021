package markdown

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-helpdoc/internal/logging"
	"github.com/goliatone/go-helpdoc/pkg/interfaces"
)

// Config controls where the converter writes fragments and how it renders them.
type Config struct {
	// OutputDir receives every rendered fragment. It must already exist.
	OutputDir string
	// Parser holds the default rendering options.
	Parser interfaces.ParseOptions
}

// Converter implements interfaces.DocConverter for filesystem-backed help
// documents. Files are processed strictly in input order, one at a time.
type Converter struct {
	cfg      Config
	parser   interfaces.MarkdownParser
	writer   ArtifactWriter
	logger   interfaces.Logger
	readFile func(string) ([]byte, error)
}

var _ interfaces.DocConverter = (*Converter)(nil)

// ConverterOption customises a Converter.
type ConverterOption func(*Converter)

// WithParser overrides the Markdown parser. Defaults to a GoldmarkParser
// built from Config.Parser.
func WithParser(parser interfaces.MarkdownParser) ConverterOption {
	return func(c *Converter) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithWriter overrides the artifact writer. Defaults to a filesystem writer
// rooted at Config.OutputDir.
func WithWriter(writer ArtifactWriter) ConverterOption {
	return func(c *Converter) {
		if writer != nil {
			c.writer = writer
		}
	}
}

// WithLogger injects the logger used for per-file and batch entries.
func WithLogger(logger interfaces.Logger) ConverterOption {
	return func(c *Converter) {
		if logger == nil {
			c.logger = logging.NoOp()
			return
		}
		c.logger = logger
	}
}

// NewConverter constructs a converter for the configured output directory.
func NewConverter(cfg Config, opts ...ConverterOption) (*Converter, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	c := &Converter{
		cfg:      cfg,
		logger:   logging.NoOp(),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.parser == nil {
		c.parser = NewGoldmarkParser(cfg.Parser)
	}
	if c.writer == nil {
		c.writer = NewFSWriter(cfg.OutputDir)
	}
	return c, nil
}

// OutputDir reports the directory fragments are written to.
func (c *Converter) OutputDir() string {
	return c.cfg.OutputDir
}

// ConvertAll converts every path in order. The first failure aborts the batch:
// fragments written before it stay on disk and later paths are not touched.
// The returned results always cover the files written so far. The context is
// only consulted between files.
func (c *Converter) ConvertAll(ctx context.Context, paths []string) ([]interfaces.ConversionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.WithFields(c.logger, map[string]any{
		"run_id":     uuid.NewString(),
		"output_dir": c.cfg.OutputDir,
	})

	results := make([]interfaces.ConversionResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			logger.Warn("helpdoc.convert.batch.interrupted", "converted_count", len(results), "error", err)
			return results, err
		}

		result, err := c.convert(ctx, logger, path)
		if err != nil {
			logger.Error("helpdoc.convert.batch.failed",
				"converted_count", len(results),
				"remaining_count", len(paths)-len(results),
				"error", err,
			)
			return results, err
		}
		results = append(results, result)
	}

	logger.Info("helpdoc.convert.batch.completed", "converted_count", len(results))
	return results, nil
}

// ConvertFile converts a single Markdown file into its HTML fragment.
func (c *Converter) ConvertFile(ctx context.Context, path string) (interfaces.ConversionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.convert(ctx, c.logger, path)
}

// Render converts Markdown bytes using the converter's parser without touching disk.
func (c *Converter) Render(markdown []byte) ([]byte, error) {
	return c.parser.Parse(markdown)
}

func (c *Converter) convert(ctx context.Context, logger interfaces.Logger, path string) (interfaces.ConversionResult, error) {
	job := NewJob(path, c.cfg.OutputDir)
	logger = logging.WithDocumentContext(logger, job.SourcePath, job.DerivedName)

	source, err := c.readFile(job.SourcePath)
	if err != nil {
		return interfaces.ConversionResult{}, readError(job.SourcePath, err)
	}

	html, err := c.parser.Parse(source)
	if err != nil {
		return interfaces.ConversionResult{}, renderError(job.SourcePath, err)
	}

	target, err := c.writer.WriteFile(ctx, WriteRequest{
		Name:       job.DerivedName,
		Content:    html,
		SourcePath: job.SourcePath,
	})
	if err != nil {
		if target == "" {
			target = job.DerivedName
		}
		return interfaces.ConversionResult{}, writeError(job.SourcePath, target, err)
	}

	logger.Debug("helpdoc.convert.file.written", "output_path", target, "bytes", len(html))

	return interfaces.ConversionResult{
		SourcePath: job.SourcePath,
		OutputPath: target,
		Bytes:      len(html),
	}, nil
}
