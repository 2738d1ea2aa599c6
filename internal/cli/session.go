package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/textengine/internal/configloader"
	"github.com/yaklabco/textengine/internal/logging"
	"github.com/yaklabco/textengine/internal/ui/pretty"
	"github.com/yaklabco/textengine/pkg/config"
	"github.com/yaklabco/textengine/pkg/fsutil"
	"github.com/yaklabco/textengine/pkg/importer"
	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
	"github.com/yaklabco/textengine/pkg/model"
	"github.com/yaklabco/textengine/pkg/paint"
)

// stdinPath is the argument that selects standard input.
const stdinPath = "-"

// session is the resolved configuration and layout machinery for one
// command invocation.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	backend measure.WrappingBackend
	engine  *layout.Engine

	// explicitWidth is set when --width was given.
	explicitWidth bool
}

// newSession loads configuration with the global flags applied on top and
// builds the measurement backend and layout engine it describes.
func newSession(ctx context.Context, opts *globalOptions, cliCfg *config.Config) (*session, error) {
	logger := logging.FromContext(ctx)

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	cliCfg.Width = opts.width
	cliCfg.Backend = config.Backend(opts.backend)
	cliCfg.Color = config.ColorMode(opts.color)
	cliCfg.Debug = opts.debug

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: opts.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := result.Config
	if cfg.Debug {
		logging.SetLoggerLevel(logger, "debug")
	} else {
		logging.SetLoggerLevel(logger, cfg.LogLevel)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	backend, err := measure.New(string(cfg.Backend), cfg.CharWidth, cfg.LineHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	builder, err := newBuilder(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldWidth, cfg.Width,
		logging.FieldBackend, cfg.Backend,
		"color", cfg.Color,
	)

	return &session{
		cfg:           cfg,
		logger:        logger,
		backend:       backend,
		engine:        layout.NewEngine(layout.Options{Builder: builder, Logger: logger}),
		explicitWidth: opts.width > 0,
	}, nil
}

// newBuilder returns the default box policy with the configured info box
// styling.
func newBuilder(cfg *config.Config) (*layout.DefaultBuilder, error) {
	builder := layout.NewDefaultBuilder()
	builder.InfoBoxPadding = cfg.InfoBox.Padding

	if cfg.InfoBox.Background != "" {
		bg, err := layout.ParseColour(cfg.InfoBox.Background)
		if err != nil {
			return nil, err
		}
		builder.InfoBoxBackground = bg
	}

	return builder, nil
}

// cellSize returns the layout units per painted column and row.
func (s *session) cellSize() (int, int) {
	if s.cfg.Backend == config.BackendMonospace {
		return s.cfg.CharWidth, s.cfg.LineHeight
	}
	return 1, 1
}

// layoutWidth returns the viewport width for output written to w. The
// terminal width is used when nothing configured a width explicitly.
func (s *session) layoutWidth(w io.Writer) int {
	if s.explicitWidth || s.cfg.Width != config.DefaultWidth {
		return s.cfg.Width
	}

	cols, ok := terminalWidth(w)
	if !ok {
		return s.cfg.Width
	}
	charWidth, _ := s.cellSize()
	return cols * charWidth
}

// colorEnabled reports whether output written to w should be coloured.
func (s *session) colorEnabled(w io.Writer) bool {
	return pretty.IsColorEnabled(string(s.cfg.Color), w)
}

// painter returns a painter matching the session's backend.
func (s *session) painter(color bool) *paint.Painter {
	charWidth, lineHeight := s.cellSize()
	return paint.New(paint.Options{
		Wrapper:    s.backend,
		CharWidth:  charWidth,
		LineHeight: lineHeight,
		Color:      color,
	})
}

// layout runs one layout pass over doc.
func (s *session) layout(doc *model.Document, width int) (*layout.Result, error) {
	result, err := s.engine.Layout(doc, width, s.backend)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return result, nil
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// inputFlags selects how a document is imported.
type inputFlags struct {
	from   string
	flavor string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "auto", "input format: auto, markdown, text")
	cmd.Flags().StringVar(&f.flavor, "flavor", "gfm", "Markdown flavor: gfm, commonmark")
}

// loadDocument reads the document named by args (standard input when args
// is empty or "-") and imports it.
func loadDocument(cmd *cobra.Command, args []string, flags *inputFlags, logger *log.Logger) (*model.Document, error) {
	ctx := cmd.Context()

	format, err := importer.ParseFormat(flags.from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	path := stdinPath
	if len(args) > 0 {
		path = args[0]
	}

	var content []byte
	if path == stdinPath {
		content, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		path = ""
	} else {
		content, _, err = fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
	}

	doc, detected, err := importer.Import(ctx, path, content, importer.Options{
		Format: format,
		Flavor: flags.flavor,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("imported document",
		logging.FieldPath, path,
		logging.FieldFormat, detected,
		logging.FieldLength, doc.Len(),
		logging.FieldRuns, len(doc.Runs()),
	)

	return doc, nil
}
