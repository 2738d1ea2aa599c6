package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/logging"
	"github.com/yaklabco/textengine/internal/ui/pretty"
	"github.com/yaklabco/textengine/pkg/config"
	"github.com/yaklabco/textengine/pkg/importer"
	"github.com/yaklabco/textengine/pkg/runner"
)

// ErrFilesFailed is returned when at least one file could not be laid out.
var ErrFilesFailed = errors.New("some files failed")

type statsFlags struct {
	input  inputFlags
	format string
	ignore []string
	jobs   int
}

// statsEntry is the machine-readable form of a runner.FileOutcome.
type statsEntry struct {
	Path       string `json:"path" yaml:"path"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
	Length     int    `json:"length" yaml:"length"`
	Runs       int    `json:"runs" yaml:"runs"`
	Paragraphs int    `json:"paragraphs" yaml:"paragraphs"`
	Commands   int    `json:"commands" yaml:"commands"`
	Height     int    `json:"height" yaml:"height"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newStatsCommand(opts *globalOptions) *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Lay out many documents and report their sizes",
		Long: `Lay out every Markdown and text file under the given paths in parallel
and report each document's length, element counts, and laid out height.

By default, processes .md, .markdown, and .txt files in the current
directory and subdirectories.

Examples:
  textengine stats                     Current directory
  textengine stats docs/ README.md     Selected paths
  textengine stats --ignore 'vendor/**' --format json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts, flags)
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json, yaml")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip (repeatable)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (default: number of CPUs)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *globalOptions, flags *statsFlags) error {
	ctx := cmd.Context()

	format := config.OutputFormat(flags.format)
	if !format.IsValid() {
		return fmt.Errorf("%w: invalid format %q: must be text, json, or yaml", ErrUsage, flags.format)
	}

	inputFormat, err := importer.ParseFormat(flags.input.from)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	sess, err := newSession(ctx, opts, &config.Config{Format: format})
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Width:        sess.layoutWidth(out),
		Import:       importer.Options{Format: inputFormat, Flavor: flags.input.flavor},
		Engine:       sess.engine,
		Backend:      sess.backend,
	}

	sess.logger.Debug("starting stats run",
		"paths", runOpts.Paths,
		logging.FieldWidth, runOpts.Width,
		"jobs", runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return err
	}

	entries := make([]statsEntry, 0, len(result.Files))
	for _, file := range result.Files {
		entries = append(entries, newStatsEntry(file, workDir))
	}

	var content []byte
	switch sess.cfg.Format {
	case config.FormatJSON:
		content, err = json.MarshalIndent(entries, "", "  ")
		content = append(content, '\n')
	case config.FormatYAML:
		content, err = marshalYAML(entries)
	default:
		content = []byte(formatStatsText(pretty.NewStyles(sess.colorEnabled(out)), entries, result.Stats))
	}
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if _, err := out.Write(content); err != nil {
		return err
	}

	if result.HasErrors() {
		for _, file := range result.Files {
			if file.Error != nil {
				sess.logger.Error("layout failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			}
		}
		return ErrFilesFailed
	}

	return nil
}

func newStatsEntry(file runner.FileOutcome, workDir string) statsEntry {
	entry := statsEntry{
		Path:       displayRel(file.Path, workDir),
		Length:     file.Length,
		Runs:       file.Runs,
		Paragraphs: file.Paragraphs,
		Commands:   file.Commands,
		Height:     file.Height,
	}
	if file.Format != importer.FormatAuto {
		entry.Format = string(file.Format)
	}
	if file.Error != nil {
		entry.Error = file.Error.Error()
	}
	return entry
}

// displayRel shortens path relative to workDir when it lies beneath it.
func displayRel(path, workDir string) string {
	if rest, ok := strings.CutPrefix(path, workDir+string(os.PathSeparator)); ok {
		return rest
	}
	return path
}

func formatStatsText(styles *pretty.Styles, entries []statsEntry, stats runner.Stats) string {
	if len(entries) == 0 {
		return styles.Dim.Render("No documents found") + "\n"
	}

	pathWidth := len("PATH")
	for _, e := range entries {
		pathWidth = max(pathWidth, len(e.Path))
	}

	var builder strings.Builder
	header := fmt.Sprintf("%s  %-8s  %8s  %5s  %10s  %8s  %6s",
		rpad("PATH", pathWidth), "FORMAT", "LENGTH", "RUNS", "PARAGRAPHS", "COMMANDS", "HEIGHT")
	builder.WriteString(styles.TableHeader.Render(header))
	builder.WriteString("\n")

	for _, e := range entries {
		if e.Error != "" {
			builder.WriteString(rpad(e.Path, pathWidth) + "  " + styles.Error.Render(e.Error) + "\n")
			continue
		}
		builder.WriteString(fmt.Sprintf("%s  %-8s  %8d  %5d  %10d  %8d  %6d\n",
			rpad(e.Path, pathWidth), e.Format, e.Length, e.Runs, e.Paragraphs, e.Commands, e.Height))
	}

	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("%s documents, %s failed, %s commands, total height %s\n",
		styles.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)),
		styles.SummaryValue.Render(strconv.Itoa(stats.FilesErrored)),
		styles.SummaryValue.Render(strconv.Itoa(stats.Commands)),
		styles.SummaryValue.Render(strconv.Itoa(stats.Height)),
	))

	return builder.String()
}
