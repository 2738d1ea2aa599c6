package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/textengine/internal/ui/pretty"
	"github.com/yaklabco/textengine/pkg/config"
	"github.com/yaklabco/textengine/pkg/layout"
)

type dumpFlags struct {
	input   inputFlags
	format  string
	compact bool
}

// dumpOutput is the machine-readable form of a layout result.
type dumpOutput struct {
	Width    int         `json:"width" yaml:"width"`
	Height   int         `json:"height" yaml:"height"`
	Commands []dumpEntry `json:"commands" yaml:"commands"`
}

// dumpEntry tags one display list command with its kind.
type dumpEntry struct {
	Kind string             `json:"kind" yaml:"kind"`
	Box  *layout.RenderBox  `json:"box,omitempty" yaml:"box,omitempty"`
	Text *layout.RenderText `json:"text,omitempty" yaml:"text,omitempty"`
}

func newDumpCommand(opts *globalOptions) *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the display list of a document",
		Long: `Lay out a document and print the resulting display list of box and text
commands. Reads standard input when no file is given.

Examples:
  textengine dump README.md                 Table of commands
  textengine dump --compact README.md       One command per line
  textengine dump --format json README.md   JSON for scripts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts, flags)
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "print one command per line instead of a table")

	return cmd
}

func runDump(cmd *cobra.Command, args []string, opts *globalOptions, flags *dumpFlags) error {
	format := config.OutputFormat(flags.format)
	if !format.IsValid() {
		return fmt.Errorf("%w: invalid format %q: must be text, json, or yaml", ErrUsage, flags.format)
	}

	sess, err := newSession(cmd.Context(), opts, &config.Config{Format: format})
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, args, &flags.input, sess.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := sess.layoutWidth(out)

	result, err := sess.layout(doc, width)
	if err != nil {
		return err
	}

	var content []byte
	switch sess.cfg.Format {
	case config.FormatJSON:
		content, err = json.MarshalIndent(newDumpOutput(result, width), "", "  ")
		content = append(content, '\n')
	case config.FormatYAML:
		content, err = marshalYAML(newDumpOutput(result, width))
	default:
		content = []byte(formatDumpText(sess, out, result, flags.compact))
	}
	if err != nil {
		return fmt.Errorf("encode display list: %w", err)
	}

	_, err = out.Write(content)
	return err
}

func formatDumpText(sess *session, out io.Writer, result *layout.Result, compact bool) string {
	styles := pretty.NewStyles(sess.colorEnabled(out))

	if compact || result.DisplayList.Len() == 0 {
		stats := pretty.Summarize(result.DisplayList, result.Height)
		return styles.FormatDisplayList(result.DisplayList) + styles.FormatSummaryOneLine(stats)
	}

	termWidth, _ := terminalWidth(out)
	return pretty.NewTableFormatter(styles, termWidth).FormatTable(result.DisplayList, result.Height)
}

func newDumpOutput(result *layout.Result, width int) dumpOutput {
	output := dumpOutput{
		Width:    width,
		Height:   result.Height,
		Commands: make([]dumpEntry, 0, result.DisplayList.Len()),
	}

	for _, cmd := range result.DisplayList.Commands {
		switch c := cmd.(type) {
		case layout.RenderBox:
			output.Commands = append(output.Commands, dumpEntry{Kind: "box", Box: &c})
		case layout.RenderText:
			output.Commands = append(output.Commands, dumpEntry{Kind: "text", Text: &c})
		}
	}

	return output
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(config.YAMLIndent())
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
