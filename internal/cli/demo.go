package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/logging"
	"github.com/yaklabco/textengine/internal/ui/pretty"
	"github.com/yaklabco/textengine/pkg/model"
)

// demoText is the original text of the sample document.
const demoText = "Hell🌍 World"

// demoEdits is the version history replayed by the demo command. Offsets
// are byte offsets into the document as it stands before each insert.
var demoEdits = []struct {
	offset int
	text   string
}{
	{offset: 14, text: ", again!"},
	{offset: 22, text: " (no really!)"},
	{offset: 8, text: " to the entire"},
}

type demoFlags struct {
	paint bool
	list  bool
}

func newDemoCommand(opts *globalOptions) *cobra.Command {
	flags := &demoFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the sample document's edit history",
		Long: `Build the sample document, apply its recorded inserts one at a time, and
print every version. The original text is never modified; each insert adds
a run that points into the edit buffer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.paint, "paint", false, "paint the final version")
	cmd.Flags().BoolVar(&flags.list, "list", false, "print the display list of the final version")

	return cmd
}

func runDemo(cmd *cobra.Command, opts *globalOptions, flags *demoFlags) error {
	sess, err := newSession(cmd.Context(), opts, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(sess.colorEnabled(out))

	doc := model.NewDocumentWithText(demoText)
	var builder strings.Builder

	text, err := doc.Text()
	if err != nil {
		return err
	}
	builder.WriteString(styles.FormatVersion(0, text, -1, ""))
	builder.WriteString("\n")

	for i, edit := range demoEdits {
		if err := doc.Insert(edit.offset, edit.text); err != nil {
			return fmt.Errorf("apply version %d: %w", i+1, err)
		}

		text, err := doc.Text()
		if err != nil {
			return err
		}

		sess.logger.Debug("applied insert",
			logging.FieldVersion, i+1,
			logging.FieldOffset, edit.offset,
			logging.FieldRuns, len(doc.Runs()),
		)

		builder.WriteString(styles.FormatVersion(i+1, text, edit.offset, edit.text))
		builder.WriteString("\n")
	}

	if flags.paint || flags.list {
		width := sess.layoutWidth(out)
		result, err := sess.layout(doc, width)
		if err != nil {
			return err
		}

		if flags.list {
			builder.WriteString("\n")
			builder.WriteString(styles.FormatDisplayList(result.DisplayList))
		}
		if flags.paint {
			builder.WriteString("\n")
			builder.WriteString(sess.painter(sess.colorEnabled(out)).
				Paint(result.DisplayList, width, result.Height).String())
			builder.WriteString("\n")
		}
		builder.WriteString(styles.FormatSummary(pretty.Summarize(result.DisplayList, result.Height)))
	}

	_, err = fmt.Fprint(out, builder.String())
	return err
}
