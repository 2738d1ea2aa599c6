package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/logging"
	"github.com/yaklabco/textengine/pkg/fsutil"
)

type renderFlags struct {
	input  inputFlags
	output string
}

func newRenderCommand(opts *globalOptions) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Paint a document to the terminal",
		Long: `Import a Markdown or plain text document, lay it out at the viewport
width, and paint the result. Reads standard input when no file is given.

Examples:
  textengine render README.md              Paint at the terminal width
  textengine render --width 40 notes.txt   Paint at a fixed width
  textengine render -o out.txt README.md   Write the painted text to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts, flags)
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the painted text to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *globalOptions, flags *renderFlags) error {
	ctx := cmd.Context()

	sess, err := newSession(ctx, opts, nil)
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

	color := flags.output == "" && sess.colorEnabled(out)
	canvas := sess.painter(color).Paint(result.DisplayList, width, result.Height)
	painted := canvas.String()
	if canvas.Rows() > 0 {
		painted += "\n"
	}

	if flags.output == "" {
		_, err := fmt.Fprint(out, painted)
		return err
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, []byte(painted), 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if written {
		sess.logger.Info("wrote rendered document", logging.FieldOutput, flags.output, logging.FieldHeight, result.Height)
	} else {
		sess.logger.Debug("rendered document unchanged", logging.FieldOutput, flags.output)
	}

	return nil
}
