package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/ui/viewer"
)

type viewFlags struct {
	input inputFlags
}

func newViewCommand(opts *globalOptions) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a document in an interactive viewer",
		Long: `Open a document full screen. The document is laid out again at the new
width whenever the terminal is resized.

Keys:
  j/k, up/down    scroll one line
  space/b         scroll one page
  g/G             jump to the top or bottom
  q               quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, opts, flags)
		},
	}

	flags.input.register(cmd)

	return cmd
}

func runView(cmd *cobra.Command, args []string, opts *globalOptions, flags *viewFlags) error {
	ctx := cmd.Context()

	sess, err := newSession(ctx, opts, nil)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, args, &flags.input, sess.logger)
	if err != nil {
		return err
	}

	charWidth, lineHeight := sess.cellSize()
	m := viewer.New(doc, viewer.Options{
		Title:      filepath.Base(args[0]),
		Engine:     sess.engine,
		Backend:    sess.backend,
		CharWidth:  charWidth,
		LineHeight: lineHeight,
		Color:      sess.colorEnabled(cmd.OutOrStdout()),
	})

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}

	return nil
}
