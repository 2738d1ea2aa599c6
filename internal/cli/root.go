// Package cli provides the Cobra command structure for textengine.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	debug      bool
	configPath string
	color      string
	width      int
	backend    string
}

// NewRootCommand creates the root textengine command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "textengine",
		Short: "Lay out and paint rich-text documents",
		Long: `textengine lays out rich-text documents and paints them in the terminal.

Documents are held in a piece table, so every edit keeps the original text
intact. Markdown and plain text files are imported into a tree of frames,
paragraphs, runs and info boxes, laid out at a viewport width, and painted
from the resulting display list.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if opts.debug {
				level = "debug"
			}
			ctx, _ := logging.WithCommandLogger(cmd.Context(), cmd.ErrOrStderr(), level)
			cmd.SetContext(ctx)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.StringVar(&opts.color, "color", "", "colorize output: auto, always, never (default from config)")
	flags.IntVarP(&opts.width, "width", "w", 0, "layout width in backend units (default from config or terminal)")
	flags.StringVar(&opts.backend, "backend", "", "measurement backend: terminal, monospace (default from config)")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newDumpCommand(opts))
	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))
	rootCmd.AddCommand(newViewCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter("auto", rootCmd.OutOrStdout())
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
