package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textengine/internal/configloader"
	"github.com/yaklabco/textengine/internal/logging"
	"github.com/yaklabco/textengine/pkg/config"
	"github.com/yaklabco/textengine/pkg/fsutil"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage textengine configuration",
		Long: `Create, inspect, and document textengine configuration.

Configuration is merged from defaults, /etc/textengine/config.yaml, the user
config directory, the nearest .textengine.yml, --config, TEXTENGINE_*
environment variables, and command-line flags, in increasing precedence.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigEnvCommand())

	return cmd
}

// initFlags holds the flags for the config init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newConfigInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Create a .textengine.yml configuration file in the current directory
holding the default values, each with a short description.

Examples:
  textengine config init                      Create .textengine.yml
  textengine config init --format json        Create .textengine.json instead
  textengine config init --output custom.yml  Write to a custom file path
  textengine config init --force              Overwrite, keeping a .bak copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file, keeping a .bak copy")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .textengine.yml or .textengine.json)")

	return cmd
}

func runConfigInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	logger := logging.NewInteractive()

	if flags.format != string(config.FormatYAML) && flags.format != string(config.FormatJSON) {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == string(config.FormatJSON) {
			outputPath = ".textengine.json"
		} else {
			outputPath = ".textengine.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return fmt.Errorf("%w: %q; use --force to overwrite", fsutil.ErrExists, outputPath)
		}
		backup, err := fsutil.CreateBackup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath, "backup", backup)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'textengine config env' to see the environment overrides")

	return nil
}

func newConfigShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after every file, environment variable, and flag has been merged.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd.Context(), opts, nil)
			if err != nil {
				return err
			}

			content, err := sess.cfg.ToYAMLWithHeader("# Effective textengine configuration")
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the supported environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := configloader.ListEnvVars()

			width := 0
			for _, v := range vars {
				width = max(width, len(v.Name))
			}

			var builder strings.Builder
			for _, v := range vars {
				builder.WriteString(fmt.Sprintf("%s  %s\n", rpad(v.Name, width), v.Description))
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), builder.String())
			return err
		},
	}
}
