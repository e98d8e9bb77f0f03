package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/capture"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
	Format  string

	log *zap.Logger
}

var validFormats = []string{"text", "json", "yaml"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "accesskit-capture",
		Short: "Inspect accessibility tree capture files",
		Long: `Inspect the JSON-lines files written by the accesskit library when
ACCESSKIT_CAPTURE_PATH is set. Each line is one distinct tree update.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			if opts.Verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}
				opts.log = l
				capture.SetLogger(l.Named("capture"))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	cmd.AddCommand(newDumpCommand(opts))
	cmd.AddCommand(newDiffCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	cmd.AddCommand(newBrowseCommand(opts))
	cmd.AddCommand(newExportCommand(opts))

	return cmd
}
