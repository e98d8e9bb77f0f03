package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/accesskit-go/capture"
)

type diffOptions struct {
	*rootOptions
	All bool
}

type diffStep struct {
	Record int           `json:"record"`
	Line   int           `json:"line"`
	Delta  capture.Delta `json:"delta"`
}

func newDiffCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &diffOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "diff <capture-file>",
		Short: "Show what each record changed",
		Long: `Replay a capture file and print, for each record, the nodes it added,
removed or changed along with tree and focus changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := capture.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runDiff(opts, cmd.OutOrStdout(), capture.Replay(records))
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include records that changed nothing")

	return cmd
}

func diffSteps(steps []capture.Step, all bool) []diffStep {
	out := []diffStep{}
	for i, s := range steps {
		if !all && s.Delta.Empty() {
			continue
		}
		out = append(out, diffStep{Record: i + 1, Line: s.Record.Line, Delta: s.Delta})
	}
	return out
}

func runDiff(opts *diffOptions, w io.Writer, steps []capture.Step) error {
	out := diffSteps(steps, opts.All)
	if opts.Format != "text" {
		return writeStructured(w, opts.Format, out)
	}
	for _, d := range out {
		writeDiffText(w, d)
	}
	return nil
}

func writeDiffText(w io.Writer, d diffStep) {
	fmt.Fprintf(w, "record %d (line %d)\n", d.Record, d.Line)
	if d.Delta.Empty() {
		fmt.Fprintln(w, "  no change")
		return
	}
	for _, line := range strings.Split(strings.TrimRight(d.Delta.String(), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
