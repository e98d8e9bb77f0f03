package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/tree"
)

type dumpOptions struct {
	*rootOptions
	Nodes bool
}

type dumpRecord struct {
	Record int              `json:"record"`
	Line   int              `json:"line"`
	Update *tree.TreeUpdate `json:"update"`
}

func newDumpCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &dumpOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump <capture-file>",
		Short: "Print every record of a capture file",
		Example: `  accesskit-capture dump /tmp/capture.jsonl
  accesskit-capture dump /tmp/capture.jsonl --nodes
  accesskit-capture dump /tmp/capture.jsonl --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := capture.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runDump(opts, cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().BoolVar(&opts.Nodes, "nodes", false, "list the nodes of each update in text output")

	return cmd
}

func runDump(opts *dumpOptions, w io.Writer, records []capture.Record) error {
	if opts.Format != "text" {
		out := make([]dumpRecord, len(records))
		for i, rec := range records {
			out[i] = dumpRecord{Record: i + 1, Line: rec.Line, Update: rec.Update}
		}
		return writeStructured(w, opts.Format, out)
	}

	for i, rec := range records {
		u := rec.Update
		fmt.Fprintf(w, "record %d (line %d): focus %d, %d nodes", i+1, rec.Line, u.Focus, len(u.Nodes))
		if u.Tree != nil {
			fmt.Fprintf(w, ", tree root %d", u.Tree.Root)
		}
		fmt.Fprintln(w)
		if opts.Nodes {
			for _, e := range u.Nodes {
				fmt.Fprintf(w, "  %s\n", describeNode(e.ID, e.Node))
			}
		}
	}
	return nil
}
