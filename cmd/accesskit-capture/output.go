package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wippyai/accesskit-go/tree"
)

// writeStructured writes v as indented JSON or as YAML. YAML goes through
// the JSON encoding so node properties keep their wire names.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		s, err := tree.Debug(v)
		if err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		_, err = io.WriteString(w, s)
		return err
	}
	return fmt.Errorf("format %q is not structured", format)
}

func describeNode(id tree.NodeID, n *tree.Node) string {
	s := fmt.Sprintf("%d %s", id, n.Role())
	if label, ok := n.Label(); ok {
		s += fmt.Sprintf(" %q", label)
	}
	return s
}
