package tree

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Debug renders v as block-style YAML. Key order follows the JSON
// encoding of v.
func Debug(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	blockStyle(&doc)

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Short sequences of scalars stay inline so that child lists and
// coordinates remain readable.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.SequenceNode:
		n.Style = 0
		if scalarsOnly(n) && len(n.Content) <= 8 {
			n.Style = yaml.FlowStyle
		}
	case yaml.MappingNode:
		n.Style = 0
	case yaml.ScalarNode:
		if n.Style == yaml.DoubleQuotedStyle {
			n.Style = 0
		}
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func scalarsOnly(n *yaml.Node) bool {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}
