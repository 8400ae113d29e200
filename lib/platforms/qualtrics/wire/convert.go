package wire

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// ToPlain deep-converts a parsed XML tree into plain nested
// map[string]any / string data with no remaining references to the node
// type, so the result can be treated the same as decoded JSON.
//
// Sibling elements sharing a name collapse last-write-wins, since the
// target shape is a mapping and cannot hold duplicate keys. Attributes,
// comments and processing instructions are dropped.
func ToPlain(node *xmlquery.Node) any {
	if node == nil {
		return nil
	}

	switch node.Type {
	case xmlquery.DocumentNode:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == xmlquery.ElementNode {
				return ToPlain(child)
			}
		}
		return nil
	case xmlquery.TextNode, xmlquery.CharDataNode:
		return node.Data
	}

	var out map[string]any
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if out == nil {
			out = map[string]any{}
		}
		out[child.Data] = ToPlain(child)
	}
	if out != nil {
		return out
	}

	// leaf element: its text content is the scalar value
	return strings.TrimSpace(node.InnerText())
}
