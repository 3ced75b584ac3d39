package mapper

import (
	"fmt"
	"strings"

	"github.com/thesolution-at/alz-backend/internal/domain"
)

// Long-form fields arrive either as a plain string or as a rich-document
// tree. The shape is decided once here, immediately after decoding the
// remote response; everything downstream works with the explicit pair
// (plain text, optional tree) and never re-inspects the raw value.

// isRichDocument reports whether a raw value is a rich-document tree
func isRichDocument(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	return m["nodeType"] == "document"
}

// decodeText converts a raw long-form value into plain text plus the
// original tree when the source was a rich document. Malformed rich text
// degrades to an empty string; a broken entry must never take down a
// listing.
func decodeText(v interface{}) (string, *domain.RichNode) {
	switch {
	case v == nil:
		return "", nil
	case isRichDocument(v):
		node, err := decodeRichNode(v)
		if err != nil {
			return "", nil
		}
		return flattenRichNode(node), node
	default:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", nil
	}
}

// decodeRichNode rebuilds the typed tree from the loose JSON shape
func decodeRichNode(v interface{}) (*domain.RichNode, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("rich text node is %T, not an object", v)
	}

	nodeType, ok := m["nodeType"].(string)
	if !ok {
		return nil, fmt.Errorf("rich text node without nodeType")
	}

	node := &domain.RichNode{NodeType: nodeType}
	if value, ok := m["value"].(string); ok {
		node.Value = value
	}

	if content, ok := m["content"].([]interface{}); ok {
		for _, child := range content {
			childNode, err := decodeRichNode(child)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, childNode)
		}
	}

	return node, nil
}

// block node types that end with a paragraph break in plain text
var blockNodeTypes = map[string]bool{
	"paragraph": true,
	"heading-1": true,
	"heading-2": true,
	"heading-3": true,
	"heading-4": true,
	"heading-5": true,
	"heading-6": true,
	"list-item": true,
}

// flattenRichNode walks the tree depth-first and concatenates all leaf
// text. Paragraph-like containers append one trailing newline so the
// paragraph breaks survive the conversion.
func flattenRichNode(node *domain.RichNode) string {
	if node == nil {
		return ""
	}

	var b strings.Builder
	flattenInto(&b, node)
	return b.String()
}

func flattenInto(b *strings.Builder, node *domain.RichNode) {
	if node.NodeType == "text" {
		b.WriteString(node.Value)
		return
	}

	for _, child := range node.Content {
		flattenInto(b, child)
	}

	if blockNodeTypes[node.NodeType] {
		b.WriteString("\n")
	}
}
