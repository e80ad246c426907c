package richtext

import (
	"encoding/json"
	"strconv"
)

const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeText           = "text"
	TypeHardBreak      = "hardBreak"
	TypeHorizontalRule = "horizontalRule"
	TypeImage          = "image"
)

const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkCode      = "code"
	MarkStrike    = "strike"
	MarkUnderline = "underline"
	MarkLink      = "link"
)

// Node is one element of a rich-text document tree. Containers carry
// Content, text leaves carry Text and Marks.
type Node struct {
	Type    string         `json:"type" yaml:"type"`
	Attrs   map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty" yaml:"content,omitempty"`
	Text    string         `json:"text,omitempty" yaml:"text,omitempty"`
	Marks   []Mark         `json:"marks,omitempty" yaml:"marks,omitempty"`
}

type Mark struct {
	Type  string         `json:"type" yaml:"type"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// EmptyDoc returns the smallest valid document.
func EmptyDoc() Node {
	return Node{Type: TypeDoc, Content: []Node{}}
}

// Doc wraps the given blocks into a document node.
func Doc(blocks ...Node) Node {
	if blocks == nil {
		blocks = []Node{}
	}
	return Node{Type: TypeDoc, Content: blocks}
}

// Paragraph builds a paragraph holding a single unmarked text leaf.
func Paragraph(text string) Node {
	if text == "" {
		return Node{Type: TypeParagraph}
	}
	return Node{Type: TypeParagraph, Content: []Node{{Type: TypeText, Text: text}}}
}

func (n Node) IsZero() bool {
	return n.Type == ""
}

// MarshalJSON always emits a content array for doc nodes so an empty
// document is stored as {"type":"doc","content":[]}.
func (n Node) MarshalJSON() ([]byte, error) {
	wire := struct {
		Type    string         `json:"type"`
		Attrs   map[string]any `json:"attrs,omitempty"`
		Content *[]Node        `json:"content,omitempty"`
		Text    string         `json:"text,omitempty"`
		Marks   []Mark         `json:"marks,omitempty"`
	}{
		Type:  n.Type,
		Attrs: n.Attrs,
		Text:  n.Text,
		Marks: n.Marks,
	}

	content := n.Content
	if n.Type == TypeDoc && content == nil {
		content = []Node{}
	}
	if n.Type == TypeDoc || len(content) > 0 {
		wire.Content = &content
	}

	return json.Marshal(wire)
}

// Normalize returns n in the shape it has after being stored and read back:
// empty containers lose their content and numeric attrs become float64.
// A tree that cannot be encoded is returned as a copy.
func Normalize(n Node) Node {
	data, err := json.Marshal(n)
	if err != nil {
		return n.Clone()
	}

	var out Node
	if err := json.Unmarshal(data, &out); err != nil {
		return n.Clone()
	}
	return out
}

// Clone returns a deep copy of the tree.
func (n Node) Clone() Node {
	out := Node{
		Type:  n.Type,
		Attrs: cloneAttrs(n.Attrs),
		Text:  n.Text,
	}

	if n.Content != nil {
		out.Content = make([]Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = child.Clone()
		}
	}

	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, mark := range n.Marks {
			out.Marks[i] = Mark{Type: mark.Type, Attrs: cloneAttrs(mark.Attrs)}
		}
	}

	return out
}

// Walk visits the tree depth-first. Returning false from fn skips the
// children of the visited node.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Content {
		child.Walk(fn)
	}
}

func cloneAttrs(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}

	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		switch value := v.(type) {
		case map[string]any:
			out[k] = cloneAttrs(value)
		case []any:
			out[k] = append([]any(nil), value...)
		default:
			out[k] = v
		}
	}

	return out
}

// attrInt reads a numeric attribute regardless of whether it came from
// JSON (float64), YAML (int) or a string.
func attrInt(attrs map[string]any, key string, fallback int) int {
	switch v := attrs[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func attrString(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}
