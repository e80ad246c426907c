package richtext

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headings = [6]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// RenderHTML converts a document tree to an HTML fragment. Text and
// attribute values are escaped; links and images with unsafe URLs are
// dropped. Unknown node types render their children only.
func RenderHTML(doc Node) (string, error) {
	root := &html.Node{Type: html.DocumentNode}
	build(root, doc)

	var buf bytes.Buffer
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("render %s node: %w", child.Data, err)
		}
	}

	return buf.String(), nil
}

func build(parent *html.Node, n Node) {
	switch n.Type {
	case TypeText:
		appendText(parent, n)
	case TypeParagraph:
		buildChildren(appendElement(parent, atom.P), n)
	case TypeHeading:
		level := attrInt(n.Attrs, "level", 1)
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		buildChildren(appendElement(parent, headings[level-1]), n)
	case TypeBulletList:
		buildChildren(appendElement(parent, atom.Ul), n)
	case TypeOrderedList:
		var attrs []html.Attribute
		if start := attrInt(n.Attrs, "start", 1); start != 1 {
			attrs = append(attrs, html.Attribute{Key: "start", Val: strconv.Itoa(start)})
		}
		buildChildren(appendElement(parent, atom.Ol, attrs...), n)
	case TypeListItem:
		buildChildren(appendElement(parent, atom.Li), n)
	case TypeBlockquote:
		buildChildren(appendElement(parent, atom.Blockquote), n)
	case TypeCodeBlock:
		var attrs []html.Attribute
		if lang := strings.TrimSpace(attrString(n.Attrs, "language")); lang != "" {
			attrs = append(attrs, html.Attribute{Key: "class", Val: "language-" + lang})
		}
		code := appendElement(appendElement(parent, atom.Pre), atom.Code, attrs...)
		// Marks are meaningless inside code blocks.
		code.AppendChild(&html.Node{Type: html.TextNode, Data: PlainTextPreserving(n)})
	case TypeHardBreak:
		appendElement(parent, atom.Br)
	case TypeHorizontalRule:
		appendElement(parent, atom.Hr)
	case TypeImage:
		src := attrString(n.Attrs, "src")
		if !safeURL(src) {
			return
		}
		attrs := []html.Attribute{{Key: "src", Val: src}}
		for _, key := range []string{"alt", "title"} {
			if v := attrString(n.Attrs, key); v != "" {
				attrs = append(attrs, html.Attribute{Key: key, Val: v})
			}
		}
		appendElement(parent, atom.Img, attrs...)
	default:
		buildChildren(parent, n)
	}
}

func buildChildren(parent *html.Node, n Node) {
	for _, child := range n.Content {
		build(parent, child)
	}
}

func appendText(parent *html.Node, n Node) {
	if n.Text == "" {
		return
	}

	current := parent
	for _, mark := range n.Marks {
		if el := markElement(mark); el != nil {
			current.AppendChild(el)
			current = el
		}
	}

	current.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
}

func markElement(mark Mark) *html.Node {
	switch mark.Type {
	case MarkBold:
		return element(atom.Strong)
	case MarkItalic:
		return element(atom.Em)
	case MarkCode:
		return element(atom.Code)
	case MarkStrike:
		return element(atom.S)
	case MarkUnderline:
		return element(atom.U)
	case MarkLink:
		href := attrString(mark.Attrs, "href")
		if !safeURL(href) {
			return nil
		}
		attrs := []html.Attribute{{Key: "href", Val: href}}
		if target := attrString(mark.Attrs, "target"); target != "" {
			attrs = append(attrs, html.Attribute{Key: "target", Val: target})
		}
		attrs = append(attrs, html.Attribute{Key: "rel", Val: "noopener noreferrer nofollow"})
		return element(atom.A, attrs...)
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func appendElement(parent *html.Node, a atom.Atom, attrs ...html.Attribute) *html.Node {
	el := element(a, attrs...)
	parent.AppendChild(el)
	return el
}

func safeURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

// PlainTextPreserving concatenates the text leaves of n keeping whitespace
// and line breaks untouched, as code blocks need.
func PlainTextPreserving(n Node) string {
	var b strings.Builder
	n.Walk(func(node Node) bool {
		switch node.Type {
		case TypeText:
			b.WriteString(node.Text)
		case TypeHardBreak:
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}
