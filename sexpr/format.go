package sexpr

import (
	"strconv"
	"strings"
)

// Format renders a tree in the conventional KiCad layout: every list opens on
// its own line, indented by nesting depth, with atoms following the list name
// on the same line.
func Format(n Node) string {
	f := &formatter{indent: "\t"}
	f.format(n, 0)
	f.sb.WriteString("\n")
	return f.sb.String()
}

// String renders the tree on a single line. The result decodes to a tree
// structurally equal to n.
func (n Node) String() string {
	f := &formatter{compact: true}
	f.format(n, 0)
	return f.sb.String()
}

type formatter struct {
	sb      strings.Builder
	indent  string
	compact bool
}

func (f *formatter) format(n Node, depth int) {
	switch n.kind {
	case KindSymbol:
		f.sb.WriteString(n.text)

	case KindString:
		f.sb.WriteString("\"")
		f.sb.WriteString(escapeString(n.text))
		f.sb.WriteString("\"")

	case KindNumber:
		f.sb.WriteString(formatNumber(n.num))

	case KindList:
		f.formatList(n, depth)
	}
}

func (f *formatter) formatList(n Node, depth int) {
	f.sb.WriteString("(")

	for i, child := range n.list {
		if i > 0 {
			if !f.compact && child.kind == KindList {
				f.sb.WriteString("\n")
				f.writeIndent(depth + 1)
			} else {
				f.sb.WriteString(" ")
			}
		}
		f.format(child, depth+1)
	}

	// Close on a fresh line when the list spanned multiple lines.
	if !f.compact && hasListChild(n) {
		f.sb.WriteString("\n")
		f.writeIndent(depth)
	}
	f.sb.WriteString(")")
}

func (f *formatter) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		f.sb.WriteString(f.indent)
	}
}

func hasListChild(n Node) bool {
	for i, child := range n.list {
		if i > 0 && child.kind == KindList {
			return true
		}
	}
	return false
}

// formatNumber uses the shortest representation that round-trips. Integer
// values render without a decimal point, matching how KiCad writes them.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// escapeString escapes a string for quoted output.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
