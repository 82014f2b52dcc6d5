// Package sexpr implements the generic parenthesized token tree used by
// KiCad's textual file formats, together with its reader and writer.
//
// A tree is built from four node kinds:
//
//	Symbol:  bare token        (kicad_symbol_lib, hide, yes)
//	String:  quoted token      ("Device:R", "Resistor")
//	Number:  numeric literal   (20211014, 1.27, -5.08)
//	List:    nested sequence   ((version 20211014) ...)
//
// Trees are immutable once produced. Parsing a document only reads the tree,
// and serializers build fresh nodes, so a tree may be shared freely between
// goroutines.
//
// # Reading and writing
//
//	node, err := sexpr.Parse(text)
//	text := sexpr.Format(node)
//
// Format emits the conventional KiCad layout: one list per line, indented by
// nesting depth. String() on a node emits the same tree on a single line.
// Both renderings decode to a structurally equal tree; whitespace is never
// significant.
package sexpr
