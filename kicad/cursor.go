package kicad

import (
	"fmt"

	"github.com/edacore/kicadfmt/sexpr"
)

// Cursor is a consuming traversal over the sibling tokens at one nesting
// level, yielding owned values. The position only moves forward; backtracking
// is achieved by parsing an independent Clone, never by rewinding a shared
// cursor.
type Cursor struct {
	items []sexpr.Node
	pos   int
}

// NewCursor creates a cursor over the given sibling sequence.
func NewCursor(items []sexpr.Node) *Cursor {
	return &Cursor{items: items}
}

// Clone returns an independent snapshot at the current position. Consuming
// from the clone does not affect the original and vice versa.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{items: c.items, pos: c.pos}
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (sexpr.Node, bool) {
	if c.pos >= len(c.items) {
		return sexpr.Node{}, false
	}
	return c.items[c.pos], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (sexpr.Node, error) {
	if c.pos >= len(c.items) {
		return sexpr.Node{}, ErrUnexpectedEndOfList
	}
	n := c.items[c.pos]
	c.pos++
	return n, nil
}

// TakeRest consumes and returns all remaining tokens verbatim.
func (c *Cursor) TakeRest() []sexpr.Node {
	if c.pos >= len(c.items) {
		return nil
	}
	rest := make([]sexpr.Node, len(c.items)-c.pos)
	copy(rest, c.items[c.pos:])
	c.pos = len(c.items)
	return rest
}

// ExpectList consumes one token, requires it to be a list, and returns a
// child cursor over its contents.
func (c *Cursor) ExpectList() (*Cursor, error) {
	n, err := c.Next()
	if err != nil {
		return nil, err
	}
	list, ok := n.AsList()
	if !ok {
		return nil, &UnexpectedKindError{Expected: sexpr.KindList}
	}
	return NewCursor(list), nil
}

// ExpectListWithName consumes a list whose first child is Symbol(name) and
// returns a child cursor positioned after the name.
func (c *Cursor) ExpectListWithName(name string) (*Cursor, error) {
	list, err := c.ExpectList()
	if err != nil {
		return nil, err
	}
	if err := list.ExpectSymbolMatching(name); err != nil {
		return nil, err
	}
	return list, nil
}

// MaybeListWithName consumes and returns a child cursor when the next token
// is a list whose first child is Symbol(name); otherwise it returns nil
// without consuming anything.
func (c *Cursor) MaybeListWithName(name string) *Cursor {
	n, ok := c.Peek()
	if !ok {
		return nil
	}
	first, ok := n.FirstSymbol()
	if !ok || first != name {
		return nil
	}
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return nil
	}
	return list
}

// ExpectSymbol consumes the next token, requiring a bare symbol.
func (c *Cursor) ExpectSymbol() (string, error) {
	n, err := c.Next()
	if err != nil {
		return "", err
	}
	sym, ok := n.AsSymbol()
	if !ok {
		return "", &UnexpectedKindError{Expected: sexpr.KindSymbol}
	}
	return sym, nil
}

// ExpectSymbolMatching consumes a symbol and requires its exact value.
func (c *Cursor) ExpectSymbolMatching(expected string) error {
	sym, err := c.ExpectSymbol()
	if err != nil {
		return err
	}
	if sym != expected {
		return &NonMatchingSymbolError{Found: sym, Expected: expected}
	}
	return nil
}

// MaybeSymbolMatching consumes the next token only when it is exactly
// Symbol(expected), reporting whether it did.
func (c *Cursor) MaybeSymbolMatching(expected string) bool {
	n, ok := c.Peek()
	if !ok {
		return false
	}
	if sym, ok := n.AsSymbol(); ok && sym == expected {
		c.pos++
		return true
	}
	return false
}

// ExpectString consumes the next token, requiring a quoted string.
func (c *Cursor) ExpectString() (string, error) {
	n, err := c.Next()
	if err != nil {
		return "", err
	}
	str, ok := n.AsString()
	if !ok {
		return "", &UnexpectedKindError{Expected: sexpr.KindString}
	}
	return str, nil
}

// ExpectNumber consumes the next token, requiring a number.
func (c *Cursor) ExpectNumber() (float64, error) {
	n, err := c.Next()
	if err != nil {
		return 0, err
	}
	num, ok := n.AsNumber()
	if !ok {
		return 0, &UnexpectedKindError{Expected: sexpr.KindNumber}
	}
	return num, nil
}

// MaybeNumber consumes the next token only when it is a number.
func (c *Cursor) MaybeNumber() (float64, bool) {
	n, ok := c.Peek()
	if !ok {
		return 0, false
	}
	if num, ok := n.AsNumber(); ok {
		c.pos++
		return num, true
	}
	return 0, false
}

// ExpectEnd requires the cursor to be exhausted.
func (c *Cursor) ExpectEnd() error {
	if n, ok := c.Peek(); ok {
		return &ExpectedEndError{Found: n}
	}
	return nil
}

// ============================================================
// Named scalar shorthands
// ============================================================

// ExpectStringWithName consumes (name "value") and returns the value.
func (c *Cursor) ExpectStringWithName(name string) (string, error) {
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return "", err
	}
	s, err := list.ExpectString()
	if err != nil {
		return "", err
	}
	return s, list.ExpectEnd()
}

// MaybeStringWithName consumes (name "value") when present. A present but
// malformed node is a hard error, never a silent absence.
func (c *Cursor) MaybeStringWithName(name string) (*string, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return nil, nil
	}
	s, err := list.ExpectString()
	if err != nil {
		return nil, err
	}
	if err := list.ExpectEnd(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ExpectNumberWithName consumes (name value) and returns the value.
func (c *Cursor) ExpectNumberWithName(name string) (float64, error) {
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return 0, err
	}
	f, err := list.ExpectNumber()
	if err != nil {
		return 0, err
	}
	return f, list.ExpectEnd()
}

// MaybeNumberWithName consumes (name value) when present.
func (c *Cursor) MaybeNumberWithName(name string) (*float64, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return nil, nil
	}
	f, err := list.ExpectNumber()
	if err != nil {
		return nil, err
	}
	if err := list.ExpectEnd(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ExpectSymbolWithName consumes (name sym) and returns the symbol.
func (c *Cursor) ExpectSymbolWithName(name string) (string, error) {
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return "", err
	}
	s, err := list.ExpectSymbol()
	if err != nil {
		return "", err
	}
	return s, list.ExpectEnd()
}

// ExpectBoolWithName consumes (name yes|no|true|false) and returns the
// logical value. Any other symbol is an InvalidEnumError.
func (c *Cursor) ExpectBoolWithName(name string) (bool, error) {
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return false, err
	}
	return finishBool(list)
}

// MaybeBoolWithName consumes (name yes|no|true|false) when present.
func (c *Cursor) MaybeBoolWithName(name string) (*bool, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return nil, nil
	}
	v, err := finishBool(list)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func finishBool(list *Cursor) (bool, error) {
	sym, err := list.ExpectSymbol()
	if err != nil {
		return false, err
	}
	v, err := boolFromSymbol(sym)
	if err != nil {
		return false, err
	}
	return v, list.ExpectEnd()
}

func boolFromSymbol(sym string) (bool, error) {
	switch sym {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, &InvalidEnumError{Value: sym, Enum: "bool"}
	}
}

// MaybeEmptyListWithName consumes (name) when present, reporting whether it
// was. A named list that is not empty is a hard error.
func (c *Cursor) MaybeEmptyListWithName(name string) (bool, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return false, nil
	}
	if err := list.ExpectEnd(); err != nil {
		return false, fmt.Errorf("(%s): %w", name, err)
	}
	return true, nil
}
