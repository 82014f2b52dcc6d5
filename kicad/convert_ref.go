package kicad

import "github.com/edacore/kicadfmt/sexpr"

// RefCursor is the zero-copy counterpart of Cursor: the same consuming
// contract, but tokens are yielded as views into the original buffer and
// child cursors share that buffer instead of allocating. Every value derived
// from a RefCursor is only valid while the backing tree is alive, and no code
// path may mutate the tree while such a value exists.
type RefCursor struct {
	items []sexpr.Node
	pos   int
}

// NewRefCursor creates a borrowing cursor over the given sibling sequence.
func NewRefCursor(items []sexpr.Node) *RefCursor {
	return &RefCursor{items: items}
}

// Clone returns an independent snapshot at the current position.
func (c *RefCursor) Clone() *RefCursor {
	return &RefCursor{items: c.items, pos: c.pos}
}

// Peek returns a view of the next token without consuming it, or nil if the
// cursor is exhausted.
func (c *RefCursor) Peek() *sexpr.Node {
	if c.pos >= len(c.items) {
		return nil
	}
	return &c.items[c.pos]
}

// Next consumes the next token and returns a view of it.
func (c *RefCursor) Next() (*sexpr.Node, error) {
	if c.pos >= len(c.items) {
		return nil, ErrUnexpectedEndOfList
	}
	n := &c.items[c.pos]
	c.pos++
	return n, nil
}

// Rest returns the remaining tokens as a sub-slice of the shared buffer and
// consumes them.
func (c *RefCursor) Rest() []sexpr.Node {
	if c.pos >= len(c.items) {
		return nil
	}
	rest := c.items[c.pos:]
	c.pos = len(c.items)
	return rest
}

// ExpectList consumes one token, requires it to be a list, and returns a
// child cursor sharing its contents.
func (c *RefCursor) ExpectList() (*RefCursor, error) {
	n, err := c.Next()
	if err != nil {
		return nil, err
	}
	list, ok := n.AsList()
	if !ok {
		return nil, &UnexpectedKindError{Expected: sexpr.KindList}
	}
	return NewRefCursor(list), nil
}

// ExpectListWithName consumes a list whose first child is Symbol(name) and
// returns a child cursor positioned after the name.
func (c *RefCursor) ExpectListWithName(name string) (*RefCursor, error) {
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
// is a list whose first child is Symbol(name); otherwise nil, consuming
// nothing.
func (c *RefCursor) MaybeListWithName(name string) *RefCursor {
	n := c.Peek()
	if n == nil {
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
func (c *RefCursor) ExpectSymbol() (string, error) {
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
func (c *RefCursor) ExpectSymbolMatching(expected string) error {
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
func (c *RefCursor) MaybeSymbolMatching(expected string) bool {
	n := c.Peek()
	if n == nil {
		return false
	}
	if sym, ok := n.AsSymbol(); ok && sym == expected {
		c.pos++
		return true
	}
	return false
}

// ExpectString consumes the next token, requiring a quoted string.
func (c *RefCursor) ExpectString() (string, error) {
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
func (c *RefCursor) ExpectNumber() (float64, error) {
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
func (c *RefCursor) MaybeNumber() (float64, bool) {
	n := c.Peek()
	if n == nil {
		return 0, false
	}
	if num, ok := n.AsNumber(); ok {
		c.pos++
		return num, true
	}
	return 0, false
}

// ExpectEnd requires the cursor to be exhausted.
func (c *RefCursor) ExpectEnd() error {
	if n := c.Peek(); n != nil {
		return &ExpectedEndError{Found: *n}
	}
	return nil
}

// ============================================================
// Named scalar shorthands
// ============================================================

// ExpectStringWithName consumes (name "value") and returns the value.
func (c *RefCursor) ExpectStringWithName(name string) (string, error) {
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

// MaybeStringWithName consumes (name "value") when present.
func (c *RefCursor) MaybeStringWithName(name string) (*string, error) {
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
func (c *RefCursor) ExpectNumberWithName(name string) (float64, error) {
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
func (c *RefCursor) MaybeNumberWithName(name string) (*float64, error) {
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
func (c *RefCursor) ExpectSymbolWithName(name string) (string, error) {
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
// logical value.
func (c *RefCursor) ExpectBoolWithName(name string) (bool, error) {
	list, err := c.ExpectListWithName(name)
	if err != nil {
		return false, err
	}
	return finishBoolRef(list)
}

// MaybeBoolWithName consumes (name yes|no|true|false) when present.
func (c *RefCursor) MaybeBoolWithName(name string) (*bool, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return nil, nil
	}
	v, err := finishBoolRef(list)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func finishBoolRef(list *RefCursor) (bool, error) {
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

// MaybeEmptyListWithName consumes (name) when present, reporting whether it
// was.
func (c *RefCursor) MaybeEmptyListWithName(name string) (bool, error) {
	list := c.MaybeListWithName(name)
	if list == nil {
		return false, nil
	}
	if err := list.ExpectEnd(); err != nil {
		return false, err
	}
	return true, nil
}

// ============================================================
// Generic combinators
// ============================================================

type parseableRef[T any] interface {
	*T
	FromSexprRef
}

type maybeParseableRef[T any] interface {
	*T
	FromSexprRef
	MaybeFromSexpr
}

// ExpectRef parses a required entity from the next token, which must be a
// list.
func ExpectRef[T any, PT parseableRef[T]](p *RefCursor) (T, error) {
	var v T
	list, err := p.ExpectList()
	if err != nil {
		return v, err
	}
	if err := PT(&v).FromSexprRef(list); err != nil {
		return v, err
	}
	return v, nil
}

// MaybeRef parses an optional entity, consuming nothing when the presence
// test rejects the next token.
func MaybeRef[T any, PT maybeParseableRef[T]](p *RefCursor) (*T, error) {
	n := p.Peek()
	if n == nil {
		return nil, nil
	}
	list, ok := n.AsList()
	if !ok {
		return nil, nil
	}
	var v T
	if !PT(&v).PresentIn(list) {
		return nil, nil
	}
	p.pos++
	if err := PT(&v).FromSexprRef(NewRefCursor(list)); err != nil {
		return nil, err
	}
	return &v, nil
}

// ExpectManyRef repeats MaybeRef until the presence test yields absent.
func ExpectManyRef[T any, PT maybeParseableRef[T]](p *RefCursor) ([]T, error) {
	var result []T
	for {
		v, err := MaybeRef[T, PT](p)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return result, nil
		}
		result = append(result, *v)
	}
}
