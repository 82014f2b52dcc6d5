package kicad

import "github.com/edacore/kicadfmt/sexpr"

// FromSexpr is the owning parse capability: the entity fills itself from a
// cursor positioned over its list contents (keyword included).
type FromSexpr interface {
	FromSexpr(p *Cursor) error
}

// FromSexprRef is the borrowing parse capability, the contract of FromSexpr
// over a RefCursor.
type FromSexprRef interface {
	FromSexprRef(p *RefCursor) error
}

// MaybeFromSexpr is the presence-test capability: a cheap structural check
// deciding whether a list-shaped node belongs to the entity type without
// fully parsing it. For well-formed input it must agree with full-parse
// success; it is the single predicate driving optional and repeated fields.
type MaybeFromSexpr interface {
	PresentIn(list []sexpr.Node) bool
}

// ToSexpr is the serialize capability, the inverse of FromSexpr. It must
// reproduce the exact structural encoding recorded at parse time.
type ToSexpr interface {
	ToSexpr() sexpr.Node
}

type parseable[T any] interface {
	*T
	FromSexpr
}

type maybeParseable[T any] interface {
	*T
	FromSexpr
	MaybeFromSexpr
}

// Expect parses a required entity from the next token, which must be a list.
func Expect[T any, PT parseable[T]](p *Cursor) (T, error) {
	var v T
	list, err := p.ExpectList()
	if err != nil {
		return v, err
	}
	if err := PT(&v).FromSexpr(list); err != nil {
		return v, err
	}
	return v, nil
}

// Maybe parses an optional entity. When the presence test rejects the next
// token nothing is consumed and nil is returned; when it accepts, the entity
// is fully parsed and any failure is a hard error. A malformed but
// present-looking node therefore surfaces as an error instead of silently
// ending an optional field.
func Maybe[T any, PT maybeParseable[T]](p *Cursor) (*T, error) {
	n, ok := p.Peek()
	if !ok {
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
	if _, err := p.Next(); err != nil {
		return nil, err
	}
	if err := PT(&v).FromSexpr(NewCursor(list)); err != nil {
		return nil, err
	}
	return &v, nil
}

// ExpectMany repeats Maybe until the presence test yields absent. Termination
// is driven by the presence test, not by parse failure.
func ExpectMany[T any, PT maybeParseable[T]](p *Cursor) ([]T, error) {
	var result []T
	for {
		v, err := Maybe[T, PT](p)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return result, nil
		}
		result = append(result, *v)
	}
}

// listNamed reports whether a sibling sequence starts with Symbol(name).
// It backs the presence test of every keyword-headed entity.
func listNamed(list []sexpr.Node, name string) bool {
	if len(list) == 0 {
		return false
	}
	sym, ok := list[0].AsSymbol()
	return ok && sym == name
}
