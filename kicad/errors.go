package kicad

import (
	"errors"
	"fmt"

	"github.com/edacore/kicadfmt/sexpr"
)

// ErrUnexpectedEndOfList is returned when a cursor is asked for a token but
// its sibling sequence is exhausted.
var ErrUnexpectedEndOfList = errors.New("kicad: unexpected end of list")

// UnexpectedKindError is returned when the next token is not of the required
// kind.
type UnexpectedKindError struct {
	Expected sexpr.Kind
}

func (e *UnexpectedKindError) Error() string {
	return fmt.Sprintf("kicad: unexpected token kind, expected %s", e.Expected)
}

// NonMatchingSymbolError is returned when a symbol token does not carry the
// required value.
type NonMatchingSymbolError struct {
	Found    string
	Expected string
}

func (e *NonMatchingSymbolError) Error() string {
	return fmt.Sprintf("kicad: non-matching symbol %q, expected %q", e.Found, e.Expected)
}

// InvalidEnumError is returned when a symbol is not part of the accepted
// vocabulary of an enumeration.
type InvalidEnumError struct {
	Value string
	Enum  string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("kicad: invalid %s value %q", e.Enum, e.Value)
}

// ExpectedEndError is returned when a cursor was required to be exhausted but
// tokens remain. Found carries the first offending token for diagnostics.
type ExpectedEndError struct {
	Found sexpr.Node
}

func (e *ExpectedEndError) Error() string {
	return fmt.Sprintf("kicad: expected end of list, found %s", e.Found)
}

// LibraryIDError is returned when a "library:name" identifier fails its
// structural check.
type LibraryIDError struct {
	Raw string
}

func (e *LibraryIDError) Error() string {
	return fmt.Sprintf("kicad: malformed library identifier %q", e.Raw)
}

// UnitIDError is returned when a "name_unit_style" sub-unit identifier fails
// its structural check.
type UnitIDError struct {
	Raw string
}

func (e *UnitIDError) Error() string {
	return fmt.Sprintf("kicad: malformed unit identifier %q", e.Raw)
}
