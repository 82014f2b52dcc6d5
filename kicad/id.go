package kicad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edacore/kicadfmt/sexpr"
)

// LibraryID is the composite key "library:name" uniquely naming a reusable
// component definition.
type LibraryID struct {
	Library string
	Name    string
}

// ParseLibraryID parses "library:name". The split is at the first colon; both
// parts must be non-empty.
func ParseLibraryID(s string) (LibraryID, error) {
	library, name, ok := strings.Cut(s, ":")
	if !ok || library == "" || name == "" {
		return LibraryID{}, &LibraryIDError{Raw: s}
	}
	return LibraryID{Library: library, Name: name}, nil
}

// String re-serializes to exactly the original form.
func (id LibraryID) String() string {
	return id.Library + ":" + id.Name
}

// ToSexpr returns the identifier as a quoted string node.
func (id LibraryID) ToSexpr() sexpr.Node {
	return sexpr.Str(id.String())
}

// UnitID names a sub-unit of a symbol: "name_unit_style", where unit and
// style are non-negative integers ("R_0_1"). The name may itself contain
// underscores, so the split is taken from the right.
type UnitID struct {
	Parent string
	Unit   int
	Style  int
}

// ParseUnitID parses "name_unit_style".
func ParseUnitID(s string) (UnitID, error) {
	rest, style, ok := cutLastInt(s)
	if !ok {
		return UnitID{}, &UnitIDError{Raw: s}
	}
	parent, unit, ok := cutLastInt(rest)
	if !ok || parent == "" {
		return UnitID{}, &UnitIDError{Raw: s}
	}
	return UnitID{Parent: parent, Unit: unit, Style: style}, nil
}

// cutLastInt splits "prefix_N" at the last underscore.
func cutLastInt(s string) (string, int, bool) {
	i := strings.LastIndexByte(s, '_')
	if i <= 0 || i == len(s)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return s[:i], n, true
}

// String re-serializes to exactly the original form.
func (id UnitID) String() string {
	return fmt.Sprintf("%s_%d_%d", id.Parent, id.Unit, id.Style)
}

// ToSexpr returns the identifier as a quoted string node.
func (id UnitID) ToSexpr() sexpr.Node {
	return sexpr.Str(id.String())
}
