package kicad

import (
	"fmt"

	"github.com/edacore/kicadfmt/sexpr"
)

// SymbolLibrary is the typed model of a symbol library file
// (kicad_symbol_lib). GeneratorIsString records whether the generator was
// written as a quoted string (current format) or a bare symbol (legacy).
type SymbolLibrary struct {
	Version           int
	Generator         string
	GeneratorIsString bool
	GeneratorVersion  *string
	Symbols           []SymbolDefinition
}

// SymbolDefinition is either a RootSymbol or a DerivedSymbol. The variant is
// closed: no other implementations exist.
type SymbolDefinition interface {
	ToSexpr
	symbolDefinition()
}

// RootSymbol is a full symbol definition.
type RootSymbol struct {
	ID             LibraryID
	Power          bool
	HidePinNumbers bool
	PinNames       *PinNames
	ExcludeFromSim *bool
	InBom          bool
	OnBoard        bool
	Properties     []SymbolProperty
	Units          []SubUnit
	EmbeddedFonts  *bool
}

// DerivedSymbol inherits from a root symbol named by Extends, overriding a
// subset of properties. Extends is a plain name; resolving it to the root
// symbol belongs to a layer above this package.
type DerivedSymbol struct {
	ID         LibraryID
	Extends    string
	Properties []SymbolProperty
}

func (*RootSymbol) symbolDefinition()    {}
func (*DerivedSymbol) symbolDefinition() {}

// ParseSymbolLibrary parses a symbol library document with the owning
// strategy. The input tree is only read; the returned model shares nothing
// mutable with it.
func ParseSymbolLibrary(doc sexpr.Node) (*SymbolLibrary, error) {
	list, ok := doc.AsList()
	if !ok {
		return nil, &UnexpectedKindError{Expected: sexpr.KindList}
	}
	lib := &SymbolLibrary{}
	if err := lib.FromSexpr(NewCursor(list)); err != nil {
		return nil, fmt.Errorf("parse symbol library: %w", err)
	}
	return lib, nil
}

// ParseSymbolLibraryText tokenizes and parses a symbol library document.
func ParseSymbolLibraryText(text string) (*SymbolLibrary, error) {
	doc, err := sexpr.Parse(text)
	if err != nil {
		return nil, err
	}
	return ParseSymbolLibrary(doc)
}

// FromSexpr parses a (kicad_symbol_lib ...) list.
func (lib *SymbolLibrary) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("kicad_symbol_lib"); err != nil {
		return err
	}

	version, err := p.ExpectNumberWithName("version")
	if err != nil {
		return err
	}
	lib.Version = int(version)

	// The generator value coexists in two spellings: a bare symbol (legacy)
	// or a quoted string (current). Record which one was read.
	gen, err := p.ExpectListWithName("generator")
	if err != nil {
		return err
	}
	next, ok := gen.Peek()
	if !ok {
		return ErrUnexpectedEndOfList
	}
	switch next.Kind() {
	case sexpr.KindString:
		if lib.Generator, err = gen.ExpectString(); err != nil {
			return err
		}
		lib.GeneratorIsString = true
	case sexpr.KindSymbol:
		if lib.Generator, err = gen.ExpectSymbol(); err != nil {
			return err
		}
		lib.GeneratorIsString = false
	default:
		return &UnexpectedKindError{Expected: sexpr.KindString}
	}
	if err := gen.ExpectEnd(); err != nil {
		return err
	}

	if lib.GeneratorVersion, err = p.MaybeStringWithName("generator_version"); err != nil {
		return err
	}

	if lib.Symbols, err = expectSymbolDefinitions(p); err != nil {
		return err
	}

	return p.ExpectEnd()
}

// expectSymbolDefinitions repeats the symbol presence test until it yields
// absent, parsing each definition fully. A present but malformed definition
// is a hard error.
func expectSymbolDefinitions(p *Cursor) ([]SymbolDefinition, error) {
	var defs []SymbolDefinition
	for {
		n, ok := p.Peek()
		if !ok {
			return defs, nil
		}
		list, ok := n.AsList()
		if !ok || !listNamed(list, "symbol") {
			return defs, nil
		}
		sub, err := p.ExpectList()
		if err != nil {
			return nil, err
		}
		def, err := parseSymbolDefinition(sub)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
}

// parseSymbolDefinition resolves the root-vs-derived ambiguity. Both
// variants share the keyword + string-id prefix and diverge only in whether
// an extends field follows, so the cursor is snapshotted, the shared prefix
// consumed, and a single optional extends probed: present commits to
// Derived, absent discards the live cursor and reparses the snapshot as
// Root. At most one extra field inspection is spent beyond the branch taken.
func parseSymbolDefinition(p *Cursor) (SymbolDefinition, error) {
	snapshot := p.Clone()

	if err := p.ExpectSymbolMatching("symbol"); err != nil {
		return nil, err
	}
	raw, err := p.ExpectString()
	if err != nil {
		return nil, err
	}
	id, err := ParseLibraryID(raw)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", raw, err)
	}

	extends := p.MaybeListWithName("extends")
	if extends == nil {
		return parseRootSymbol(snapshot)
	}

	name, err := extends.ExpectString()
	if err != nil {
		return nil, err
	}
	if err := extends.ExpectEnd(); err != nil {
		return nil, err
	}

	properties, err := ExpectMany[SymbolProperty](p)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEnd(); err != nil {
		return nil, err
	}

	return &DerivedSymbol{ID: id, Extends: name, Properties: properties}, nil
}

// parseRootSymbol parses a full symbol definition from its start.
func parseRootSymbol(p *Cursor) (*RootSymbol, error) {
	if err := p.ExpectSymbolMatching("symbol"); err != nil {
		return nil, err
	}
	raw, err := p.ExpectString()
	if err != nil {
		return nil, err
	}
	id, err := ParseLibraryID(raw)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", raw, err)
	}

	sym := &RootSymbol{ID: id}

	if sym.Power, err = p.MaybeEmptyListWithName("power"); err != nil {
		return nil, err
	}

	// (pin_numbers hide) is the only accepted content of that node.
	if pinNumbers := p.MaybeListWithName("pin_numbers"); pinNumbers != nil {
		if err := pinNumbers.ExpectSymbolMatching("hide"); err != nil {
			return nil, err
		}
		if err := pinNumbers.ExpectEnd(); err != nil {
			return nil, err
		}
		sym.HidePinNumbers = true
	}

	if sym.PinNames, err = Maybe[PinNames](p); err != nil {
		return nil, err
	}
	if sym.ExcludeFromSim, err = p.MaybeBoolWithName("exclude_from_sim"); err != nil {
		return nil, err
	}
	if sym.InBom, err = p.ExpectBoolWithName("in_bom"); err != nil {
		return nil, err
	}
	if sym.OnBoard, err = p.ExpectBoolWithName("on_board"); err != nil {
		return nil, err
	}
	if sym.Properties, err = ExpectMany[SymbolProperty](p); err != nil {
		return nil, err
	}
	if sym.Units, err = ExpectMany[SubUnit](p); err != nil {
		return nil, err
	}
	if sym.EmbeddedFonts, err = p.MaybeBoolWithName("embedded_fonts"); err != nil {
		return nil, err
	}

	if err := p.ExpectEnd(); err != nil {
		return nil, err
	}
	return sym, nil
}

// ============================================================
// Serialization
// ============================================================

// ToSexpr serializes the library, replaying the generator spelling recorded
// at parse time.
func (lib *SymbolLibrary) ToSexpr() sexpr.Node {
	children := []sexpr.Node{
		sexpr.NumberWithName("version", float64(lib.Version)),
	}
	if lib.GeneratorIsString {
		children = append(children, sexpr.StringWithName("generator", lib.Generator))
	} else {
		children = append(children, sexpr.SymbolWithName("generator", lib.Generator))
	}
	if lib.GeneratorVersion != nil {
		children = append(children, sexpr.StringWithName("generator_version", *lib.GeneratorVersion))
	}
	for _, def := range lib.Symbols {
		children = append(children, def.ToSexpr())
	}
	return sexpr.ListWithName("kicad_symbol_lib", children...)
}

// ToSexpr serializes a root symbol in schema order. Fields equal to their
// absent representation contribute no node.
func (sym *RootSymbol) ToSexpr() sexpr.Node {
	children := []sexpr.Node{sym.ID.ToSexpr()}
	if sym.Power {
		children = append(children, sexpr.ListWithName("power"))
	}
	if sym.HidePinNumbers {
		children = append(children, sexpr.SymbolWithName("pin_numbers", "hide"))
	}
	if sym.PinNames != nil {
		children = append(children, sym.PinNames.ToSexpr())
	}
	if sym.ExcludeFromSim != nil {
		children = append(children, sexpr.BoolWithName("exclude_from_sim", *sym.ExcludeFromSim))
	}
	children = append(children,
		sexpr.BoolWithName("in_bom", sym.InBom),
		sexpr.BoolWithName("on_board", sym.OnBoard),
	)
	for _, prop := range sym.Properties {
		children = append(children, prop.ToSexpr())
	}
	for _, unit := range sym.Units {
		children = append(children, unit.ToSexpr())
	}
	if sym.EmbeddedFonts != nil {
		children = append(children, sexpr.BoolWithName("embedded_fonts", *sym.EmbeddedFonts))
	}
	return sexpr.ListWithName("symbol", children...)
}

// ToSexpr serializes a derived symbol.
func (sym *DerivedSymbol) ToSexpr() sexpr.Node {
	children := []sexpr.Node{
		sym.ID.ToSexpr(),
		sexpr.StringWithName("extends", sym.Extends),
	}
	for _, prop := range sym.Properties {
		children = append(children, prop.ToSexpr())
	}
	return sexpr.ListWithName("symbol", children...)
}
