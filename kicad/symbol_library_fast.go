package kicad

import (
	"fmt"

	"github.com/edacore/kicadfmt/sexpr"
)

// ParseSymbolLibraryFast parses a symbol library document with the borrowing
// strategy: cursors yield views into the input tree, property keys are
// interned, and the root-vs-derived ambiguity is resolved by a structural
// peek instead of a snapshot reparse. It produces the same model as
// ParseSymbolLibrary for every input; the input tree must stay alive and
// unmodified while the model's pass-through nodes are in use.
func ParseSymbolLibraryFast(doc sexpr.Node) (*SymbolLibrary, error) {
	list, ok := doc.AsList()
	if !ok {
		return nil, &UnexpectedKindError{Expected: sexpr.KindList}
	}
	lib := &SymbolLibrary{}
	if err := lib.FromSexprRef(NewRefCursor(list)); err != nil {
		return nil, fmt.Errorf("parse symbol library: %w", err)
	}
	return lib, nil
}

// ParseSymbolLibraryTextFast tokenizes and parses a symbol library document
// with the borrowing strategy.
func ParseSymbolLibraryTextFast(text string) (*SymbolLibrary, error) {
	doc, err := sexpr.Parse(text)
	if err != nil {
		return nil, err
	}
	return ParseSymbolLibraryFast(doc)
}

// FromSexprRef parses a (kicad_symbol_lib ...) list from a borrowing cursor.
func (lib *SymbolLibrary) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("kicad_symbol_lib"); err != nil {
		return err
	}

	version, err := p.ExpectNumberWithName("version")
	if err != nil {
		return err
	}
	lib.Version = int(version)

	gen, err := p.ExpectListWithName("generator")
	if err != nil {
		return err
	}
	next := gen.Peek()
	if next == nil {
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

	if lib.Symbols, err = expectSymbolDefinitionsRef(p); err != nil {
		return err
	}

	return p.ExpectEnd()
}

func expectSymbolDefinitionsRef(p *RefCursor) ([]SymbolDefinition, error) {
	var defs []SymbolDefinition
	for {
		n := p.Peek()
		if n == nil {
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
		def, err := parseSymbolDefinitionRef(sub)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
}

// parseSymbolDefinitionRef resolves root-vs-derived by inspecting the raw
// token tree: after keyword and id, the node is derived exactly when the
// next child is a list headed by the extends symbol. This is strictly
// cheaper than the owning path's snapshot reparse and must classify every
// input identically.
func parseSymbolDefinitionRef(p *RefCursor) (SymbolDefinition, error) {
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

	isDerived := false
	if next := p.Peek(); next != nil {
		if first, ok := next.FirstSymbol(); ok && first == "extends" {
			isDerived = true
		}
	}

	if isDerived {
		name, err := p.ExpectStringWithName("extends")
		if err != nil {
			return nil, err
		}
		properties, err := ExpectManyRef[SymbolProperty](p)
		if err != nil {
			return nil, err
		}
		if err := p.ExpectEnd(); err != nil {
			return nil, err
		}
		return &DerivedSymbol{ID: id, Extends: name, Properties: properties}, nil
	}

	sym := &RootSymbol{ID: id}

	if sym.Power, err = p.MaybeEmptyListWithName("power"); err != nil {
		return nil, err
	}
	if pinNumbers := p.MaybeListWithName("pin_numbers"); pinNumbers != nil {
		if err := pinNumbers.ExpectSymbolMatching("hide"); err != nil {
			return nil, err
		}
		if err := pinNumbers.ExpectEnd(); err != nil {
			return nil, err
		}
		sym.HidePinNumbers = true
	}
	if sym.PinNames, err = MaybeRef[PinNames](p); err != nil {
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
	if sym.Properties, err = ExpectManyRef[SymbolProperty](p); err != nil {
		return nil, err
	}
	if sym.Units, err = ExpectManyRef[SubUnit](p); err != nil {
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
