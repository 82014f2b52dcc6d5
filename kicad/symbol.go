package kicad

import (
	"github.com/edacore/kicadfmt/sexpr"
)

// Position is the placement of a property or graphic item: (at X Y [angle]).
// Angle records whether the third number was present in the source.
type Position struct {
	X     float64
	Y     float64
	Angle *float64
}

// FromSexpr parses (at X Y [angle]).
func (pos *Position) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("at"); err != nil {
		return err
	}
	x, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	y, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	pos.X, pos.Y = x, y
	if angle, ok := p.MaybeNumber(); ok {
		pos.Angle = &angle
	}
	return p.ExpectEnd()
}

// FromSexprRef parses (at X Y [angle]) from a borrowing cursor.
func (pos *Position) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("at"); err != nil {
		return err
	}
	x, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	y, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	pos.X, pos.Y = x, y
	if angle, ok := p.MaybeNumber(); ok {
		pos.Angle = &angle
	}
	return p.ExpectEnd()
}

// PresentIn reports whether the node is an (at ...) list.
func (*Position) PresentIn(list []sexpr.Node) bool {
	return listNamed(list, "at")
}

// ToSexpr serializes the position, emitting the angle only when it was
// present in the source.
func (pos Position) ToSexpr() sexpr.Node {
	children := []sexpr.Node{sexpr.Number(pos.X), sexpr.Number(pos.Y)}
	if pos.Angle != nil {
		children = append(children, sexpr.Number(*pos.Angle))
	}
	return sexpr.ListWithName("at", children...)
}

// TextEffects controls how a text item is drawn:
// (effects (font (size W H)) [(justify sym...)] [(hide yes|no)]).
// Hide is nil when no hide node was present; a present (hide no) is retained
// so it re-emits as written.
type TextEffects struct {
	FontWidth  float64
	FontHeight float64
	Justify    []string
	Hide       *bool
}

// FromSexpr parses an (effects ...) list.
func (e *TextEffects) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("effects"); err != nil {
		return err
	}

	font, err := p.ExpectListWithName("font")
	if err != nil {
		return err
	}
	size, err := font.ExpectListWithName("size")
	if err != nil {
		return err
	}
	if e.FontWidth, err = size.ExpectNumber(); err != nil {
		return err
	}
	if e.FontHeight, err = size.ExpectNumber(); err != nil {
		return err
	}
	if err := size.ExpectEnd(); err != nil {
		return err
	}
	if err := font.ExpectEnd(); err != nil {
		return err
	}

	if justify := p.MaybeListWithName("justify"); justify != nil {
		for {
			if _, ok := justify.Peek(); !ok {
				break
			}
			sym, err := justify.ExpectSymbol()
			if err != nil {
				return err
			}
			e.Justify = append(e.Justify, sym)
		}
	}

	hide, err := p.MaybeBoolWithName("hide")
	if err != nil {
		return err
	}
	e.Hide = hide

	return p.ExpectEnd()
}

// FromSexprRef parses an (effects ...) list from a borrowing cursor.
func (e *TextEffects) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("effects"); err != nil {
		return err
	}

	font, err := p.ExpectListWithName("font")
	if err != nil {
		return err
	}
	size, err := font.ExpectListWithName("size")
	if err != nil {
		return err
	}
	if e.FontWidth, err = size.ExpectNumber(); err != nil {
		return err
	}
	if e.FontHeight, err = size.ExpectNumber(); err != nil {
		return err
	}
	if err := size.ExpectEnd(); err != nil {
		return err
	}
	if err := font.ExpectEnd(); err != nil {
		return err
	}

	if justify := p.MaybeListWithName("justify"); justify != nil {
		for justify.Peek() != nil {
			sym, err := justify.ExpectSymbol()
			if err != nil {
				return err
			}
			e.Justify = append(e.Justify, sym)
		}
	}

	hide, err := p.MaybeBoolWithName("hide")
	if err != nil {
		return err
	}
	e.Hide = hide

	return p.ExpectEnd()
}

// PresentIn reports whether the node is an (effects ...) list.
func (*TextEffects) PresentIn(list []sexpr.Node) bool {
	return listNamed(list, "effects")
}

// ToSexpr serializes the effects in schema order.
func (e TextEffects) ToSexpr() sexpr.Node {
	children := []sexpr.Node{
		sexpr.ListWithName("font",
			sexpr.ListWithName("size", sexpr.Number(e.FontWidth), sexpr.Number(e.FontHeight)),
		),
	}
	if len(e.Justify) > 0 {
		syms := make([]sexpr.Node, len(e.Justify))
		for i, j := range e.Justify {
			syms[i] = sexpr.Symbol(j)
		}
		children = append(children, sexpr.ListWithName("justify", syms...))
	}
	if e.Hide != nil {
		children = append(children, sexpr.BoolWithName("hide", *e.Hide))
	}
	return sexpr.ListWithName("effects", children...)
}

// SymbolProperty is one (property "Key" "Value" ...) node. LegacyID retains
// the optional legacy (id N) node verbatim; it is never interpreted.
type SymbolProperty struct {
	Key            string
	Value          string
	LegacyID       *int
	At             Position
	ShowName       bool
	DoNotAutoplace bool
	Effects        TextEffects
}

// FromSexpr parses a (property ...) list.
func (sp *SymbolProperty) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("property"); err != nil {
		return err
	}

	key, err := p.ExpectString()
	if err != nil {
		return err
	}
	value, err := p.ExpectString()
	if err != nil {
		return err
	}
	sp.Key, sp.Value = key, value

	// Legacy format carries (id N) immediately before the position.
	id, err := p.MaybeNumberWithName("id")
	if err != nil {
		return err
	}
	if id != nil {
		n := int(*id)
		sp.LegacyID = &n
	}

	at, err := Expect[Position](p)
	if err != nil {
		return err
	}
	sp.At = at

	if sp.ShowName, err = p.MaybeEmptyListWithName("show_name"); err != nil {
		return err
	}
	if sp.DoNotAutoplace, err = p.MaybeEmptyListWithName("do_not_autoplace"); err != nil {
		return err
	}

	effects, err := Expect[TextEffects](p)
	if err != nil {
		return err
	}
	sp.Effects = effects

	return p.ExpectEnd()
}

// FromSexprRef parses a (property ...) list from a borrowing cursor, with
// interned keys.
func (sp *SymbolProperty) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("property"); err != nil {
		return err
	}

	key, err := p.ExpectString()
	if err != nil {
		return err
	}
	value, err := p.ExpectString()
	if err != nil {
		return err
	}
	sp.Key, sp.Value = Intern(key), value

	id, err := p.MaybeNumberWithName("id")
	if err != nil {
		return err
	}
	if id != nil {
		n := int(*id)
		sp.LegacyID = &n
	}

	at, err := ExpectRef[Position](p)
	if err != nil {
		return err
	}
	sp.At = at

	if sp.ShowName, err = p.MaybeEmptyListWithName("show_name"); err != nil {
		return err
	}
	if sp.DoNotAutoplace, err = p.MaybeEmptyListWithName("do_not_autoplace"); err != nil {
		return err
	}

	effects, err := ExpectRef[TextEffects](p)
	if err != nil {
		return err
	}
	sp.Effects = effects

	return p.ExpectEnd()
}

// PresentIn reports whether the node is a (property ...) list.
func (*SymbolProperty) PresentIn(list []sexpr.Node) bool {
	return listNamed(list, "property")
}

// ToSexpr serializes the property in schema order, re-emitting the legacy id
// node when one was recorded.
func (sp SymbolProperty) ToSexpr() sexpr.Node {
	children := []sexpr.Node{sexpr.Str(sp.Key), sexpr.Str(sp.Value)}
	if sp.LegacyID != nil {
		children = append(children, sexpr.NumberWithName("id", float64(*sp.LegacyID)))
	}
	children = append(children, sp.At.ToSexpr())
	if sp.ShowName {
		children = append(children, sexpr.ListWithName("show_name"))
	}
	if sp.DoNotAutoplace {
		children = append(children, sexpr.ListWithName("do_not_autoplace"))
	}
	children = append(children, sp.Effects.ToSexpr())
	return sexpr.ListWithName("property", children...)
}

// PinNames configures pin-name display: (pin_names [(offset N)] [hide]).
// Hiding has two coexisting spellings, recorded separately so each re-emits
// as written: HideLegacy for the bare `hide` keyword, Hide for the named
// (hide yes|no) boolean.
type PinNames struct {
	Offset     *float64
	HideLegacy bool
	Hide       *bool
}

// Hidden returns the logical hide value regardless of spelling.
func (pn PinNames) Hidden() bool {
	return pn.HideLegacy || (pn.Hide != nil && *pn.Hide)
}

// FromSexpr parses a (pin_names ...) list.
func (pn *PinNames) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("pin_names"); err != nil {
		return err
	}

	offset, err := p.MaybeNumberWithName("offset")
	if err != nil {
		return err
	}
	pn.Offset = offset

	if p.MaybeSymbolMatching("hide") {
		pn.HideLegacy = true
	} else {
		hide, err := p.MaybeBoolWithName("hide")
		if err != nil {
			return err
		}
		pn.Hide = hide
	}

	return p.ExpectEnd()
}

// FromSexprRef parses a (pin_names ...) list from a borrowing cursor.
func (pn *PinNames) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("pin_names"); err != nil {
		return err
	}

	offset, err := p.MaybeNumberWithName("offset")
	if err != nil {
		return err
	}
	pn.Offset = offset

	if p.MaybeSymbolMatching("hide") {
		pn.HideLegacy = true
	} else {
		hide, err := p.MaybeBoolWithName("hide")
		if err != nil {
			return err
		}
		pn.Hide = hide
	}

	return p.ExpectEnd()
}

// PresentIn reports whether the node is a (pin_names ...) list.
func (*PinNames) PresentIn(list []sexpr.Node) bool {
	return listNamed(list, "pin_names")
}

// ToSexpr serializes pin_names, branching on the recorded hide spelling.
func (pn PinNames) ToSexpr() sexpr.Node {
	var children []sexpr.Node
	if pn.Offset != nil {
		children = append(children, sexpr.NumberWithName("offset", *pn.Offset))
	}
	switch {
	case pn.HideLegacy:
		children = append(children, sexpr.Symbol("hide"))
	case pn.Hide != nil:
		children = append(children, sexpr.BoolWithName("hide", *pn.Hide))
	}
	return sexpr.ListWithName("pin_names", children...)
}

// SubUnit is one (symbol "Name_U_S" ...) child of a root symbol. Its graphic
// items and pins are retained verbatim in Raw: the leaf grammars repeat the
// combinator patterns of the rest of the format and are passed through
// unmodeled without losing round-trip fidelity.
type SubUnit struct {
	ID       UnitID
	UnitName *string
	Raw      []sexpr.Node
}

// FromSexpr parses a sub-unit list.
func (u *SubUnit) FromSexpr(p *Cursor) error {
	if err := p.ExpectSymbolMatching("symbol"); err != nil {
		return err
	}

	raw, err := p.ExpectString()
	if err != nil {
		return err
	}
	id, err := ParseUnitID(raw)
	if err != nil {
		return err
	}
	u.ID = id

	if u.UnitName, err = p.MaybeStringWithName("unit_name"); err != nil {
		return err
	}

	u.Raw = p.TakeRest()
	return nil
}

// FromSexprRef parses a sub-unit list from a borrowing cursor. Raw shares
// the input buffer.
func (u *SubUnit) FromSexprRef(p *RefCursor) error {
	if err := p.ExpectSymbolMatching("symbol"); err != nil {
		return err
	}

	raw, err := p.ExpectString()
	if err != nil {
		return err
	}
	id, err := ParseUnitID(raw)
	if err != nil {
		return err
	}
	u.ID = id

	if u.UnitName, err = p.MaybeStringWithName("unit_name"); err != nil {
		return err
	}

	u.Raw = p.Rest()
	return nil
}

// PresentIn reports whether the node is a (symbol ...) list.
func (*SubUnit) PresentIn(list []sexpr.Node) bool {
	return listNamed(list, "symbol")
}

// ToSexpr serializes the sub-unit, replaying the retained children verbatim.
func (u SubUnit) ToSexpr() sexpr.Node {
	children := []sexpr.Node{u.ID.ToSexpr()}
	if u.UnitName != nil {
		children = append(children, sexpr.StringWithName("unit_name", *u.UnitName))
	}
	children = append(children, u.Raw...)
	return sexpr.ListWithName("symbol", children...)
}
