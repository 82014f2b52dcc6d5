package sexpr

// Kind represents the kind of a tree node.
type Kind uint8

const (
	KindSymbol Kind = iota
	KindString
	KindNumber
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Node is one node of a parenthesized token tree.
type Node struct {
	kind Kind
	text string  // symbol or string payload
	num  float64 // number payload
	list []Node  // list children
}

// ============================================================
// Constructors
// ============================================================

// Symbol creates a bare symbol node.
func Symbol(s string) Node {
	return Node{kind: KindSymbol, text: s}
}

// Str creates a quoted string node.
func Str(s string) Node {
	return Node{kind: KindString, text: s}
}

// Number creates a numeric node.
func Number(f float64) Node {
	return Node{kind: KindNumber, num: f}
}

// List creates a list node from the given children.
func List(children ...Node) Node {
	return Node{kind: KindList, list: children}
}

// ListWithName creates a list whose first child is Symbol(name).
// This is the shape of every named entity node: (name child...).
func ListWithName(name string, children ...Node) Node {
	list := make([]Node, 0, len(children)+1)
	list = append(list, Symbol(name))
	list = append(list, children...)
	return Node{kind: KindList, list: list}
}

// SymbolWithName creates (name sym).
func SymbolWithName(name, sym string) Node {
	return ListWithName(name, Symbol(sym))
}

// StringWithName creates (name "str").
func StringWithName(name, str string) Node {
	return ListWithName(name, Str(str))
}

// NumberWithName creates (name num).
func NumberWithName(name string, f float64) Node {
	return ListWithName(name, Number(f))
}

// BoolWithName creates (name yes) or (name no).
func BoolWithName(name string, v bool) Node {
	if v {
		return ListWithName(name, Symbol("yes"))
	}
	return ListWithName(name, Symbol("no"))
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the node kind.
func (n Node) Kind() Kind {
	return n.kind
}

// AsSymbol returns the symbol text if the node is a symbol.
func (n Node) AsSymbol() (string, bool) {
	if n.kind != KindSymbol {
		return "", false
	}
	return n.text, true
}

// AsString returns the string text if the node is a string.
func (n Node) AsString() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// AsNumber returns the numeric value if the node is a number.
func (n Node) AsNumber() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return n.num, true
}

// AsList returns the children if the node is a list.
func (n Node) AsList() ([]Node, bool) {
	if n.kind != KindList {
		return nil, false
	}
	return n.list, true
}

// FirstSymbol returns the symbol text of the first child of a list.
// It is the structural presence test for entity nodes: a node belongs to an
// entity type when it is a list whose first child is that type's keyword.
func (n Node) FirstSymbol() (string, bool) {
	if n.kind != KindList || len(n.list) == 0 {
		return "", false
	}
	return n.list[0].AsSymbol()
}

// Len returns the number of children of a list, zero for atoms.
func (n Node) Len() int {
	return len(n.list)
}

// Equal reports structural equality of two trees.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindSymbol, KindString:
		return n.text == other.text
	case KindNumber:
		return n.num == other.num
	case KindList:
		if len(n.list) != len(other.list) {
			return false
		}
		for i := range n.list {
			if !n.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
