package sexpr

import (
	"errors"
	"testing"
)

// ============================================================
// Parse Tests
// ============================================================

func TestParse_Atoms(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"hide", KindSymbol},
		{"kicad_symbol_lib", KindSymbol},
		{"R_0_1", KindSymbol},
		{"~", KindSymbol},
		{`"Device:R"`, KindString},
		{`""`, KindString},
		{"20211014", KindNumber},
		{"-5.08", KindNumber},
		{"1.27", KindNumber},
		{"1e3", KindNumber},
		{"-1.6e-2", KindNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if node.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, node.Kind())
			}
		})
	}
}

func TestParse_SymbolNotNumber(t *testing.T) {
	// Tokens that merely contain digits must stay symbols.
	for _, input := range []string{"R1", "4R7", "1.2.3", "0x10", "-", "+"} {
		node, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if node.Kind() != KindSymbol {
			t.Errorf("Parse(%q): expected symbol, got %s", input, node.Kind())
		}
	}
}

func TestParse_List(t *testing.T) {
	node, err := Parse(`(version 20211014)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	list, ok := node.AsList()
	if !ok {
		t.Fatal("expected list")
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 children, got %d", len(list))
	}

	sym, ok := list[0].AsSymbol()
	if !ok || sym != "version" {
		t.Errorf("expected symbol version, got %v", list[0])
	}
	num, ok := list[1].AsNumber()
	if !ok || num != 20211014 {
		t.Errorf("expected 20211014, got %v", list[1])
	}
}

func TestParse_Nested(t *testing.T) {
	node, err := Parse(`(effects (font (size 1.27 1.27)) (hide yes))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	first, ok := node.FirstSymbol()
	if !ok || first != "effects" {
		t.Fatalf("expected effects head, got %v", node)
	}
	if node.Len() != 3 {
		t.Errorf("expected 3 children, got %d", node.Len())
	}
}

func TestParse_StringEscapes(t *testing.T) {
	node, err := Parse(`"a \"quoted\" value\nwith \\ backslash"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s, _ := node.AsString()
	want := "a \"quoted\" value\nwith \\ backslash"
	if s != want {
		t.Errorf("expected %q, got %q", want, s)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []string{
		"(unterminated",
		")",
		`"unterminated`,
		"(a) trailing",
		"",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", input)
			}
			var syn *SyntaxError
			if !errors.As(err, &syn) {
				t.Errorf("expected *SyntaxError, got %T", err)
			}
		})
	}
}

func TestParse_WhitespaceInsignificant(t *testing.T) {
	a, err := Parse("(symbol \"Device:R\" (in_bom yes))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := Parse("(symbol\n\t\"Device:R\"\n\t(in_bom\n\t\tyes)\n)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("trees differing only in whitespace should be equal")
	}
}

// ============================================================
// Format Tests
// ============================================================

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		`(kicad_symbol_lib (version 20211014) (generator "x"))`,
		`(pin_names (offset 0.254) hide)`,
		`(property "Reference" "R" (id 0) (at 2.032 0 90) (effects (font (size 1.27 1.27))))`,
		`(justify left bottom)`,
		`(a "b \"c\" d" -1.5 (e))`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			node, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			// Both renderings must decode back to the same tree.
			for _, text := range []string{Format(node), node.String()} {
				back, err := Parse(text)
				if err != nil {
					t.Fatalf("reparse of %q failed: %v", text, err)
				}
				if !back.Equal(node) {
					t.Errorf("round trip changed tree:\n in: %s\nout: %s", node, back)
				}
			}
		})
	}
}

func TestFormat_Numbers(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20211014, "20211014"},
		{1.27, "1.27"},
		{-5.08, "-5.08"},
		{0, "0"},
		{0.254, "0.254"},
	}

	for _, tt := range tests {
		if got := Number(tt.in).String(); got != tt.want {
			t.Errorf("Number(%v).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_StringQuoting(t *testing.T) {
	// Strings always render quoted, even when they look like symbols, so
	// the symbol/string distinction survives a round trip.
	node := Str("hide")
	if got := node.String(); got != `"hide"` {
		t.Fatalf("Str(hide).String() = %q", got)
	}
	back, err := Parse(node.String())
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if back.Kind() != KindString {
		t.Errorf("quoted string reparsed as %s", back.Kind())
	}
}

// ============================================================
// Node Tests
// ============================================================

func TestNode_Builders(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{ListWithName("version", Number(20211014)), "(version 20211014)"},
		{SymbolWithName("generator", "kicad_symbol_editor"), "(generator kicad_symbol_editor)"},
		{StringWithName("generator", "kicad_symbol_editor"), `(generator "kicad_symbol_editor")`},
		{NumberWithName("offset", 0.254), "(offset 0.254)"},
		{BoolWithName("in_bom", true), "(in_bom yes)"},
		{BoolWithName("in_bom", false), "(in_bom no)"},
		{ListWithName("power"), "(power)"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestNode_Equal(t *testing.T) {
	tests := []struct {
		a, b  Node
		equal bool
	}{
		{Symbol("hide"), Symbol("hide"), true},
		{Symbol("hide"), Str("hide"), false},
		{Number(1), Number(1), true},
		{Number(1), Number(2), false},
		{List(Symbol("a")), List(Symbol("a")), true},
		{List(Symbol("a")), List(Symbol("a"), Symbol("b")), false},
		{List(), List(), true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestNode_FirstSymbol(t *testing.T) {
	node, _ := Parse(`(symbol "Device:R")`)
	first, ok := node.FirstSymbol()
	if !ok || first != "symbol" {
		t.Errorf("FirstSymbol = %q, %v", first, ok)
	}

	if _, ok := Symbol("x").FirstSymbol(); ok {
		t.Error("FirstSymbol on atom should report false")
	}
	if _, ok := List().FirstSymbol(); ok {
		t.Error("FirstSymbol on empty list should report false")
	}
	if _, ok := List(Str("x")).FirstSymbol(); ok {
		t.Error("FirstSymbol with string head should report false")
	}
}
