package kicad

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edacore/kicadfmt/sexpr"
)

// ============================================================
// Parse Strategy Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=BenchmarkParseSymbolLibrary -benchmem -count=5 ./kicad/
//
// The owning and borrowing strategies decode the same grammar; these
// benchmarks quantify the copy overhead the borrowing cursor avoids.

func benchFixture(b *testing.B, name string) (string, sexpr.Node) {
	b.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		b.Fatalf("failed to read fixture: %v", err)
	}
	doc, err := sexpr.Parse(string(data))
	if err != nil {
		b.Fatalf("failed to tokenize fixture: %v", err)
	}
	return string(data), doc
}

// BenchmarkParseSymbolLibrary_Owning measures the convenience strategy on a
// pre-tokenized tree.
func BenchmarkParseSymbolLibrary_Owning(b *testing.B) {
	_, doc := benchFixture(b, "device_legacy.kicad_sym")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseSymbolLibrary(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseSymbolLibrary_Borrowing measures the zero-copy strategy on a
// pre-tokenized tree.
func BenchmarkParseSymbolLibrary_Borrowing(b *testing.B) {
	_, doc := benchFixture(b, "device_legacy.kicad_sym")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseSymbolLibraryFast(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseSymbolLibrary_TextOwning includes tokenization, matching the
// from-disk usage pattern.
func BenchmarkParseSymbolLibrary_TextOwning(b *testing.B) {
	text, _ := benchFixture(b, "device_legacy.kicad_sym")
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseSymbolLibraryText(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseSymbolLibrary_TextBorrowing includes tokenization.
func BenchmarkParseSymbolLibrary_TextBorrowing(b *testing.B) {
	text, _ := benchFixture(b, "device_legacy.kicad_sym")
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseSymbolLibraryTextFast(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSerialize measures model to token tree conversion.
func BenchmarkSerialize(b *testing.B) {
	text, _ := benchFixture(b, "device_legacy.kicad_sym")
	lib, err := ParseSymbolLibraryText(text)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lib.ToSexpr()
	}
}

// BenchmarkIntern_Hit measures lookup of an allow-listed key.
func BenchmarkIntern_Hit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Intern("Reference")
	}
}

// BenchmarkIntern_Miss measures pass-through of an unlisted key.
func BenchmarkIntern_Miss(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Intern("JLCPCB_Part")
	}
}
