// The roundtrip command: verify serialization fidelity with a line diff.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edacore/kicadfmt/kicad"
	"github.com/edacore/kicadfmt/sexpr"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip FILE...",
	Short: "Verify that parse and serialize reproduce each library",
	Long: `Roundtrip parses each named library, serializes the model back to a
token tree, and compares it against the input tree. Both parse strategies
are exercised and must agree. On mismatch a line diff of the two
renderings is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := roundtripFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("FAIL"), path, err)
				failed++
				continue
			}
			fmt.Printf("%s %s\n", okStyle.Render("OK"), path)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed the round trip", failed, len(args))
		}
		return nil
	},
}

func roundtripFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(data)

	doc, err := sexpr.Parse(text)
	if err != nil {
		return err
	}

	owning, err := kicad.ParseSymbolLibrary(doc)
	if err != nil {
		return fmt.Errorf("owning parse: %w", err)
	}
	fast, err := kicad.ParseSymbolLibraryFast(doc)
	if err != nil {
		return fmt.Errorf("borrowing parse: %w", err)
	}

	if !owning.ToSexpr().Equal(fast.ToSexpr()) {
		return fmt.Errorf("parse strategies disagree")
	}

	out := owning.ToSexpr()
	if !out.Equal(doc) {
		printDiff(sexpr.Format(doc), sexpr.Format(out))
		return fmt.Errorf("serialized tree differs from input")
	}
	return nil
}

// printDiff prints a minimal line-oriented comparison of the two renderings,
// skipping the common prefix and suffix.
func printDiff(want, got string) {
	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")

	prefix := 0
	for prefix < len(wantLines) && prefix < len(gotLines) && wantLines[prefix] == gotLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(wantLines)-prefix && suffix < len(gotLines)-prefix &&
		wantLines[len(wantLines)-1-suffix] == gotLines[len(gotLines)-1-suffix] {
		suffix++
	}

	fmt.Println(headerStyle.Render("--- input"))
	fmt.Println(headerStyle.Render("+++ serialized"))
	if prefix > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  ... %d matching lines ...", prefix)))
	}
	for _, line := range wantLines[prefix : len(wantLines)-suffix] {
		fmt.Println(delStyle.Render("- " + line))
	}
	for _, line := range gotLines[prefix : len(gotLines)-suffix] {
		fmt.Println(addStyle.Render("+ " + line))
	}
	if suffix > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  ... %d matching lines ...", suffix)))
	}
}
