// The check command: parse libraries and report what they contain.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edacore/kicadfmt/kicad"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse symbol libraries and report their contents",
	Long: `Check parses each named library and prints a one-line summary per file.
Exit status is non-zero when any file fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			lib, err := parseFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("FAIL"), path, err)
				failed++
				continue
			}

			roots, derived := 0, 0
			for _, def := range lib.Symbols {
				switch def.(type) {
				case *kicad.RootSymbol:
					roots++
				case *kicad.DerivedSymbol:
					derived++
				}
			}
			fmt.Printf("%s %s: version %d, generator %s, %d symbols (%d root, %d derived)\n",
				okStyle.Render("OK"), path, lib.Version, lib.Generator, len(lib.Symbols), roots, derived)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
		}
		return nil
	},
}

// parseFile reads and parses one library with the configured strategy.
func parseFile(path string) (*kicad.SymbolLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if flagFast {
		return kicad.ParseSymbolLibraryTextFast(string(data))
	}
	return kicad.ParseSymbolLibraryText(string(data))
}
