// Package main provides the kicadfmt CLI for inspecting, verifying, and
// converting KiCad symbol libraries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfig  string
	flagFast    bool
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kicadfmt",
	Short: "kicadfmt inspects and converts KiCad symbol libraries",
	Long: `kicadfmt reads KiCad symbol library files (.kicad_sym), verifies that
they parse and that serialization reproduces them byte-for-tree, and
exports their contents to YAML or JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
		if flagNoColor {
			disableStyles()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .kicadfmt.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&flagFast, "fast", false, "use the zero-copy parse strategy")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
