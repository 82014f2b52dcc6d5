// The export command: convert a symbol library to YAML or JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/edacore/kicadfmt/kicad"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export a symbol library to YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := parseFile(args[0])
		if err != nil {
			return err
		}

		view := exportView(lib)

		var out []byte
		switch flagExportFormat {
		case "yaml":
			out, err = yaml.Marshal(view)
		case "json":
			out, err = json.MarshalIndent(view, "", "  ")
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", flagExportFormat)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", flagExportFormat, err)
		}

		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "yaml", "output format: yaml or json")
}

// ============================================================
// Export view
// ============================================================

// The export view flattens the model into plain maps and slices so both
// encoders produce stable, human-oriented output.

type libraryView struct {
	Version          int          `yaml:"version" json:"version"`
	Generator        string       `yaml:"generator" json:"generator"`
	GeneratorVersion string       `yaml:"generator_version,omitempty" json:"generator_version,omitempty"`
	Symbols          []symbolView `yaml:"symbols" json:"symbols"`
}

type symbolView struct {
	ID             string         `yaml:"id" json:"id"`
	Kind           string         `yaml:"kind" json:"kind"`
	Extends        string         `yaml:"extends,omitempty" json:"extends,omitempty"`
	Power          bool           `yaml:"power,omitempty" json:"power,omitempty"`
	HidePinNumbers  bool           `yaml:"hide_pin_numbers,omitempty" json:"hide_pin_numbers,omitempty"`
	HidePinNames   bool           `yaml:"hide_pin_names,omitempty" json:"hide_pin_names,omitempty"`
	PinNameOffset  *float64       `yaml:"pin_name_offset,omitempty" json:"pin_name_offset,omitempty"`
	ExcludeFromSim *bool          `yaml:"exclude_from_sim,omitempty" json:"exclude_from_sim,omitempty"`
	InBom          bool           `yaml:"in_bom" json:"in_bom"`
	OnBoard        bool           `yaml:"on_board" json:"on_board"`
	Properties     []propertyView `yaml:"properties,omitempty" json:"properties,omitempty"`
	Units          []string       `yaml:"units,omitempty" json:"units,omitempty"`
}

type propertyView struct {
	Key    string `yaml:"key" json:"key"`
	Value  string `yaml:"value" json:"value"`
	Hidden bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

func exportView(lib *kicad.SymbolLibrary) libraryView {
	view := libraryView{
		Version:   lib.Version,
		Generator: lib.Generator,
		Symbols:   []symbolView{},
	}
	if lib.GeneratorVersion != nil {
		view.GeneratorVersion = *lib.GeneratorVersion
	}

	for _, def := range lib.Symbols {
		switch sym := def.(type) {
		case *kicad.RootSymbol:
			sv := symbolView{
				ID:             sym.ID.String(),
				Kind:           "root",
				Power:          sym.Power,
				HidePinNumbers:  sym.HidePinNumbers,
				ExcludeFromSim: sym.ExcludeFromSim,
				InBom:          sym.InBom,
				OnBoard:        sym.OnBoard,
				Properties:     propertyViews(sym.Properties),
			}
			if sym.PinNames != nil {
				sv.HidePinNames = sym.PinNames.Hidden()
				sv.PinNameOffset = sym.PinNames.Offset
			}
			for _, unit := range sym.Units {
				sv.Units = append(sv.Units, unit.ID.String())
			}
			view.Symbols = append(view.Symbols, sv)
		case *kicad.DerivedSymbol:
			view.Symbols = append(view.Symbols, symbolView{
				ID:         sym.ID.String(),
				Kind:       "derived",
				Extends:    sym.Extends,
				Properties: propertyViews(sym.Properties),
			})
		}
	}
	return view
}

func propertyViews(props []kicad.SymbolProperty) []propertyView {
	views := make([]propertyView, len(props))
	for i, prop := range props {
		views[i] = propertyView{
			Key:    prop.Key,
			Value:  prop.Value,
			Hidden: prop.Effects.Hide != nil && *prop.Effects.Hide,
		}
	}
	return views
}
