package kicad

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edacore/kicadfmt/sexpr"
)

// TestRoundTripFixtures parses every library under testdata with both
// strategies and verifies that serialization reproduces the input token tree
// exactly, spelling variants included.
func TestRoundTripFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".kicad_sym") {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", entry.Name()))
			require.NoError(t, err)
			text := string(data)

			doc, err := sexpr.Parse(text)
			require.NoError(t, err)

			owning, err := ParseSymbolLibraryText(text)
			require.NoError(t, err, "owning parse failed")
			fast, err := ParseSymbolLibraryTextFast(text)
			require.NoError(t, err, "borrowing parse failed")

			assert.Equal(t, owning, fast, "strategies produced different models")

			for _, lib := range []*SymbolLibrary{owning, fast} {
				out := lib.ToSexpr()
				if !out.Equal(doc) {
					t.Fatalf("round trip changed the tree:\n in:\n%s\nout:\n%s", sexpr.Format(doc), sexpr.Format(out))
				}
			}

			// The formatter and parser compose: rendering the serialized
			// tree and parsing it again converges on the same model.
			reparsed, err := ParseSymbolLibraryText(sexpr.Format(owning.ToSexpr()))
			require.NoError(t, err)
			assert.Equal(t, owning, reparsed)
		})
	}
}

// TestRoundTripFixtures_ModelShape spot-checks the decoded models so a
// formatting-only bug cannot hide behind tree equality.
func TestRoundTripFixtures_ModelShape(t *testing.T) {
	t.Run("device_legacy", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join("testdata", "device_legacy.kicad_sym"))
		require.NoError(t, err)

		lib, err := ParseSymbolLibraryText(string(data))
		require.NoError(t, err)

		assert.Equal(t, 20171130, lib.Version)
		assert.False(t, lib.GeneratorIsString)
		require.Len(t, lib.Symbols, 2)

		root := lib.Symbols[0].(*RootSymbol)
		assert.True(t, root.HidePinNumbers)
		require.NotNil(t, root.PinNames)
		assert.True(t, root.PinNames.HideLegacy)
		assert.True(t, root.PinNames.Hidden())
		require.Len(t, root.Properties, 4)
		for i, prop := range root.Properties {
			require.NotNil(t, prop.LegacyID, "property %d lost its id", i)
			assert.Equal(t, i, *prop.LegacyID)
		}
		require.Len(t, root.Units, 2)
		assert.Equal(t, UnitID{Parent: "R", Unit: 1, Style: 1}, root.Units[1].ID)

		derived := lib.Symbols[1].(*DerivedSymbol)
		assert.Equal(t, "R", derived.Extends)
	})

	t.Run("power_modern", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join("testdata", "power_modern.kicad_sym"))
		require.NoError(t, err)

		lib, err := ParseSymbolLibraryText(string(data))
		require.NoError(t, err)

		assert.True(t, lib.GeneratorIsString)
		require.NotNil(t, lib.GeneratorVersion)
		assert.Equal(t, "9.0", *lib.GeneratorVersion)

		root := lib.Symbols[0].(*RootSymbol)
		assert.True(t, root.Power)
		require.NotNil(t, root.PinNames.Hide)
		assert.True(t, *root.PinNames.Hide)
		assert.False(t, root.PinNames.HideLegacy)
		require.NotNil(t, root.ExcludeFromSim)
		assert.False(t, *root.ExcludeFromSim)
		require.NotNil(t, root.EmbeddedFonts)
		assert.False(t, *root.EmbeddedFonts)

		require.Len(t, root.Properties, 3)
		assert.True(t, root.Properties[1].ShowName)
		assert.True(t, root.Properties[2].DoNotAutoplace)
		require.NotNil(t, root.Properties[0].Effects.Hide)
		assert.True(t, *root.Properties[0].Effects.Hide)

		require.NotNil(t, root.Units[1].UnitName)
		assert.Equal(t, "Ground", *root.Units[1].UnitName)
	})
}
