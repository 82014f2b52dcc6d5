package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLibraryID(t *testing.T) {
	tests := []struct {
		raw     string
		library string
		name    string
	}{
		{"Device:R", "Device", "R"},
		{"power:GND", "power", "GND"},
		{"Connector_Generic:Conn_01x02", "Connector_Generic", "Conn_01x02"},
		// Only the first colon splits; the name keeps the rest.
		{"Lib:Part:Rev2", "Lib", "Part:Rev2"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseLibraryID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.library, id.Library)
			assert.Equal(t, tt.name, id.Name)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}

func TestParseLibraryID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "NoColon", ":Name", "Library:", ":"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseLibraryID(raw)
			var idErr *LibraryIDError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, raw, idErr.Raw)
		})
	}
}

func TestParseUnitID(t *testing.T) {
	tests := []struct {
		raw    string
		parent string
		unit   int
		style  int
	}{
		{"R_0_1", "R", 0, 1},
		{"GND_1_1", "GND", 1, 1},
		// The parent name may itself contain underscores and digits.
		{"Conn_01x02_1_1", "Conn_01x02", 1, 1},
		{"LM358_2_0", "LM358", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseUnitID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.parent, id.Parent)
			assert.Equal(t, tt.unit, id.Unit)
			assert.Equal(t, tt.style, id.Style)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}

func TestParseUnitID_Invalid(t *testing.T) {
	for _, raw := range []string{"", "R", "R_1", "R_a_1", "R_1_b", "_1_2", "R_1_", "R_-1_1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseUnitID(raw)
			var idErr *UnitIDError
			require.ErrorAs(t, err, &idErr)
		})
	}
}
