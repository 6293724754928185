package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"TRUCK", ModeTruck, true},
		{"rail", ModeRail, true},
		{" Ship ", ModeShip, true},
		{"BARGE", ModeTruck, false},
		{"", ModeTruck, false},
	}
	for _, tc := range tests {
		got, ok := ParseMode(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseMode(%q) = %v,%v; want %v,%v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "TRUCK", ModeTruck.String())
	assert.Equal(t, "RAIL", ModeRail.String())
	assert.Equal(t, "SHIP", ModeShip.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestFactorFor_UnknownFallsBackToTruck(t *testing.T) {
	l := fixtureLogistics(t)
	assert.Equal(t, 0.0001, l.FactorFor(ModeTruck))
	assert.Equal(t, 0.00003, l.FactorFor(ModeRail))
	assert.Equal(t, 0.00001, l.FactorFor(ModeShip))
	assert.Equal(t, 0.0001, l.FactorFor(Mode(42)))
	assert.Equal(t, 0.0001, l.FactorFor(Mode(-1)))
}

func TestNewLogistics_RequiresAllModes(t *testing.T) {
	_, err := NewLogistics(map[Mode]float64{ModeTruck: 1, ModeRail: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHIP")
}

func TestTransportCarbon(t *testing.T) {
	l := fixtureLogistics(t)
	assert.InDelta(t, 5*1000*0.00003, l.TransportCarbon(5, 1000, ModeRail), 1e-15)
	assert.Equal(t, 0.0, l.TransportCarbon(5, 0, ModeShip))
}
