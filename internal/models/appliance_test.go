package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFuelType(t *testing.T) {
	cases := map[string]FuelType{
		"natural_gas":   FuelNaturalGas,
		"gas":           FuelNaturalGas,
		"NG":            FuelNaturalGas,
		" Natural_Gas ": FuelNaturalGas,
		"lp_gas":        FuelLPGas,
		"propane":       FuelLPGas,
		"LPG":           FuelLPGas,
		"oil":           FuelOil,
		"fuel_oil":      FuelOil,
		"#2_oil":        FuelOil,
	}
	for input, want := range cases {
		got, err := ParseFuelType(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseFuelType_Unknown(t *testing.T) {
	for _, input := range []string{"", "coal", "wood"} {
		_, err := ParseFuelType(input)
		assert.ErrorIs(t, err, ErrUnknownFuelType, "input %q", input)
	}
}

func TestApplianceModulating(t *testing.T) {
	assert.False(t, Appliance{}.Modulating())
	assert.False(t, Appliance{TurndownRatio: 1}.Modulating())
	assert.True(t, Appliance{TurndownRatio: 2.5}.Modulating())
}

func TestApplianceLowFire(t *testing.T) {
	fixed := Appliance{MBH: 200}
	assert.Equal(t, fixed, fixed.LowFire())

	modulating := Appliance{MBH: 200, TurndownRatio: 4, Fuel: FuelNaturalGas}
	low := modulating.LowFire()
	assert.Equal(t, 50.0, low.MBH)
	assert.Equal(t, modulating.Fuel, low.Fuel)
	assert.Equal(t, modulating.TurndownRatio, low.TurndownRatio)
	// Original is untouched.
	assert.Equal(t, 200.0, modulating.MBH)
}
