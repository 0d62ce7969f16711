package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chimney_draft/internal/models"
)

func TestMassFlowFromFuelInput_NaturalGasReference(t *testing.T) {
	// 100 MBH at 9% CO2: M = 0.705 × (0.159 + 10.72/9) = 0.9518 lb/1000 BTU.
	result, err := MassFlowFromFuelInput(100, 9.0, models.FuelNaturalGas)
	require.NoError(t, err)

	assert.InDelta(t, 0.9518, result.MFactor, 0.0005)
	assert.InDelta(t, 95.18, result.MassFlowLbmHr, 0.05)
	assert.InDelta(t, result.MassFlowLbmHr/60, result.MassFlowLbmMin, 1e-12)
	assert.Equal(t, models.FuelNaturalGas, result.Fuel)
}

func TestMassFlowFromFuelInput_PerFuelFormulas(t *testing.T) {
	tests := []struct {
		name    string
		fuel    models.FuelType
		co2     float64
		mFactor float64
	}{
		{"lp gas at 10 percent", models.FuelLPGas, 10.0, 0.9896},
		{"oil at 12 percent", models.FuelOil, 12.0, 0.9504},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MassFlowFromFuelInput(100, tt.co2, tt.fuel)
			require.NoError(t, err)
			assert.InDelta(t, tt.mFactor, result.MFactor, 0.0005)
		})
	}
}

func TestMassFlowFromFuelInput_Invalid(t *testing.T) {
	_, err := MassFlowFromFuelInput(100, 0, models.FuelNaturalGas)
	assert.ErrorIs(t, err, ErrInvalidCO2)

	_, err = MassFlowFromFuelInput(100, -2, models.FuelNaturalGas)
	assert.ErrorIs(t, err, ErrInvalidCO2)

	_, err = MassFlowFromFuelInput(0, 9, models.FuelNaturalGas)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MassFlowFromFuelInput(100, 9, models.FuelType("coal"))
	assert.ErrorIs(t, err, models.ErrUnknownFuelType)
}

func TestCFMFromCombustion_NaturalGasReference(t *testing.T) {
	// The worked example: 100 MBH gas at 9% CO2 and 400°F is about 34.4 CFM.
	result, err := CFMFromCombustion(100, 9.0, 400, models.FuelNaturalGas)
	require.NoError(t, err)

	assert.InDelta(t, 34.38, result.CFM, 0.05)
	assert.InDelta(t, 0.0461, result.DensityLbmFt3, 0.0005)
	assert.InDelta(t, 95.18, result.MassFlowLbmHr, 0.05)
	assert.Equal(t, 400.0, result.TempF)
}

func TestCFMFromCombustion_LowerCO2MeansMoreFlow(t *testing.T) {
	// Lower CO2 = more excess air = higher CFM at the same input.
	prev := 0.0
	for _, co2 := range []float64{11, 10, 9, 8, 7} {
		result, err := CFMFromCombustion(100, co2, 400, models.FuelNaturalGas)
		require.NoError(t, err)
		assert.Greater(t, result.CFM, prev)
		prev = result.CFM
	}
}
