package calc

import (
	"errors"
	"fmt"

	"chimney_draft/internal/models"
)

var (
	// ErrInvalidCO2 guards the division in the combustion regressions.
	ErrInvalidCO2 = errors.New("co2 percent must be greater than zero")

	// ErrInvalidInput is returned for a non-positive fuel input.
	ErrInvalidInput = errors.New("fuel input (MBH) must be greater than zero")
)

// Empirical combustion regressions: M = lbm of combustion products per
// 1000 BTU of fuel input, as a function of the analyzer CO2 reading.
//
//	natural gas: M = 0.705 × (0.159 + 10.72/%CO2)
//	LP gas:      M = 0.704 × (0.144 + 12.61/%CO2)
//	#2 oil:      M = 0.72  × (0.12  + 14.4/%CO2)
func mFactor(fuel models.FuelType, co2Percent float64) (float64, error) {
	switch fuel {
	case models.FuelNaturalGas:
		return 0.705 * (0.159 + 10.72/co2Percent), nil
	case models.FuelLPGas:
		return 0.704 * (0.144 + 12.61/co2Percent), nil
	case models.FuelOil:
		return 0.72 * (0.12 + 14.4/co2Percent), nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownFuelType, fuel)
	}
}

// MassFlowFromFuelInput converts fuel input and the CO2 reading into flue-gas
// mass flow. MBH is thousands of BTU/hr, so mass flow in lbm/hr is simply
// M × MBH.
func MassFlowFromFuelInput(mbh, co2Percent float64, fuel models.FuelType) (models.CombustionResult, error) {
	if mbh <= 0 {
		return models.CombustionResult{}, fmt.Errorf("%w: got %v", ErrInvalidInput, mbh)
	}
	if co2Percent <= 0 {
		return models.CombustionResult{}, fmt.Errorf("%w: got %v", ErrInvalidCO2, co2Percent)
	}
	m, err := mFactor(fuel, co2Percent)
	if err != nil {
		return models.CombustionResult{}, err
	}
	perHr := m * mbh
	return models.CombustionResult{
		MassFlowLbmHr:  perHr,
		MassFlowLbmMin: perHr / 60,
		MFactor:        m,
		Fuel:           fuel,
		MBH:            mbh,
		CO2Percent:     co2Percent,
	}, nil
}

// CFMFromCombustion chains the combustion regression with the density
// conversion, returning the merged per-appliance flow record.
func CFMFromCombustion(mbh, co2Percent, tempF float64, fuel models.FuelType) (models.CombustionFlowResult, error) {
	mass, err := MassFlowFromFuelInput(mbh, co2Percent, fuel)
	if err != nil {
		return models.CombustionFlowResult{}, err
	}
	flow := CFMFromMassFlow(mass.MassFlowLbmMin, tempF)
	return models.CombustionFlowResult{
		CFM:            flow.CFM,
		MassFlowLbmHr:  mass.MassFlowLbmHr,
		MassFlowLbmMin: mass.MassFlowLbmMin,
		MFactor:        mass.MFactor,
		MBH:            mbh,
		CO2Percent:     co2Percent,
		TempF:          tempF,
		Fuel:           mass.Fuel,
		DensityLbmFt3:  flow.DensityLbmFt3,
	}, nil
}
