package calc

import "math"

// AirDensity returns air (and flue gas, treated as air) density in lbm/ft³
// at the given temperature via the ideal gas law at standard atmospheric
// pressure. The caller must not pass a temperature at or below absolute zero
// (−459.67°F).
func AirDensity(tempF float64) float64 {
	tempR := tempF + rankineOffset
	return AtmPressureLbfFt2 / (RAir * tempR)
}

// PressureAtElevation converts installation elevation in feet to barometric
// pressure in inches Hg using the standard atmosphere lapse model
// P = P0·(1 − 6.87535e-6·h)^5.2561.
func PressureAtElevation(elevationFt float64) float64 {
	if elevationFt == 0 {
		return StandardBarometricInHg
	}
	return StandardBarometricInHg * math.Pow(1-6.87535e-6*elevationFt, 5.2561)
}
