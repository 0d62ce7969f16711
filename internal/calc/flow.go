package calc

import (
	"math"

	"chimney_draft/internal/models"
)

// CFMFromMassFlow converts a mass flow in lbm/min to volumetric flow at the
// given gas temperature: CFM = mass flow / density.
func CFMFromMassFlow(massFlowLbmMin, tempF float64) models.FlowResult {
	rho := AirDensity(tempF)
	return models.FlowResult{
		CFM:            massFlowLbmMin / rho,
		MassFlowLbmMin: massFlowLbmMin,
		DensityLbmFt3:  rho,
		TempF:          tempF,
	}
}

// ductAreaFt2 is the flow area of a round duct, ft², from its inside
// diameter in inches.
func ductAreaFt2(diameterIn float64) float64 {
	d := diameterIn / 12
	return math.Pi * d * d / 4
}

// VelocityFromCFM returns gas velocity in ft/s for a flow through a round
// duct. The caller must validate diameterIn > 0.
func VelocityFromCFM(cfm, diameterIn float64) float64 {
	velocityFPM := cfm / ductAreaFt2(diameterIn)
	return velocityFPM / 60
}

// CFMFromVelocity is the inverse of VelocityFromCFM.
func CFMFromVelocity(velocityFPS, diameterIn float64) float64 {
	return velocityFPS * 60 * ductAreaFt2(diameterIn)
}
