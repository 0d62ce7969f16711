package calc

import (
	"errors"
	"fmt"
	"sort"

	"chimney_draft/internal/models"
)

var (
	// ErrInvalidDiameter guards the L/D friction term.
	ErrInvalidDiameter = errors.New("duct diameter must be greater than zero")

	// ErrInvalidLength rejects negative duct lengths.
	ErrInvalidLength = errors.New("duct length must not be negative")
)

// LossInput carries the pressure-loss parameters; the optional fields
// (VentType, AdditionalK, AdditionalLossInWC) default to zero values.
type LossInput struct {
	LengthFt           float64
	DiameterIn         float64
	VelocityFPM        float64
	TempF              float64
	Fittings           map[string]int
	VentType           string
	AdditionalK        float64
	AdditionalLossInWC float64
}

// PressureLoss evaluates the duct loss equation
//
//	dP = (f·(L/D) + ΣK + Kadd) · ρ · (V/1096.2)² + dPadd
//
// with the friction factor and fitting K values taken from the vent-type
// profile, falling back to the generic table per fitting and as a whole.
// Fitting types found in neither table contribute nothing and are reported
// in MissingFittings; this mirrors the legacy tool's permissive handling,
// so existing inputs keep producing identical numbers.
func PressureLoss(in LossInput) (models.PressureLossResult, error) {
	if in.DiameterIn <= 0 {
		return models.PressureLossResult{}, fmt.Errorf("%w: got %v", ErrInvalidDiameter, in.DiameterIn)
	}
	if in.LengthFt < 0 {
		return models.PressureLossResult{}, fmt.Errorf("%w: got %v", ErrInvalidLength, in.LengthFt)
	}

	rho := AirDensity(in.TempF)
	profile, _ := VentProfileFor(in.VentType)

	frictionTerm := profile.BaseFriction * (in.LengthFt / in.DiameterIn)

	sumK := 0.0
	breakdown := make(map[string]models.FittingLoss, len(in.Fittings))
	var missing []string
	for fitting, qty := range in.Fittings {
		if qty <= 0 {
			continue
		}
		kEach, ok := profile.K[fitting]
		if !ok {
			kEach, ok = genericFittings[fitting]
		}
		if !ok {
			missing = append(missing, fitting)
			continue
		}
		kTotal := kEach * float64(qty)
		sumK += kTotal
		breakdown[fitting] = models.FittingLoss{
			Quantity: qty,
			KEach:    kEach,
			KTotal:   kTotal,
		}
	}
	sort.Strings(missing)

	if in.AdditionalK > 0 {
		sumK += in.AdditionalK
	}

	velocityTerm := (in.VelocityFPM / velocityHeadFPM) * (in.VelocityFPM / velocityHeadFPM)
	calculated := (frictionTerm + sumK) * rho * velocityTerm

	return models.PressureLossResult{
		FrictionInWC:       frictionTerm * rho * velocityTerm,
		FittingsInWC:       sumK * rho * velocityTerm,
		CalculatedInWC:     calculated,
		AdditionalInWC:     in.AdditionalLossInWC,
		TotalInWC:          calculated + in.AdditionalLossInWC,
		FrictionTerm:       frictionTerm,
		BaseFrictionFactor: profile.BaseFriction,
		SumK:               sumK,
		AdditionalK:        in.AdditionalK,
		Fittings:           breakdown,
		MissingFittings:    missing,
		DensityLbmFt3:      rho,
		VelocityFPM:        in.VelocityFPM,
		VentType:           profile.Name,
	}, nil
}

// TotalPressureLoss evaluates a segment's loss at a velocity given in ft/s.
func TotalPressureLoss(seg models.DuctSegment, velocityFPS, tempF float64) (models.PressureLossResult, error) {
	return PressureLoss(LossInput{
		LengthFt:           seg.LengthFt,
		DiameterIn:         seg.DiameterIn,
		VelocityFPM:        velocityFPS * 60,
		TempF:              tempF,
		Fittings:           seg.Fittings,
		VentType:           seg.VentType,
		AdditionalK:        seg.AdditionalK,
		AdditionalLossInWC: seg.AdditionalLossInWC,
	})
}
