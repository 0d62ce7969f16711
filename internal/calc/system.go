package calc

import "chimney_draft/internal/models"

// AnalyzeSystem runs the full draft balance for one flow through one
// segment: theoretical draft from the segment's vertical rise, pressure loss
// along its developed length, and the resulting available draft.
func AnalyzeSystem(cfm float64, seg models.DuctSegment, flueTempF, outsideTempF, barometricInHg float64) (models.SystemAnalysis, error) {
	if barometricInHg <= 0 {
		barometricInHg = StandardBarometricInHg
	}

	theoretical := TheoreticalDraft(seg.HeightFt, flueTempF, outsideTempF, barometricInHg)

	var velocity float64
	if seg.DiameterIn > 0 {
		velocity = VelocityFromCFM(cfm, seg.DiameterIn)
	}

	losses, err := TotalPressureLoss(seg, velocity, flueTempF)
	if err != nil {
		return models.SystemAnalysis{}, err
	}

	return models.SystemAnalysis{
		CFM:                  cfm,
		DiameterIn:           seg.DiameterIn,
		VelocityFPS:          velocity,
		HeightFt:             seg.HeightFt,
		LengthFt:             seg.LengthFt,
		FlueTempF:            flueTempF,
		OutsideTempF:         outsideTempF,
		BarometricInHg:       barometricInHg,
		TheoreticalDraftInWC: theoretical,
		PressureLossInWC:     losses.TotalInWC,
		AvailableDraftInWC:   AvailableDraft(theoretical, losses.TotalInWC),
		Losses:               losses,
	}, nil
}
