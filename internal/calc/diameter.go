package calc

import "chimney_draft/internal/models"

// SelectDiameter sweeps the standard diameter list ascending and picks the
// smallest diameter whose available draft meets the minimum requirement.
// The template segment supplies length, rise, fittings and vent type; its
// own diameter is ignored. The result always carries the full option table,
// in the same ascending order as the standard list; Selected is nil when no
// standard diameter qualifies, which callers must check via Found().
func SelectDiameter(cfm float64, template models.DuctSegment, flueTempF, outsideTempF, minAvailableDraftInWC, barometricInHg float64) (models.DiameterSelection, error) {
	if barometricInHg <= 0 {
		barometricInHg = StandardBarometricInHg
	}

	theoretical := TheoreticalDraft(template.HeightFt, flueTempF, outsideTempF, barometricInHg)

	options := make([]models.DiameterOption, 0, len(standardDiameters))
	for _, diameter := range standardDiameters {
		velocity := VelocityFromCFM(cfm, diameter)

		losses, err := TotalPressureLoss(template.WithDiameter(diameter), velocity, flueTempF)
		if err != nil {
			return models.DiameterSelection{}, err
		}

		available := AvailableDraft(theoretical, losses.TotalInWC)
		options = append(options, models.DiameterOption{
			DiameterIn:           diameter,
			VelocityFPS:          velocity,
			TheoreticalDraftInWC: theoretical,
			PressureLossInWC:     losses.TotalInWC,
			AvailableDraftInWC:   available,
			MeetsRequirement:     available >= minAvailableDraftInWC,
			Losses:               losses,
		})
	}

	selection := models.DiameterSelection{Options: options}
	for i := range options {
		if options[i].MeetsRequirement {
			selected := options[i]
			selection.Selected = &selected
			break
		}
	}
	return selection, nil
}
