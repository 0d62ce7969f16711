// Package calc is the combustion and draft calculation engine. Every entry
// point is a pure function of its arguments and the constant tables below;
// there is no internal state, so concurrent use needs no synchronization.
package calc

import "chimney_draft/internal/models"

// Physical constants (US customary units).
const (
	// RAir is the specific gas constant for air, ft·lbf/(lbm·°R).
	RAir = 53.35

	// AtmPressureLbfFt2 is standard sea-level atmospheric pressure, lbf/ft².
	AtmPressureLbfFt2 = 2116.2

	// StandardBarometricInHg is sea-level barometric pressure, inches Hg.
	StandardBarometricInHg = 29.92

	// rankineOffset converts °F to °R.
	rankineOffset = 459.67

	// velocityHeadFPM is the velocity-head reference in the ASHRAE loss
	// equation: one velocity head of air at standard density equals
	// (V/1096.2)² inches w.c. with V in ft/min.
	velocityHeadFPM = 1096.2

	// draftCoefficient is the ASHRAE theoretical-draft constant for the
	// formula dT = 0.2554·B·H·(1/To − 1/Tf) with B in inHg, H in ft.
	draftCoefficient = 0.2554
)

// standardDiameters are the listed vent/chimney inside diameters, inches,
// ascending. The diameter sweep walks this slice in order.
var standardDiameters = []float64{3, 4, 5, 6, 7, 8, 10, 12, 14, 16, 18, 20, 24, 30, 36}

// genericBaseFriction is the friction factor used when no vent type matches.
const genericBaseFriction = 0.3

// genericFittings are conservative K values used when no vent-type profile
// applies, and as the per-fitting fallback for profiles missing an entry.
var genericFittings = map[string]float64{
	models.FittingEntrance:       0.5,
	models.Fitting15Elbow:        0.15,
	models.Fitting30Elbow:        0.25,
	models.Fitting45Elbow:        0.4,
	models.Fitting90Elbow:        0.9,
	models.FittingStraightTee:    0.6,
	models.Fitting90TeeBranch:    1.3,
	models.FittingLateralTee:     0.8,
	models.FittingTerminationCap: 1.0,
	models.FittingTeeCap:         0.6,
	models.FittingExit:           1.0,
}

// ventProfiles are the listed vent systems with their K values and friction
// factors.
var ventProfiles = map[string]models.VentProfile{
	models.VentTypeB: {
		Name:         models.VentTypeB,
		BaseFriction: 0.40,
		K: map[string]float64{
			models.FittingEntrance:       0.5,
			models.Fitting15Elbow:        0.12,
			models.Fitting30Elbow:        0.12,
			models.Fitting45Elbow:        0.25,
			models.Fitting90Elbow:        0.75,
			models.FittingStraightTee:    1.25,
			models.Fitting90TeeBranch:    1.25,
			models.FittingLateralTee:     0.40,
			models.FittingExit:           1.0,
			models.FittingTerminationCap: 0.50,
			models.FittingTeeCap:         0.3,
		},
	},
	models.VentSpecialGas: {
		Name:         models.VentSpecialGas,
		BaseFriction: 0.27,
		K: map[string]float64{
			models.FittingEntrance:       0.5,
			models.Fitting15Elbow:        0.12,
			models.Fitting30Elbow:        0.12,
			models.Fitting45Elbow:        0.15,
			models.Fitting90Elbow:        0.30,
			models.FittingStraightTee:    1.25,
			models.Fitting90TeeBranch:    1.25,
			models.FittingLateralTee:     0.55,
			models.FittingExit:           1.0,
			models.FittingTerminationCap: 0.50,
			models.FittingTeeCap:         0.35,
		},
	},
	models.VentPressureChm: {
		Name:         models.VentPressureChm,
		BaseFriction: 0.30,
		K: map[string]float64{
			models.FittingEntrance:       0.5,
			models.Fitting15Elbow:        0.12,
			models.Fitting30Elbow:        0.12,
			models.Fitting45Elbow:        0.15,
			models.Fitting90Elbow:        0.30,
			models.FittingStraightTee:    1.25,
			models.Fitting90TeeBranch:    1.25,
			models.FittingLateralTee:     0.40,
			models.FittingExit:           1.0,
			models.FittingTerminationCap: 0.50,
			models.FittingTeeCap:         0.25,
		},
	},
}

// GenericVentName labels the fallback profile in loss breakdowns.
const GenericVentName = "Generic"

// categories holds the ANSI Z21.47 / CSA 2.3 reference data: analyzer
// defaults and the acceptable atmospheric-pressure window per category.
var categories = map[models.Category]models.CategoryInfo{
	models.CategoryIFan: {
		Name:         "Category I - Fan Assisted",
		CO2Default:   6.8,
		TempDefaultF: 320,
		MinPressInWC: -0.08,
		MaxPressInWC: -0.03,
		Description:  "Fan-assisted with non-positive vent pressure",
	},
	models.CategoryII: {
		Name:         "Category II - Non-Condensing",
		CO2Default:   8.5,
		TempDefaultF: 285,
		MinPressInWC: -0.08,
		MaxPressInWC: -0.03,
		Description:  "Non-condensing with non-positive vent pressure",
	},
	models.CategoryIII: {
		Name:         "Category III - Non-Condensing",
		CO2Default:   8.0,
		TempDefaultF: 320,
		MinPressInWC: 0.00,
		MaxPressInWC: 0.08,
		Description:  "Non-condensing with positive vent pressure",
	},
	models.CategoryIV: {
		Name:         "Category IV - Condensing",
		CO2Default:   8.5,
		TempDefaultF: 275,
		MinPressInWC: -0.05,
		MaxPressInWC: 0.25,
		Description:  "Condensing with positive vent pressure",
	},
}

// StandardDiameters returns a copy of the listed diameter series, inches.
func StandardDiameters() []float64 {
	out := make([]float64, len(standardDiameters))
	copy(out, standardDiameters)
	return out
}

// VentProfileFor resolves a vent type name to its K-value profile. Unknown
// or empty names resolve to the generic profile; the bool reports whether a
// dedicated profile matched.
func VentProfileFor(ventType string) (models.VentProfile, bool) {
	if p, ok := ventProfiles[ventType]; ok {
		return cloneProfile(p), true
	}
	return cloneProfile(models.VentProfile{
		Name:         GenericVentName,
		BaseFriction: genericBaseFriction,
		K:            genericFittings,
	}), false
}

// CategoryFor returns the reference data for a category tag.
func CategoryFor(cat models.Category) (models.CategoryInfo, bool) {
	info, ok := categories[cat]
	return info, ok
}

// Categories returns the full category reference table for display.
func Categories() map[models.Category]models.CategoryInfo {
	out := make(map[models.Category]models.CategoryInfo, len(categories))
	for k, v := range categories {
		out[k] = v
	}
	return out
}

func cloneProfile(p models.VentProfile) models.VentProfile {
	k := make(map[string]float64, len(p.K))
	for name, v := range p.K {
		k[name] = v
	}
	p.K = k
	return p
}
