package calc

import (
	"fmt"

	"chimney_draft/internal/models"
)

// Powered-draft equipment thresholds, inches w.c.
const (
	// DefaultInducerCapacityInWC is the largest draft deficit a single
	// inducer is assumed to make up.
	DefaultInducerCapacityInWC = 0.75

	// overDraftThresholdInWC is the available draft below which (more
	// negative than) an over-draft control device is recommended.
	overDraftThresholdInWC = -0.10
)

// CheckAppliancePressureLimits verifies the available draft against the
// appliance's category pressure window. Category limits are written as
// atmospheric pressure at the outlet, which is the negation of available
// draft; the bounds here are already expressed in the draft sign convention,
// so the check is min ≤ draft ≤ max. Unknown or custom categories yield an
// indeterminate result (Compliant == nil) rather than an error.
func CheckAppliancePressureLimits(app models.Appliance, availableDraftInWC float64) models.ComplianceResult {
	info, ok := CategoryFor(app.Category)
	if !ok {
		return models.ComplianceResult{
			Compliant:          nil,
			AvailableDraftInWC: availableDraftInWC,
			Message:            "no category specified or unknown category",
		}
	}

	if availableDraftInWC >= info.MinPressInWC && availableDraftInWC <= info.MaxPressInWC {
		ok := true
		return models.ComplianceResult{
			Compliant:          &ok,
			AvailableDraftInWC: availableDraftInWC,
			MinInWC:            info.MinPressInWC,
			MaxInWC:            info.MaxPressInWC,
			CategoryName:       info.Name,
			Message:            fmt.Sprintf("within %s limits", info.Name),
		}
	}

	issue := "too_positive"
	recommendation := "consider draft inducer or larger diameter"
	if availableDraftInWC < info.MinPressInWC {
		issue = "too_negative"
		recommendation = "consider draft control device"
	}

	notOK := false
	return models.ComplianceResult{
		Compliant:          &notOK,
		AvailableDraftInWC: availableDraftInWC,
		MinInWC:            info.MinPressInWC,
		MaxInWC:            info.MaxPressInWC,
		CategoryName:       info.Name,
		Issue:              issue,
		Message:            fmt.Sprintf("outside %s limits", info.Name),
		Recommendation:     recommendation,
	}
}

// CheckDraftInducer reports whether a powered inducer can make up a draft
// deficit. A non-positive maxCapacityInWC selects the default capacity.
func CheckDraftInducer(availableDraftInWC, maxCapacityInWC float64) models.InducerCheck {
	if maxCapacityInWC <= 0 {
		maxCapacityInWC = DefaultInducerCapacityInWC
	}

	if availableDraftInWC >= 0 {
		return models.InducerCheck{
			NeedsInducer:       false,
			AvailableDraftInWC: availableDraftInWC,
			Message:            "system has positive draft, no inducer needed",
		}
	}

	deficit := -availableDraftInWC
	if deficit <= maxCapacityInWC {
		return models.InducerCheck{
			NeedsInducer:       true,
			AvailableDraftInWC: availableDraftInWC,
			DeficitInWC:        deficit,
			CanUseInducer:      true,
			Message:            fmt.Sprintf("draft inducer can compensate for %.3f in w.c. deficit", deficit),
			Recommendation:     fmt.Sprintf("draft inducer rated for %.3f in w.c. minimum", deficit),
		}
	}

	return models.InducerCheck{
		NeedsInducer:       true,
		AvailableDraftInWC: availableDraftInWC,
		DeficitInWC:        deficit,
		CanUseInducer:      false,
		Message: fmt.Sprintf("deficit %.3f in w.c. exceeds maximum inducer capacity %.2f in w.c.",
			deficit, maxCapacityInWC),
		Recommendation: "increase diameter, reduce length, or minimize fittings",
	}
}

// CheckDraftControl recommends a draft control device when the available
// draft falls below the acceptable band.
func CheckDraftControl(availableDraftInWC float64) models.DraftControlCheck {
	if availableDraftInWC >= overDraftThresholdInWC {
		return models.DraftControlCheck{
			NeedsControl:       false,
			AvailableDraftInWC: availableDraftInWC,
			Message:            "draft within acceptable range",
		}
	}

	excess := -availableDraftInWC
	return models.DraftControlCheck{
		NeedsControl:       true,
		AvailableDraftInWC: availableDraftInWC,
		ExcessDraftInWC:    excess,
		Message:            fmt.Sprintf("excessive draft: %.3f in w.c.", excess),
		Recommendation:     "barometric damper or draft regulator",
	}
}
