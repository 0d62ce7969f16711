package models

// Fitting type keys recognized by the vent-specific and generic K tables.
const (
	FittingEntrance       = "entrance"
	Fitting15Elbow        = "15_elbow"
	Fitting30Elbow        = "30_elbow"
	Fitting45Elbow        = "45_elbow"
	Fitting90Elbow        = "90_elbow"
	FittingStraightTee    = "straight_tee"
	Fitting90TeeBranch    = "90_tee_branch"
	FittingLateralTee     = "lateral_tee"
	FittingExit           = "exit"
	FittingTerminationCap = "termination_cap"
	FittingTeeCap         = "tee_cap"
)

// Vent system types with dedicated K-value profiles. Any other value (or
// empty) resolves to the generic profile.
const (
	VentTypeB       = "UL441 Type B Vent"
	VentSpecialGas  = "UL1738 Special Gas Vent"
	VentPressureChm = "UL103 Pressure Chimney"
)

// DuctSegment describes one run of vent or chimney: a connector between an
// appliance and the manifold, or the common vent itself.
type DuctSegment struct {
	LengthFt   float64        `json:"length_ft"`   // total developed path length, ft
	DiameterIn float64        `json:"diameter_in"` // inside diameter, inches
	HeightFt   float64        `json:"height_ft"`   // vertical rise portion, ft (≤ length)
	Fittings   map[string]int `json:"fittings"`    // fitting type → count

	VentType string `json:"vent_type,omitempty"` // K-value profile name, empty = generic

	// Optional user-supplied extras, added on top of the table losses.
	AdditionalK        float64 `json:"additional_k,omitempty"`         // dimensionless
	AdditionalLossInWC float64 `json:"additional_loss_in_wc,omitempty"` // inches w.c.
}

// WithDiameter returns a copy of the segment with the diameter replaced,
// used by the diameter-selection sweep.
func (s DuctSegment) WithDiameter(diameterIn float64) DuctSegment {
	out := s
	out.DiameterIn = diameterIn
	return out
}
