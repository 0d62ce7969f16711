package models

// CombustionResult is the flue-gas mass flow derived from fuel input and the
// analyzer CO2 reading.
type CombustionResult struct {
	MassFlowLbmHr  float64  `json:"mass_flow_lbm_hr"`
	MassFlowLbmMin float64  `json:"mass_flow_lbm_min"`
	MFactor        float64  `json:"m_factor"` // lbm of products per 1000 BTU input
	Fuel           FuelType `json:"fuel_type"`
	MBH            float64  `json:"mbh"`
	CO2Percent     float64  `json:"co2_percent"`
}

// FlowResult is a volumetric flow derived from mass flow at a temperature.
type FlowResult struct {
	CFM            float64 `json:"cfm"`
	MassFlowLbmMin float64 `json:"mass_flow_lbm_min"`
	DensityLbmFt3  float64 `json:"density_lbm_ft3"`
	TempF          float64 `json:"temp_f"`
}

// CombustionFlowResult merges the combustion and flow stages for one appliance.
type CombustionFlowResult struct {
	CFM            float64  `json:"cfm"`
	MassFlowLbmHr  float64  `json:"mass_flow_lbm_hr"`
	MassFlowLbmMin float64  `json:"mass_flow_lbm_min"`
	MFactor        float64  `json:"m_factor"`
	MBH            float64  `json:"mbh"`
	CO2Percent     float64  `json:"co2_percent"`
	TempF          float64  `json:"temp_f"`
	Fuel           FuelType `json:"fuel_type"`
	DensityLbmFt3  float64  `json:"density_lbm_ft3"`
}

// FittingLoss is the K contribution of one fitting type in a segment.
type FittingLoss struct {
	Quantity int     `json:"quantity"`
	KEach    float64 `json:"k_each"`
	KTotal   float64 `json:"k_total"`
}

// PressureLossResult is the full loss breakdown for one segment, all pressure
// values in inches w.c.
type PressureLossResult struct {
	FrictionInWC   float64 `json:"friction_in_wc"`
	FittingsInWC   float64 `json:"fittings_in_wc"`
	CalculatedInWC float64 `json:"calculated_in_wc"` // friction + fittings
	AdditionalInWC float64 `json:"additional_in_wc"` // user-supplied fixed loss
	TotalInWC      float64 `json:"total_in_wc"`

	FrictionTerm       float64 `json:"friction_term"` // f·(L/D)
	BaseFrictionFactor float64 `json:"base_friction_factor"`
	SumK               float64 `json:"sum_k"`
	AdditionalK        float64 `json:"additional_k"`

	Fittings map[string]FittingLoss `json:"fitting_breakdown,omitempty"`

	// Fitting types present in the input but in neither the resolved profile
	// nor the generic table. They contribute nothing to the result; callers
	// may surface them as a non-fatal warning.
	MissingFittings []string `json:"missing_fittings,omitempty"`

	DensityLbmFt3 float64 `json:"density_lbm_ft3"`
	VelocityFPM   float64 `json:"velocity_fpm"`
	VentType      string  `json:"vent_type"` // resolved profile name, "Generic" for fallback
}

// SystemAnalysis is the draft balance of one flow through one segment.
type SystemAnalysis struct {
	CFM            float64 `json:"cfm"`
	DiameterIn     float64 `json:"diameter_in"`
	VelocityFPS    float64 `json:"velocity_fps"`
	HeightFt       float64 `json:"height_ft"`
	LengthFt       float64 `json:"length_ft"`
	FlueTempF      float64 `json:"flue_temp_f"`
	OutsideTempF   float64 `json:"outside_temp_f"`
	BarometricInHg float64 `json:"barometric_in_hg"`

	TheoreticalDraftInWC float64            `json:"theoretical_draft_in_wc"`
	PressureLossInWC     float64            `json:"pressure_loss_in_wc"`
	AvailableDraftInWC   float64            `json:"available_draft_in_wc"`
	Losses               PressureLossResult `json:"loss_breakdown"`
}

// DiameterOption is one row of the diameter-selection sweep.
type DiameterOption struct {
	DiameterIn           float64            `json:"diameter_in"`
	VelocityFPS          float64            `json:"velocity_fps"`
	TheoreticalDraftInWC float64            `json:"theoretical_draft_in_wc"`
	PressureLossInWC     float64            `json:"pressure_loss_in_wc"`
	AvailableDraftInWC   float64            `json:"available_draft_in_wc"`
	MeetsRequirement     bool               `json:"meets_requirement"`
	Losses               PressureLossResult `json:"loss_breakdown"`
}

// DiameterSelection is the sweep outcome. Selected is nil when no standard
// diameter meets the draft requirement; Options always carries every
// evaluated diameter in ascending order.
type DiameterSelection struct {
	Selected *DiameterOption  `json:"selected,omitempty"`
	Options  []DiameterOption `json:"all_options"`
}

// Found reports whether a qualifying diameter exists.
func (s DiameterSelection) Found() bool { return s.Selected != nil }

// ApplianceFlow is one appliance's contribution to a combined flow.
type ApplianceFlow struct {
	Index          int      `json:"appliance_id"` // 1-based, input order
	MBH            float64  `json:"mbh"`
	CFM            float64  `json:"cfm"`
	MassFlowLbmMin float64  `json:"mass_flow_lbm_min"`
	TempF          float64  `json:"temp_f"`
	Category       Category `json:"category,omitempty"`
}

// CombinedFlow is the adiabatically mixed design condition of several
// operating appliances.
type CombinedFlow struct {
	TotalCFM            float64         `json:"total_cfm"` // at the mixed temperature
	TotalMassFlowLbmMin float64         `json:"total_mass_flow_lbm_min"`
	MixedTempF          float64         `json:"mixed_temp_f"` // mass-weighted, Rankine-domain
	DensityAtMixedTemp  float64         `json:"density_at_mixed_temp"`
	Appliances          []ApplianceFlow `json:"appliance_results"`
}

// Scenario names an operating subset of the installed appliances.
type Scenario string

const (
	ScenarioAll            Scenario = "all"
	ScenarioAllMinusOne    Scenario = "all_minus_one" // largest unit offline
	ScenarioSingleLargest  Scenario = "single_largest"
	ScenarioSingleSmallest Scenario = "single_smallest"
)

// ScenarioResult is the common-vent analysis for one operating scenario.
type ScenarioResult struct {
	Scenario     Scenario       `json:"scenario"`
	NumOperating int            `json:"num_operating"`
	Combined     CombinedFlow   `json:"combined"`
	CommonVent   SystemAnalysis `json:"common_vent"`
	Operating    []Appliance    `json:"operating_appliances"`
}

// ConnectorAnalysis is one appliance's individual connector run.
type ConnectorAnalysis struct {
	Connector SystemAnalysis `json:"connector"`
	CFM       float64        `json:"cfm"`
	Appliance Appliance      `json:"appliance"`
}

// ApplianceDraft is the total draft balance seen by one appliance: its own
// connector plus the shared manifold under the all-operating scenario.
type ApplianceDraft struct {
	Index                   int               `json:"appliance_id"` // 1-based, input order
	Appliance               Appliance         `json:"appliance"`
	ConnectorDraftInWC      float64           `json:"connector_draft_in_wc"`
	ManifoldDraftInWC       float64           `json:"manifold_draft_in_wc"`
	TotalAvailableDraftInWC float64           `json:"total_available_draft_in_wc"`
	Connector               ConnectorAnalysis `json:"connector_result"`
}

// WorstCaseResult identifies the most draft-deficient appliance.
type WorstCaseResult struct {
	WorstCase ApplianceDraft   `json:"worst_case"`
	All       []ApplianceDraft `json:"all_appliances"`
	Manifold  ScenarioResult   `json:"manifold_result"` // scenario "all", shared by every appliance
}

// MultiApplianceAnalysis bundles every operating scenario with the worst-case
// search. AllMinusOne and SingleSmallest are nil for single-appliance systems;
// LowFireWorstCase is nil unless at least one appliance modulates.
type MultiApplianceAnalysis struct {
	AllOperating     ScenarioResult   `json:"all_operating"`
	AllMinusOne      *ScenarioResult  `json:"all_minus_one,omitempty"`
	SingleLargest    ScenarioResult   `json:"single_largest"`
	SingleSmallest   *ScenarioResult  `json:"single_smallest,omitempty"`
	WorstCase        WorstCaseResult  `json:"worst_case"`
	LowFireWorstCase *WorstCaseResult `json:"low_fire_worst_case,omitempty"`
	NumAppliances    int              `json:"num_appliances"`
}

// VentProfile is a named fitting K-value catalog with its friction factor.
type VentProfile struct {
	Name         string             `json:"name"`
	BaseFriction float64            `json:"base_friction_factor"`
	K            map[string]float64 `json:"k_values"`
}

// CategoryInfo is the reference data for one appliance category: analyzer
// defaults plus the acceptable atmospheric-pressure window at the outlet.
type CategoryInfo struct {
	Name         string  `json:"name"`
	CO2Default   float64 `json:"co2_default"`
	TempDefaultF float64 `json:"temp_default_f"`
	MinPressInWC float64 `json:"min_pressure_in_wc"`
	MaxPressInWC float64 `json:"max_pressure_in_wc"`
	Description  string  `json:"description"`
}

// ComplianceResult reports a category pressure-limit check. Compliant is nil
// when the appliance has no known category (indeterminate).
type ComplianceResult struct {
	Compliant          *bool   `json:"compliant"`
	AvailableDraftInWC float64 `json:"available_draft_in_wc"`
	MinInWC            float64 `json:"min_in_wc,omitempty"`
	MaxInWC            float64 `json:"max_in_wc,omitempty"`
	CategoryName       string  `json:"category,omitempty"`
	Issue              string  `json:"issue,omitempty"` // too_negative | too_positive
	Message            string  `json:"message"`
	Recommendation     string  `json:"recommendation,omitempty"`
}

// InducerCheck reports whether a powered draft inducer can make up a deficit.
type InducerCheck struct {
	NeedsInducer       bool    `json:"needs_inducer"`
	AvailableDraftInWC float64 `json:"available_draft_in_wc"`
	DeficitInWC        float64 `json:"deficit_in_wc,omitempty"`
	CanUseInducer      bool    `json:"can_use_inducer"`
	Message            string  `json:"message"`
	Recommendation     string  `json:"recommendation,omitempty"`
}

// DraftControlCheck reports whether over-draft control is needed.
type DraftControlCheck struct {
	NeedsControl       bool    `json:"needs_control"`
	AvailableDraftInWC float64 `json:"available_draft_in_wc"`
	ExcessDraftInWC    float64 `json:"excess_draft_in_wc,omitempty"`
	Message            string  `json:"message"`
	Recommendation     string  `json:"recommendation,omitempty"`
}
