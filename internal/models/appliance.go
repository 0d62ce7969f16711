package models

import (
	"errors"
	"fmt"
	"strings"
)

// FuelType selects the empirical combustion formula.
type FuelType string

const (
	FuelNaturalGas FuelType = "natural_gas"
	FuelLPGas      FuelType = "lp_gas"
	FuelOil        FuelType = "oil"
)

// ErrUnknownFuelType is returned for fuel strings outside the recognized set.
var ErrUnknownFuelType = errors.New("unknown fuel type: use natural_gas, lp_gas, or oil")

// ParseFuelType normalizes a user-supplied fuel string, accepting the common
// aliases the field tools use ("ng", "propane", "#2_oil", ...).
func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "natural_gas", "gas", "ng":
		return FuelNaturalGas, nil
	case "lp_gas", "lp", "propane", "lpg":
		return FuelLPGas, nil
	case "oil", "fuel_oil", "#2_oil":
		return FuelOil, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFuelType, s)
	}
}

// Category is the ANSI Z21.47 / CSA 2.3 appliance category tag.
// CategoryCustom (or empty) means no category-specific pressure limits apply.
type Category string

const (
	CategoryIFan   Category = "cat_i_fan"
	CategoryII     Category = "cat_ii"
	CategoryIII    Category = "cat_iii"
	CategoryIV     Category = "cat_iv"
	CategoryCustom Category = "custom"
)

// Appliance is one gas- or oil-fired unit on the venting system.
type Appliance struct {
	MBH              float64  `json:"mbh"`                          // fuel input, thousands of BTU/hr
	CO2Percent       float64  `json:"co2_percent"`                  // combustion analyzer reading, %
	FlueTempF        float64  `json:"flue_temp_f"`                  // flue gas temperature, °F
	Fuel             FuelType `json:"fuel_type"`                    // natural_gas | lp_gas | oil
	OutletDiameterIn float64  `json:"outlet_diameter_in,omitempty"` // flue outlet diameter, inches
	Category         Category `json:"category,omitempty"`           // cat_i_fan .. cat_iv, or custom
	TurndownRatio    float64  `json:"turndown_ratio,omitempty"`     // ≥1; 1 (or 0) = on/off appliance
}

// Modulating reports whether the appliance has a low-fire setting distinct
// from high fire.
func (a Appliance) Modulating() bool {
	return a.TurndownRatio > 1
}

// LowFire returns the appliance at low-fire input (high fire divided by the
// turndown ratio). Non-modulating appliances are returned unchanged.
func (a Appliance) LowFire() Appliance {
	if !a.Modulating() {
		return a
	}
	low := a
	low.MBH = a.MBH / a.TurndownRatio
	return low
}
