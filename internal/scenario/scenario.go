// Package scenario loads a venting project description from a YAML file and
// maps it onto the engine's value records.
package scenario

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"chimney_draft/internal/models"
)

var (
	// ErrNoAppliances means the project file lists no appliances.
	ErrNoAppliances = errors.New("project must define at least one appliance")

	// ErrNoManifold means the project file lacks a manifold section.
	ErrNoManifold = errors.New("project must define a manifold segment")
)

// Project is a fully validated venting design job: environment, appliances
// with their connectors, and the common vent.
type Project struct {
	Name         string
	OutsideTempF float64
	ElevationFt  float64

	Appliances []models.Appliance
	Connectors []models.DuctSegment // index-aligned with Appliances
	Manifold   models.DuctSegment

	MinAvailableDraftInWC float64
}

// applianceConfig mirrors one appliances[] entry in the YAML file.
type applianceConfig struct {
	MBH              float64       `mapstructure:"mbh"`
	CO2Percent       float64       `mapstructure:"co2_percent"`
	FlueTempF        float64       `mapstructure:"flue_temp_f"`
	FuelType         string        `mapstructure:"fuel_type"`
	OutletDiameterIn float64       `mapstructure:"outlet_diameter_in"`
	Category         string        `mapstructure:"category"`
	TurndownRatio    float64       `mapstructure:"turndown_ratio"`
	Connector        segmentConfig `mapstructure:"connector"`
}

// segmentConfig mirrors a duct segment block in the YAML file.
type segmentConfig struct {
	LengthFt           float64        `mapstructure:"length_ft"`
	DiameterIn         float64        `mapstructure:"diameter_in"`
	HeightFt           float64        `mapstructure:"height_ft"`
	Fittings           map[string]int `mapstructure:"fittings"`
	VentType           string         `mapstructure:"vent_type"`
	AdditionalK        float64        `mapstructure:"additional_k"`
	AdditionalLossInWC float64        `mapstructure:"additional_loss_in_wc"`
}

type projectConfig struct {
	Project struct {
		Name         string  `mapstructure:"name"`
		OutsideTempF float64 `mapstructure:"outside_temp_f"`
		ElevationFt  float64 `mapstructure:"elevation_ft"`
	} `mapstructure:"project"`
	Appliances            []applianceConfig `mapstructure:"appliances"`
	Manifold              segmentConfig     `mapstructure:"manifold"`
	MinAvailableDraftInWC float64           `mapstructure:"min_available_draft_in_wc"`
}

// Load reads and validates a project file.
func Load(path string) (Project, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Project{}, fmt.Errorf("reading project file: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Project, error) {
	var cfg projectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return Project{}, fmt.Errorf("decoding project file: %w", err)
	}

	if len(cfg.Appliances) == 0 {
		return Project{}, ErrNoAppliances
	}
	if cfg.Manifold.DiameterIn <= 0 {
		return Project{}, ErrNoManifold
	}

	p := Project{
		Name:                  cfg.Project.Name,
		OutsideTempF:          cfg.Project.OutsideTempF,
		ElevationFt:           cfg.Project.ElevationFt,
		Manifold:              toSegment(cfg.Manifold),
		MinAvailableDraftInWC: cfg.MinAvailableDraftInWC,
	}

	for i, ac := range cfg.Appliances {
		fuel, err := models.ParseFuelType(ac.FuelType)
		if err != nil {
			return Project{}, fmt.Errorf("appliance %d: %w", i+1, err)
		}
		if ac.MBH <= 0 {
			return Project{}, fmt.Errorf("appliance %d: fuel input must be greater than zero, got %v", i+1, ac.MBH)
		}
		if ac.CO2Percent <= 0 {
			return Project{}, fmt.Errorf("appliance %d: co2 percent must be greater than zero, got %v", i+1, ac.CO2Percent)
		}
		if ac.Connector.DiameterIn <= 0 {
			return Project{}, fmt.Errorf("appliance %d: connector diameter must be greater than zero", i+1)
		}

		category := models.Category(ac.Category)
		if category == "" {
			category = models.CategoryCustom
		}

		p.Appliances = append(p.Appliances, models.Appliance{
			MBH:              ac.MBH,
			CO2Percent:       ac.CO2Percent,
			FlueTempF:        ac.FlueTempF,
			Fuel:             fuel,
			OutletDiameterIn: ac.OutletDiameterIn,
			Category:         category,
			TurndownRatio:    ac.TurndownRatio,
		})
		p.Connectors = append(p.Connectors, toSegment(ac.Connector))
	}

	return p, nil
}

func toSegment(sc segmentConfig) models.DuctSegment {
	return models.DuctSegment{
		LengthFt:           sc.LengthFt,
		DiameterIn:         sc.DiameterIn,
		HeightFt:           sc.HeightFt,
		Fittings:           sc.Fittings,
		VentType:           sc.VentType,
		AdditionalK:        sc.AdditionalK,
		AdditionalLossInWC: sc.AdditionalLossInWC,
	}
}
