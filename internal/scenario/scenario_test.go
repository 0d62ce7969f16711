package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chimney_draft/internal/models"
)

func writeProject(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validProject = `
project:
  name: "Boiler Room B"
  outside_temp_f: 10
  elevation_ft: 5280

min_available_draft_in_wc: -0.02

appliances:
  - mbh: 400
    co2_percent: 9.0
    flue_temp_f: 300
    fuel_type: natural_gas
    outlet_diameter_in: 6
    category: cat_i_fan
    turndown_ratio: 4
    connector:
      length_ft: 8
      diameter_in: 6
      fittings:
        90_elbow: 2
  - mbh: 250
    co2_percent: 10.5
    flue_temp_f: 320
    fuel_type: propane
    connector:
      length_ft: 5
      diameter_in: 5

manifold:
  length_ft: 30
  diameter_in: 10
  height_ft: 25
  vent_type: "UL441 Type B Vent"
  fittings:
    termination_cap: 1
    exit: 1
  additional_loss_in_wc: 0.01
`

func TestLoad(t *testing.T) {
	p, err := Load(writeProject(t, validProject))
	require.NoError(t, err)

	assert.Equal(t, "Boiler Room B", p.Name)
	assert.Equal(t, 10.0, p.OutsideTempF)
	assert.Equal(t, 5280.0, p.ElevationFt)
	assert.Equal(t, -0.02, p.MinAvailableDraftInWC)

	require.Len(t, p.Appliances, 2)
	require.Len(t, p.Connectors, 2)

	first := p.Appliances[0]
	assert.Equal(t, 400.0, first.MBH)
	assert.Equal(t, models.FuelNaturalGas, first.Fuel)
	assert.Equal(t, models.CategoryIFan, first.Category)
	assert.Equal(t, 4.0, first.TurndownRatio)
	assert.Equal(t, map[string]int{models.Fitting90Elbow: 2}, p.Connectors[0].Fittings)

	// The "propane" alias normalizes, and a missing category defaults.
	second := p.Appliances[1]
	assert.Equal(t, models.FuelLPGas, second.Fuel)
	assert.Equal(t, models.CategoryCustom, second.Category)
	assert.Equal(t, 5.0, p.Connectors[1].DiameterIn)

	assert.Equal(t, 10.0, p.Manifold.DiameterIn)
	assert.Equal(t, models.VentTypeB, p.Manifold.VentType)
	assert.Equal(t, 0.01, p.Manifold.AdditionalLossInWC)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_NoAppliances(t *testing.T) {
	_, err := Load(writeProject(t, `
project:
  name: empty
manifold:
  diameter_in: 10
`))
	assert.ErrorIs(t, err, ErrNoAppliances)
}

func TestLoad_NoManifold(t *testing.T) {
	_, err := Load(writeProject(t, `
appliances:
  - mbh: 100
    co2_percent: 9
    flue_temp_f: 300
    fuel_type: gas
    connector:
      diameter_in: 5
`))
	assert.ErrorIs(t, err, ErrNoManifold)
}

func TestLoad_BadFuel(t *testing.T) {
	_, err := Load(writeProject(t, `
appliances:
  - mbh: 100
    co2_percent: 9
    flue_temp_f: 300
    fuel_type: coal
    connector:
      diameter_in: 5
manifold:
  diameter_in: 10
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownFuelType)
	assert.Contains(t, err.Error(), "appliance 1")
}

func TestLoad_BadNumbers(t *testing.T) {
	base := `
appliances:
  - mbh: %MBH%
    co2_percent: %CO2%
    flue_temp_f: 300
    fuel_type: gas
    connector:
      diameter_in: %DIA%
manifold:
  diameter_in: 10
`
	cases := []struct {
		name          string
		mbh, co2, dia string
		wantInMessage string
	}{
		{"zero mbh", "0", "9", "5", "fuel input"},
		{"zero co2", "100", "0", "5", "co2 percent"},
		{"zero connector diameter", "100", "9", "0", "connector diameter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			yaml := strings.NewReplacer(
				"%MBH%", tc.mbh,
				"%CO2%", tc.co2,
				"%DIA%", tc.dia,
			).Replace(base)
			_, err := Load(writeProject(t, yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantInMessage)
		})
	}
}
