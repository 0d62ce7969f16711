package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chimney_draft/internal/models"
)

func exampleTemplate() models.DuctSegment {
	return models.DuctSegment{
		LengthFt: 25,
		HeightFt: 20,
		Fittings: exampleFittings(),
	}
}

func TestSelectDiameter_SmallestQualifying(t *testing.T) {
	// At 500 CFM / 400°F / 70°F with a 0.02 in w.c. requirement, 10 in
	// still runs a deficit and 12 in is the first qualifying size.
	selection, err := SelectDiameter(500, exampleTemplate(), 400, 70, 0.02, 0)
	require.NoError(t, err)

	require.True(t, selection.Found())
	assert.Equal(t, 12.0, selection.Selected.DiameterIn)
	assert.GreaterOrEqual(t, selection.Selected.AvailableDraftInWC, 0.02)
	assert.InDelta(t, 0.0341, selection.Selected.AvailableDraftInWC, 0.001)
}

func TestSelectDiameter_OptionTableAscendingAndComplete(t *testing.T) {
	selection, err := SelectDiameter(500, exampleTemplate(), 400, 70, 0.02, 0)
	require.NoError(t, err)

	diameters := StandardDiameters()
	require.Len(t, selection.Options, len(diameters))
	for i, opt := range selection.Options {
		assert.Equal(t, diameters[i], opt.DiameterIn)
	}

	// Velocity strictly decreases with diameter at fixed CFM.
	for i := 1; i < len(selection.Options); i++ {
		assert.Less(t, selection.Options[i].VelocityFPS, selection.Options[i-1].VelocityFPS)
	}

	// Every diameter below the selected one fails the requirement.
	for _, opt := range selection.Options {
		if opt.DiameterIn < selection.Selected.DiameterIn {
			assert.False(t, opt.MeetsRequirement, "diameter %v should not qualify", opt.DiameterIn)
		}
	}
}

func TestSelectDiameter_NoSolution(t *testing.T) {
	// An impossible requirement exhausts the list without a match; the
	// caller still gets the full option table.
	selection, err := SelectDiameter(500, exampleTemplate(), 400, 70, 10.0, 0)
	require.NoError(t, err)

	assert.False(t, selection.Found())
	assert.Nil(t, selection.Selected)
	assert.Len(t, selection.Options, len(StandardDiameters()))
}

func TestSelectDiameter_TemplateDiameterIgnored(t *testing.T) {
	withDiameter := exampleTemplate()
	withDiameter.DiameterIn = 99

	a, err := SelectDiameter(500, exampleTemplate(), 400, 70, 0.02, 0)
	require.NoError(t, err)
	b, err := SelectDiameter(500, withDiameter, 400, 70, 0.02, 0)
	require.NoError(t, err)

	assert.Equal(t, a.Selected.DiameterIn, b.Selected.DiameterIn)
}
