package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheoreticalDraft_WorkedExample(t *testing.T) {
	// 20 ft stack, 400°F flue, 70°F outside, standard pressure.
	draft := TheoreticalDraft(20, 400, 70, StandardBarometricInHg)
	assert.InDelta(t, 0.11076, draft, 0.0001)
}

func TestTheoreticalDraft_SignConvention(t *testing.T) {
	// Hot flue pulls: positive draft.
	assert.Positive(t, TheoreticalDraft(20, 400, 70, 0))

	// Equal temperatures: no buoyancy.
	assert.Zero(t, TheoreticalDraft(20, 70, 70, 0))

	// Flue colder than outside: downdraft, negative.
	assert.Negative(t, TheoreticalDraft(20, 40, 70, 0))

	// Zero height: no stack.
	assert.Zero(t, TheoreticalDraft(0, 400, 70, 0))
}

func TestTheoreticalDraft_DefaultBarometric(t *testing.T) {
	assert.Equal(t,
		TheoreticalDraft(20, 400, 70, StandardBarometricInHg),
		TheoreticalDraft(20, 400, 70, 0))

	// Lower barometric pressure scales the draft down linearly.
	atAltitude := TheoreticalDraft(20, 400, 70, 24.63)
	assert.InDelta(t, TheoreticalDraft(20, 400, 70, 0)*24.63/StandardBarometricInHg, atAltitude, 1e-12)
}

func TestAvailableDraft_Identity(t *testing.T) {
	cases := [][2]float64{
		{0.11, 0.05},
		{0.11, 1.38},
		{-0.02, 0.01},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c[0]-c[1], AvailableDraft(c[0], c[1]))
	}
}
