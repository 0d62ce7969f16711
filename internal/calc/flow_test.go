package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCFMFromMassFlow(t *testing.T) {
	result := CFMFromMassFlow(1.5864, 400)

	assert.InDelta(t, 34.38, result.CFM, 0.05)
	// CFM × density recovers the mass flow.
	assert.InDelta(t, 1.5864, result.CFM*result.DensityLbmFt3, 1e-9)
}

func TestVelocityFromCFM(t *testing.T) {
	// 500 CFM through a 6 in duct: area = π·0.5²/4 ft², 2546 fpm, 42.4 ft/s.
	assert.InDelta(t, 42.44, VelocityFromCFM(500, 6), 0.01)
}

func TestCFMVelocityRoundTrip(t *testing.T) {
	for _, d := range []float64{3, 6, 10, 24, 36} {
		for _, v := range []float64{1, 12.5, 42.44, 90} {
			cfm := CFMFromVelocity(v, d)
			assert.InDelta(t, v, VelocityFromCFM(cfm, d), 1e-9,
				"round trip at v=%v d=%v", v, d)
		}
	}
}
