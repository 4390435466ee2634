package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unclampedParams keeps the steel pool width below every plausibility clamp
// (heat input 2 J/mm on a 10 mm plate), so the perturbations are visible in
// the outputs.
func unclampedParams() Parameters {
	return Parameters{Current: 200, Voltage: 25, TravelSpeed: 1750, ArcEfficiency: 0.7}
}

func TestSensitivity_FixedParameterOrder(t *testing.T) {
	results, err := Sensitivity(baseParams(), steel(), 10)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "current", results[0].Parameter)
	assert.Equal(t, "voltage", results[1].Parameter)
	assert.Equal(t, "travel_speed", results[2].Parameter)
	assert.Equal(t, "arc_efficiency", results[3].Parameter)

	assert.Equal(t, 200.0, results[0].BaseValue)
	assert.Equal(t, 25.0, results[1].BaseValue)
	assert.Equal(t, 5.0, results[2].BaseValue)
	assert.Equal(t, 0.7, results[3].BaseValue)
}

func TestSensitivity_SignsInUnclampedRegime(t *testing.T) {
	results, err := Sensitivity(unclampedParams(), steel(), 10)
	require.NoError(t, err)

	byName := map[string]SensitivityResult{}
	for _, r := range results {
		byName[r.Parameter] = r
	}

	// Width scales linearly with heat input here, so the elasticity of the
	// multiplicative parameters is 1 and of travel speed is ≈ -1/(1-δ²).
	for _, name := range []string{"current", "voltage", "arc_efficiency"} {
		assert.InDelta(t, 1.0, byName[name].WidthSensitivity, 1e-9, name)
		assert.InDelta(t, 1.0, byName[name].PenetrationSensitivity, 1e-9, name)
	}
	assert.Negative(t, byName["travel_speed"].WidthSensitivity)
	assert.InDelta(t, -1.0/(1-0.01), byName["travel_speed"].WidthSensitivity, 1e-9)
}

func TestSensitivity_ClampedBaseCaseIsFlat(t *testing.T) {
	// At the canonical dashboard base case the width clamp is active on
	// both perturbed branches and the thin-plate depth cap pins the
	// penetration, so every sensitivity collapses to exactly zero.
	results, err := Sensitivity(baseParams(), steel(), 10)
	require.NoError(t, err)
	for _, r := range results {
		assert.Zero(t, r.WidthSensitivity, r.Parameter)
		assert.Zero(t, r.PenetrationSensitivity, r.Parameter)
	}
}

func TestSensitivity_InvalidBase(t *testing.T) {
	bad := baseParams()
	bad.TravelSpeed = 0
	_, err := Sensitivity(bad, steel(), 10)
	require.Error(t, err)

	_, err = Sensitivity(baseParams(), steel(), -1)
	require.Error(t, err)
}

func TestSensitivity_Idempotent(t *testing.T) {
	a, err := Sensitivity(unclampedParams(), steel(), 10)
	require.NoError(t, err)
	b, err := Sensitivity(unclampedParams(), steel(), 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
