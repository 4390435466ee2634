package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() Parameters {
	return Parameters{Current: 200, Voltage: 25, TravelSpeed: 5, ArcEfficiency: 0.7}
}

func TestHeatInput_CanonicalCase(t *testing.T) {
	hi, err := HeatInput(baseParams())
	require.NoError(t, err)
	// 0.7 * 25 * 200 / 5
	assert.Equal(t, 700.0, hi)
}

func TestHeatInput_FormulaEquivalence(t *testing.T) {
	// The ×60 / ÷60 pair must reduce to η·V·I / v in mm/s units.
	cases := []Parameters{
		{Current: 120, Voltage: 18, TravelSpeed: 3.5, ArcEfficiency: 0.65},
		{Current: 350, Voltage: 32, TravelSpeed: 12, ArcEfficiency: 1.0},
		{Current: 50, Voltage: 10, TravelSpeed: 0.25, ArcEfficiency: 0.5},
	}
	for _, p := range cases {
		hi, err := HeatInput(p)
		require.NoError(t, err)
		assert.InDelta(t, p.ArcEfficiency*p.Voltage*p.Current/p.TravelSpeed, hi, 1e-9)
	}
}

func TestHeatInput_Monotonicity(t *testing.T) {
	base := baseParams()
	hi0, err := HeatInput(base)
	require.NoError(t, err)

	up := base
	up.Current += 50
	hi1, err := HeatInput(up)
	require.NoError(t, err)
	assert.Greater(t, hi1, hi0, "more current must mean more heat input")

	faster := base
	faster.TravelSpeed += 5
	hi2, err := HeatInput(faster)
	require.NoError(t, err)
	assert.Less(t, hi2, hi0, "faster travel must mean less heat input")
}

func TestHeatInput_InvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero current", func(p *Parameters) { p.Current = 0 }},
		{"negative voltage", func(p *Parameters) { p.Voltage = -1 }},
		{"zero travel speed", func(p *Parameters) { p.TravelSpeed = 0 }},
		{"zero efficiency", func(p *Parameters) { p.ArcEfficiency = 0 }},
		{"efficiency above one", func(p *Parameters) { p.ArcEfficiency = 1.2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)
			_, err := HeatInput(p)
			require.Error(t, err)
			var ipe *InvalidParameterError
			assert.ErrorAs(t, err, &ipe)
		})
	}
}

func TestHeatInput_Idempotent(t *testing.T) {
	p := baseParams()
	a, err := HeatInput(p)
	require.NoError(t, err)
	b, err := HeatInput(p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
