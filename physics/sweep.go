package physics

import "weldsim/material"

// SweepPoint is one row of a parameter-effect table: the varied parameter
// value and the resulting heat input and pool dimensions.
type SweepPoint struct {
	Value       float64 `json:"value"`
	HeatInput   float64 `json:"heat_input"`
	Width       float64 `json:"width"`
	Penetration float64 `json:"penetration"`
}

// Sweep evaluates the pool geometry across a range of values for one
// process parameter, holding the others at their base values. Each value is
// validated like a direct call, so a sweep cannot smuggle a zero travel
// speed past the boundary checks.
func Sweep(base Parameters, props material.Properties, plateThickness float64, parameter string, values []float64) ([]SweepPoint, error) {
	if err := requirePositive("plate_thickness", plateThickness); err != nil {
		return nil, err
	}
	if err := validateMaterial(props); err != nil {
		return nil, err
	}
	points := make([]SweepPoint, 0, len(values))
	for _, value := range values {
		p, err := base.with(parameter, value)
		if err != nil {
			return nil, err
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		hi := heatInput(p)
		pool := poolGeometry(hi, props, plateThickness)
		points = append(points, SweepPoint{
			Value:       value,
			HeatInput:   hi,
			Width:       pool.Width,
			Penetration: pool.Penetration,
		})
	}
	return points, nil
}

// CurrentSweepRange is the canonical current range for effect tables:
// 100 A to 325 A in 25 A steps.
func CurrentSweepRange() []float64 {
	return stepRange(100, 350, 25)
}

// VoltageSweepRange is the canonical voltage range for effect tables:
// 15 V to 33 V in 2 V steps.
func VoltageSweepRange() []float64 {
	return stepRange(15, 35, 2)
}

// stepRange returns start, start+step, ... below stop.
func stepRange(start, stop, step float64) []float64 {
	var out []float64
	for v := start; v < stop; v += step {
		out = append(out, v)
	}
	return out
}
