package physics

import "weldsim/material"

// Relative perturbation applied to each parameter for the central
// difference.
const sensitivityDelta = 0.10

// SensitivityResult holds the normalized (log-log elasticity) sensitivities
// of the pool width and penetration to one process parameter: the percent
// change in output per percent change in input.
type SensitivityResult struct {
	Parameter              string  `json:"parameter"`
	WidthSensitivity       float64 `json:"width_sensitivity"`
	PenetrationSensitivity float64 `json:"penetration_sensitivity"`
	BaseValue              float64 `json:"base_value"`
}

// Sensitivity perturbs each process parameter by ±10% around the base case
// and returns central-difference sensitivities of the pool width and
// penetration, one entry per parameter in the fixed order current, voltage,
// travel_speed, arc_efficiency.
func Sensitivity(base Parameters, props material.Properties, plateThickness float64) ([]SensitivityResult, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if err := requirePositive("plate_thickness", plateThickness); err != nil {
		return nil, err
	}
	if err := validateMaterial(props); err != nil {
		return nil, err
	}

	basePool := poolGeometry(heatInput(base), props, plateThickness)

	results := make([]SensitivityResult, 0, len(parameterOrder))
	for _, name := range parameterOrder {
		baseValue, err := base.value(name)
		if err != nil {
			return nil, err
		}
		high, err := base.with(name, baseValue*(1+sensitivityDelta))
		if err != nil {
			return nil, err
		}
		low, err := base.with(name, baseValue*(1-sensitivityDelta))
		if err != nil {
			return nil, err
		}

		poolHigh := poolGeometry(heatInput(high), props, plateThickness)
		poolLow := poolGeometry(heatInput(low), props, plateThickness)

		denom := 2 * sensitivityDelta * baseValue
		results = append(results, SensitivityResult{
			Parameter:              name,
			WidthSensitivity:       (poolHigh.Width - poolLow.Width) / denom * (baseValue / basePool.Width),
			PenetrationSensitivity: (poolHigh.Penetration - poolLow.Penetration) / denom * (baseValue / basePool.Penetration),
			BaseValue:              baseValue,
		})
	}
	return results, nil
}
