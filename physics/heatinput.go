package physics

import "weldsim/material"

// Parameter names, in the fixed enumeration order used by sensitivity and
// sweep results.
const (
	ParamCurrent       = "current"
	ParamVoltage       = "voltage"
	ParamTravelSpeed   = "travel_speed"
	ParamArcEfficiency = "arc_efficiency"
)

var parameterOrder = []string{ParamCurrent, ParamVoltage, ParamTravelSpeed, ParamArcEfficiency}

// Parameters is the process parameter set for one calculation.
type Parameters struct {
	Current       float64 `json:"current"`        // A
	Voltage       float64 `json:"voltage"`        // V
	TravelSpeed   float64 `json:"travel_speed"`   // mm/s
	ArcEfficiency float64 `json:"arc_efficiency"` // (0,1]
}

func (p Parameters) validate() error {
	if err := requirePositive(ParamCurrent, p.Current); err != nil {
		return err
	}
	if err := requirePositive(ParamVoltage, p.Voltage); err != nil {
		return err
	}
	if err := requirePositive(ParamTravelSpeed, p.TravelSpeed); err != nil {
		return err
	}
	if !(p.ArcEfficiency > 0) || p.ArcEfficiency > 1 {
		return invalidParam(ParamArcEfficiency, p.ArcEfficiency, "must be in (0,1]")
	}
	return nil
}

// value returns the named parameter.
func (p Parameters) value(name string) (float64, error) {
	switch name {
	case ParamCurrent:
		return p.Current, nil
	case ParamVoltage:
		return p.Voltage, nil
	case ParamTravelSpeed:
		return p.TravelSpeed, nil
	case ParamArcEfficiency:
		return p.ArcEfficiency, nil
	}
	return 0, invalidParam(name, 0, "unknown parameter")
}

// with returns a copy of p with the named parameter replaced.
func (p Parameters) with(name string, value float64) (Parameters, error) {
	switch name {
	case ParamCurrent:
		p.Current = value
	case ParamVoltage:
		p.Voltage = value
	case ParamTravelSpeed:
		p.TravelSpeed = value
	case ParamArcEfficiency:
		p.ArcEfficiency = value
	default:
		return p, invalidParam(name, value, "unknown parameter")
	}
	return p, nil
}

// HeatInput converts the electrical and motion parameters into a line heat
// input in J/mm:
//
//	HI = η·V·I·60 / v[mm/min]
//
// which reduces to η·V·I / v[mm/s].
func HeatInput(p Parameters) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	return heatInput(p), nil
}

func heatInput(p Parameters) float64 {
	travelSpeedMMPerMin := p.TravelSpeed * 60
	return p.ArcEfficiency * p.Voltage * p.Current * 60 / travelSpeedMMPerMin
}

func validateMaterial(props material.Properties) error {
	if err := requirePositive("thermal_conductivity", props.ThermalConductivity); err != nil {
		return err
	}
	if err := requirePositive("density", props.Density); err != nil {
		return err
	}
	if err := requirePositive("specific_heat_solid", props.SpecificHeatSolid); err != nil {
		return err
	}
	if props.LiquidusTemp <= material.RoomTemperature {
		return invalidParam("liquidus_temp", props.LiquidusTemp, "must exceed room temperature (298 K)")
	}
	return nil
}
