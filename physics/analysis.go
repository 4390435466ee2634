package physics

import "weldsim/material"

// Analysis bundles the output of all four engine operations for one
// parameter set. This is the unit the server pushes to the dashboard and
// the exporters serialize.
type Analysis struct {
	Parameters     Parameters          `json:"parameters"`
	MaterialName   string              `json:"material"`
	Material       material.Properties `json:"material_properties"`
	PlateThickness float64             `json:"plate_thickness"`
	HeatInput      float64             `json:"heat_input"`
	Pool           Pool                `json:"pool"`
	Field          *Field              `json:"field"`
	Sensitivity    []SensitivityResult `json:"sensitivity"`
}

// Analyze runs heat input, pool geometry, temperature field and sensitivity
// for one parameter set. The material name resolves through the catalog,
// with its silent Steel fallback for unknown names.
func Analyze(p Parameters, materialName string, plateThickness float64) (*Analysis, error) {
	props := material.Lookup(materialName)

	hi, err := HeatInput(p)
	if err != nil {
		return nil, err
	}
	pool, err := PoolGeometry(hi, props, plateThickness)
	if err != nil {
		return nil, err
	}
	field, err := TemperatureField(hi, props, p.TravelSpeed)
	if err != nil {
		return nil, err
	}
	sensitivity, err := Sensitivity(p, props, plateThickness)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Parameters:     p,
		MaterialName:   materialName,
		Material:       props,
		PlateThickness: plateThickness,
		HeatInput:      hi,
		Pool:           pool,
		Field:          field,
		Sensitivity:    sensitivity,
	}, nil
}
