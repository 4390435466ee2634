// Package export serializes analysis results into the downloadable
// documents offered by the dashboard: an indented JSON record, a sweep
// workbook and a PDF summary report.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"weldsim/material"
	"weldsim/physics"
)

// Document is the downloadable analysis record: the chosen process
// parameters, the derived pool geometry and the material property set.
type Document struct {
	Parameters         DocumentParameters  `json:"parameters"`
	Results            physics.Pool        `json:"results"`
	MaterialProperties material.Properties `json:"material_properties"`
}

type DocumentParameters struct {
	Current     float64 `json:"current"`
	Voltage     float64 `json:"voltage"`
	TravelSpeed float64 `json:"travel_speed"`
	Material    string  `json:"material"`
	Thickness   float64 `json:"thickness"`
}

// NewDocument builds the export record for one analysis.
func NewDocument(a *physics.Analysis) Document {
	return Document{
		Parameters: DocumentParameters{
			Current:     a.Parameters.Current,
			Voltage:     a.Parameters.Voltage,
			TravelSpeed: a.Parameters.TravelSpeed,
			Material:    a.MaterialName,
			Thickness:   a.PlateThickness,
		},
		Results:            a.Pool,
		MaterialProperties: a.Material,
	}
}

// Encode renders the document with two-space indentation.
func (d Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Filename is the suggested download name, derived from the material.
func (d Document) Filename() string {
	name := strings.ReplaceAll(strings.ToLower(d.Parameters.Material), " ", "_")
	return fmt.Sprintf("welding_analysis_%s.json", name)
}
