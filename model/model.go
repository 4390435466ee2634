// Package model holds the wire-level types shared by the websocket hub,
// the REST handlers and the CLI.
package model

import "weldsim/physics"

// Msg is the websocket envelope exchanged with the dashboard.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Envelope types understood by the hub.
const (
	MsgAnalyze   = "analyze"
	MsgMaterials = "materials"
	MsgSweep     = "sweep"
	MsgStop      = "stop"

	MsgResult    = "result"
	MsgCatalog   = "catalog"
	MsgSweepData = "sweep_data"
	MsgStopped   = "stopped"
	MsgError     = "error"
)

// AnalysisRequest is the payload of an analyze message or POST /api/analyze.
type AnalysisRequest struct {
	Current        float64 `json:"current"`
	Voltage        float64 `json:"voltage"`
	TravelSpeed    float64 `json:"travel_speed"`
	ArcEfficiency  float64 `json:"arc_efficiency"`
	Material       string  `json:"material"`
	PlateThickness float64 `json:"plate_thickness"`
}

// Parameters converts the request into the engine parameter set.
func (r AnalysisRequest) Parameters() physics.Parameters {
	return physics.Parameters{
		Current:       r.Current,
		Voltage:       r.Voltage,
		TravelSpeed:   r.TravelSpeed,
		ArcEfficiency: r.ArcEfficiency,
	}
}

// SweepRequest is the payload of a sweep message or POST /api/sweep. When
// Values is empty the canonical range for the parameter is used.
type SweepRequest struct {
	AnalysisRequest
	Parameter string    `json:"parameter"`
	Values    []float64 `json:"values,omitempty"`
}

// SweepResponse is the sweep table sent back to the caller.
type SweepResponse struct {
	Parameter string               `json:"parameter"`
	Material  string               `json:"material"`
	Points    []physics.SweepPoint `json:"points"`
}
