package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"weldsim/export"
	"weldsim/material"
	"weldsim/model"
	"weldsim/physics"
)

// catalogResponse is the material catalog payload shared by the REST route
// and the websocket hub.
type catalogResponse struct {
	Materials  []string                       `json:"materials"`
	Properties map[string]material.Properties `json:"properties"`
	Comparison []material.ComparisonRow       `json:"comparison"`
}

func catalogPayload() catalogResponse {
	props := make(map[string]material.Properties, len(material.Names()))
	for _, name := range material.Names() {
		props[name] = material.Lookup(name)
	}
	return catalogResponse{
		Materials:  material.Names(),
		Properties: props,
		Comparison: material.ComparisonTable(),
	}
}

func catalogMsg() model.Msg {
	data, err := json.Marshal(catalogPayload())
	if err != nil {
		return errorMsg(err.Error())
	}
	return model.Msg{Type: model.MsgCatalog, Content: string(data)}
}

// runSweep resolves the sweep values (canonical range when none are given)
// and evaluates the table.
func runSweep(req model.SweepRequest) (model.SweepResponse, error) {
	values := req.Values
	if len(values) == 0 {
		switch req.Parameter {
		case physics.ParamCurrent:
			values = physics.CurrentSweepRange()
		case physics.ParamVoltage:
			values = physics.VoltageSweepRange()
		default:
			return model.SweepResponse{}, fmt.Errorf("no sweep values given for %q", req.Parameter)
		}
	}
	points, err := physics.Sweep(req.Parameters(), material.Lookup(req.Material), req.PlateThickness, req.Parameter, values)
	if err != nil {
		return model.SweepResponse{}, err
	}
	return model.SweepResponse{
		Parameter: req.Parameter,
		Material:  req.Material,
		Points:    points,
	}, nil
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalogPayload())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.analyzeRequest(w, r)
	if !ok {
		return
	}
	s.history.Add(analysis)
	writeJSON(w, analysis)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req model.SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	req.AnalysisRequest = s.fill(req.AnalysisRequest)
	resp, err := runSweep(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.history.Items())
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.analyzeRequest(w, r)
	if !ok {
		return
	}
	doc := export.NewDocument(analysis)
	data, err := doc.Encode()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename()))
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("write export")
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	req = s.fill(req)
	props := material.Lookup(req.Material)

	currentPoints, err := physics.Sweep(req.Parameters(), props, req.PlateThickness,
		physics.ParamCurrent, physics.CurrentSweepRange())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	voltagePoints, err := physics.Sweep(req.Parameters(), props, req.PlateThickness,
		physics.ParamVoltage, physics.VoltageSweepRange())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="welding_sweeps.xlsx"`)
	err = export.WriteSweepWorkbook(w, []export.SweepTable{
		{Name: "Current", Parameter: "current_a", Points: currentPoints},
		{Name: "Voltage", Parameter: "voltage_v", Points: voltagePoints},
	})
	if err != nil {
		log.WithError(err).Warn("write sweep workbook")
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.analyzeRequest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="welding_report.pdf"`)
	if err := export.WriteReport(w, analysis); err != nil {
		log.WithError(err).Warn("write report")
	}
}

// analyzeRequest decodes an analysis request, fills defaults and runs the
// engine, writing the HTTP error itself on failure.
func (s *Server) analyzeRequest(w http.ResponseWriter, r *http.Request) (*physics.Analysis, bool) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return nil, false
	}
	req = s.fill(req)
	analysis, err := physics.Analyze(req.Parameters(), req.Material, req.PlateThickness)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return analysis, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encode response")
	}
}
