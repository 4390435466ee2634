package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"weldsim/config"
	"weldsim/model"
)

// Server hosts the dashboard backend: a websocket hub at /ws and the REST
// calculation and export routes under /api.
type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	history  *history
}

func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.Server.ReadBufferSize,
			WriteBufferSize: cfg.Server.WriteBufferSize,
			// The dashboard is served from a separate origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		history: newHistory(cfg.Server.HistorySize),
	}
}

// fill substitutes the configured defaults for unset request fields, so a
// dashboard can send only the sliders the user touched.
func (s *Server) fill(req model.AnalysisRequest) model.AnalysisRequest {
	d := s.cfg.Defaults
	if req.Current == 0 {
		req.Current = d.Current
	}
	if req.Voltage == 0 {
		req.Voltage = d.Voltage
	}
	if req.TravelSpeed == 0 {
		req.TravelSpeed = d.TravelSpeed
	}
	if req.ArcEfficiency == 0 {
		req.ArcEfficiency = d.ArcEfficiency
	}
	if req.PlateThickness == 0 {
		req.PlateThickness = d.PlateThickness
	}
	if req.Material == "" {
		req.Material = d.Material
	}
	return req
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWs)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/materials", s.handleMaterials).Methods(http.MethodGet)
	api.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/sweep", s.handleSweep).Methods(http.MethodPost)
	api.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/export", s.handleExportJSON).Methods(http.MethodPost)
	api.HandleFunc("/export/xlsx", s.handleExportXLSX).Methods(http.MethodPost)
	api.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	return r
}

// serveWs upgrades the connection and runs one hub per peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	hub := newHub(conn, s, s.history)
	// A peer that vanishes without sending stop must still release the hub
	// goroutines.
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("peer disconnected")
			return
		}
		select {
		case hub.msg <- msg:
		case <-hub.done:
			return
		}
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Serve blocks on ListenAndServe.
func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Server.Addr).Info("serving weld dashboard backend")
	return http.ListenAndServe(s.cfg.Server.Addr, cors(s.Router()))
}
