package server

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"weldsim/model"
	"weldsim/physics"
)

// Hub serves one dashboard connection: requests come in as Msg envelopes,
// replies go back the same way with JSON payloads in Content.
type Hub struct {
	conn     *websocket.Conn
	defaults defaulter
	history  *history

	msg  chan model.Msg
	out  chan model.Msg
	done chan struct{}
	once sync.Once
}

type defaulter interface {
	fill(model.AnalysisRequest) model.AnalysisRequest
}

func newHub(conn *websocket.Conn, defaults defaulter, history *history) *Hub {
	return &Hub{
		conn:     conn,
		defaults: defaults,
		history:  history,
		msg:      make(chan model.Msg, 10),
		out:      make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

// handleRequest dispatches incoming envelopes to the engine.
func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case model.MsgAnalyze:
				h.out <- h.analyze(msg.Content)
			case model.MsgMaterials:
				h.out <- catalogMsg()
			case model.MsgSweep:
				h.out <- h.sweep(msg.Content)
			case model.MsgStop:
				h.out <- model.Msg{Type: model.MsgStopped, Content: "stopped"}
				h.close()
				return
			default:
				log.WithField("type", msg.Type).Warn("no such message type")
				h.out <- errorMsg("unknown message type: " + msg.Type)
			}
		case <-h.done:
			return
		}
	}
}

// handleResponse writes replies back to the peer.
func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.out:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("write reply")
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) analyze(content string) model.Msg {
	var req model.AnalysisRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errorMsg("bad analyze payload: " + err.Error())
	}
	req = h.defaults.fill(req)
	analysis, err := physics.Analyze(req.Parameters(), req.Material, req.PlateThickness)
	if err != nil {
		return errorMsg(err.Error())
	}
	h.history.Add(analysis)
	data, err := json.Marshal(analysis)
	if err != nil {
		return errorMsg(err.Error())
	}
	return model.Msg{Type: model.MsgResult, Content: string(data)}
}

func (h *Hub) sweep(content string) model.Msg {
	var req model.SweepRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errorMsg("bad sweep payload: " + err.Error())
	}
	req.AnalysisRequest = h.defaults.fill(req.AnalysisRequest)
	resp, err := runSweep(req)
	if err != nil {
		return errorMsg(err.Error())
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return errorMsg(err.Error())
	}
	return model.Msg{Type: model.MsgSweepData, Content: string(data)}
}

// close releases both hub goroutines. Safe to call from the stop path and
// the connection reader concurrently.
func (h *Hub) close() {
	h.once.Do(func() { close(h.done) })
}

func errorMsg(reason string) model.Msg {
	return model.Msg{Type: model.MsgError, Content: reason}
}
