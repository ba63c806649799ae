package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// DebugServer exposes the debug controls over HTTP.
// Handlers never touch the game: reads come from the StatusBoard and writes
// are forwarded to the Bubble Tea program as messages.
type DebugServer struct {
	addr   string
	status *StatusBoard
	send   func(tea.Msg)
	logger *log.Logger
	server *http.Server
	ln     net.Listener
}

// NewDebugServer creates a server. send is usually tea.Program.Send.
func NewDebugServer(addr string, status *StatusBoard, send func(tea.Msg), logger *log.Logger) *DebugServer {
	if logger == nil {
		logger = log.Default()
	}
	d := &DebugServer{
		addr:   addr,
		status: status,
		send:   send,
		logger: logger,
	}
	d.server = &http.Server{
		Handler:           d.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return d
}

// Handler returns the route table.
func (d *DebugServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/debug", d.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/debug/speed", d.handleSpeed).Methods(http.MethodPut)
	r.HandleFunc("/debug/grid", d.handleGrid).Methods(http.MethodPost)
	return r
}

// Start listens and serves in the background.
func (d *DebugServer) Start() error {
	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		return fmt.Errorf("debug server: listen %s: %w", d.addr, err)
	}
	d.ln = ln
	d.logger.Info("debug server listening", "address", ln.Addr().String())

	go func() {
		if err := d.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.logger.Error("debug server error", "err", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (d *DebugServer) Addr() string {
	if d.ln != nil {
		return d.ln.Addr().String()
	}
	return d.addr
}

// Shutdown stops the server.
func (d *DebugServer) Shutdown(ctx context.Context) error {
	return d.server.Shutdown(ctx)
}

type speedRequest struct {
	Speed *int `json:"speed"`
}

type speedResponse struct {
	Speed int `json:"speed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (d *DebugServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, d.status.Load())
}

func (d *DebugServer) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Speed == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "speed is required"})
		return
	}

	st := d.status.Load()
	if st.MaxSpeed > 0 && (*req.Speed < st.MinSpeed || *req.Speed > st.MaxSpeed) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("speed must be between %d and %d", st.MinSpeed, st.MaxSpeed),
		})
		return
	}

	d.send(SetSpeedMsg{Speed: *req.Speed})
	d.logger.Debug("debug speed requested", "speed", *req.Speed)
	writeJSON(w, http.StatusAccepted, speedResponse{Speed: *req.Speed})
}

// handleGrid only queues the toggle; the resulting state shows up in GET /debug
// once the program has processed it.
func (d *DebugServer) handleGrid(w http.ResponseWriter, _ *http.Request) {
	d.send(ToggleGridMsg{})
	d.logger.Debug("debug grid toggle requested")
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("debug server: write response", "err", err)
	}
}
