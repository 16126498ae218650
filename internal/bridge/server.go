package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"vcshell/internal/api"
	"vcshell/internal/config"
	"vcshell/internal/deps"
	"vcshell/internal/invoke"
	"vcshell/internal/logging"
	"vcshell/internal/preflight"
	"vcshell/internal/presets"
)

const maxRequestBody = 1 << 20

// PresetSource resolves presets for the HTTP layer.
type PresetSource interface {
	List() ([]presets.DisplayEntry, error)
	Get(name string) (presets.Definition, error)
}

// Server exposes the preset resolver and invocation bridge over HTTP.
type Server struct {
	cfg     *config.Config
	bind    string
	token   string
	logger  *slog.Logger
	presets PresetSource
	runner  invoke.Runner
	handler http.Handler

	listener net.Listener
	server   *http.Server
}

// New builds a Server. The bind address and bearer token come from cfg.
func New(cfg *config.Config, source PresetSource, runner invoke.Runner, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("bridge: config is required")
	}
	if source == nil || runner == nil {
		return nil, errors.New("bridge: preset source and runner are required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		bind:    strings.TrimSpace(cfg.Paths.APIBind),
		token:   strings.TrimSpace(cfg.Paths.APIToken),
		logger:  logging.NewComponentLogger(logger, "bridge"),
		presets: source,
		runner:  runner,
	}
	s.handler = s.routes()
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Routes sit on the top-level router so a method mismatch reaches
	// MethodNotAllowedHandler instead of falling through to NotFoundHandler.
	r.HandleFunc("/api/presets", authMiddleware(s.token, s.handlePresets)).Methods(http.MethodGet)
	r.HandleFunc("/api/presets/{name}", authMiddleware(s.token, s.handlePreset)).Methods(http.MethodGet)
	r.HandleFunc("/api/run", authMiddleware(s.token, s.handleRun)).Methods(http.MethodPost)
	r.HandleFunc("/api/status", authMiddleware(s.token, s.handleStatus)).Methods(http.MethodGet)
	return r
}

// Handler returns the routed handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.Bool("auth", s.token != ""),
	)
	return nil
}

// Addr reports the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, waiting up to five seconds for requests.
func (s *Server) Stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	entries, err := s.presets.List()
	if err != nil {
		logging.WithContext(r.Context(), s.logger).Warn("preset resolution failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.PresetListResponse{Presets: entries})
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	def, err := s.presets.Get(mux.Vars(r)["name"])
	if err != nil {
		if errors.Is(err, presets.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromDefinition(def))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req api.RunRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Args == nil {
		req.Args = []string{}
	}

	logger := logging.WithContext(r.Context(), s.logger)
	outcome := invoke.OutcomeOf(s.runner.Run(req.Args))
	if !outcome.OK {
		logger.Info("command failed",
			logging.String("kind", outcome.Kind),
			logging.Int("arg_count", len(req.Args)),
		)
		s.writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{Error: outcome.Message, Kind: outcome.Kind})
		return
	}
	logger.Info("command completed", logging.Int("arg_count", len(req.Args)))
	s.writeJSON(w, http.StatusOK, api.RunResponse{Output: outcome.Output})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	dependencies := preflight.CheckSystemDeps(s.cfg)
	checks := preflight.RunAll(s.cfg)
	s.writeJSON(w, http.StatusOK, api.StatusResponse{
		Ready:        !deps.MissingRequired(dependencies) && !preflight.Failed(checks),
		PID:          os.Getpid(),
		PresetsFile:  s.cfg.PresetsFile(),
		Compressor:   s.cfg.CompressorBinary(),
		Dependencies: api.FromDependencies(dependencies),
		Checks:       api.FromPreflight(checks),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
