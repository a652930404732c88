// Package server exposes the fingering search over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mouse-blink/fretwise/internal/adapter"
	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/rs/cors"
)

const requestIDHeader = "X-Request-ID"

// Server serves scale, instrument and fingering lookups.
type Server struct {
	workflow domain.Workflow
	store    adapter.LayoutStore
	logger   *slog.Logger
}

// New creates a Server.
func New(workflow domain.Workflow, store adapter.LayoutStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{workflow: workflow, store: store, logger: logger}
}

// Handler returns the routed handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/instruments", s.handleInstruments).Methods(http.MethodGet)
	router.HandleFunc("/scales/{base}/{pattern}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/fingerings", s.handleFingerings).Methods(http.MethodPost)
	router.Use(s.logRequests)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(router)
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("listening", "addr", addr)

	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInstruments(w http.ResponseWriter, _ *http.Request) {
	instruments, err := s.store.List()
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]instrumentResponse, 0, len(instruments))
	for _, inst := range instruments {
		out = append(out, newInstrumentResponse(inst))
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	base, err := m.ParsePitch(vars["base"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	pattern, err := domain.LookupScalePattern(vars["pattern"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	scale := domain.MakeScale(base, pattern)

	s.writeJSON(w, http.StatusOK, scaleResponse{
		Base:    base.String(),
		Pattern: vars["pattern"],
		Scale:   pitchNames(scale[:]),
	})
}

func (s *Server) handleFingerings(w http.ResponseWriter, r *http.Request) {
	var req fingeringsRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := s.workflow.Search(r.Context(), req.findArgs())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, newFingeringsResponse(result, req.Limit))
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, m.ErrUnknownPitch),
		errors.Is(err, domain.ErrUnknownScale),
		errors.Is(err, domain.ErrUnknownShape),
		errors.Is(err, domain.ErrInvalidDegree):
		return http.StatusBadRequest
	case errors.Is(err, adapter.ErrUnknownInstrument):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to write response", "error", err)
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
