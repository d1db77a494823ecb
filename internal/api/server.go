// Package api exposes the calculator and the analysis engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rversteeg/importeer/internal/bpm"
	"github.com/rversteeg/importeer/internal/config"
	"github.com/rversteeg/importeer/internal/domain"
	"github.com/rversteeg/importeer/internal/engine"
	"github.com/rversteeg/importeer/internal/normalize"
)

const requestTimeout = 30 * time.Second

// Server serves the JSON API.
type Server struct {
	engine     *engine.AnalysisEngine
	calculator *bpm.Calculator
	parser     *config.InputParser
	logger     *logrus.Logger
}

func NewServer(eng *engine.AnalysisEngine, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		engine:     eng,
		calculator: bpm.NewCalculator(),
		parser:     config.NewInputParser(),
		logger:     logger,
	}
}

// Handler returns the routed handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/v1/bpm", s.handleBPM)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

// ListenAndServe blocks serving the API until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.WithField("addr", addr).Info("api server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(started),
		}).Debug("request handled")
	})
}

// BPMRequest is the standalone BPM calculation request body.
type BPMRequest struct {
	CO2GKM            int    `json:"co2Gkm"`
	FuelType          string `json:"fuelType"`
	FirstRegistration string `json:"firstRegistration"`
}

// AnalyzeRequest carries a listing plus optional comparables collected by
// the caller.
type AnalyzeRequest struct {
	Vehicle     domain.Vehicle      `json:"vehicle"`
	Comparables []domain.Comparable `json:"comparables,omitempty"`
}

func (s *Server) handleBPM(w http.ResponseWriter, r *http.Request) {
	var req BPMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	fuel, ok := normalize.FuelType(req.FuelType)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("unknown fuel type %q", req.FuelType))
		return
	}
	registration, err := normalize.Date(req.FirstRegistration)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("cannot parse first registration date %q", req.FirstRegistration))
		return
	}

	result, err := s.calculator.Calculate(bpm.TaxInput{
		CO2GKM:            req.CO2GKM,
		FuelType:          fuel,
		FirstRegistration: registration,
	})
	if err != nil {
		s.writeCalculationError(w, err)
		return
	}

	s.writeData(w, http.StatusOK, result)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if err := s.parser.ValidateVehicle(&req.Vehicle); err != nil {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	eng := s.engine
	if len(req.Comparables) > 0 {
		eng = s.engine.WithStaticComparables(req.Comparables)
	}

	report, err := eng.Analyze(ctx, req.Vehicle)
	if err != nil {
		s.writeCalculationError(w, err)
		return
	}

	s.writeData(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeCalculationError(w http.ResponseWriter, err error) {
	var invalid *bpm.InvalidInputError
	if errors.As(err, &invalid) {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", invalid.Error())
		return
	}
	s.logger.WithError(err).Error("calculation failed")
	s.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "calculation failed")
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{
		Success: false,
		Error:   &errorBody{Code: code, Message: message},
	}); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}
