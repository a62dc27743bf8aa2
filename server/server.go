// Package server exposes the sortviz engine over HTTP. Buffered traces are
// computed with one POST; the websocket endpoint streams steps one text
// message at a time so a browser renderer can animate as they arrive.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lanrat/sortviz"
)

var upgrader = &websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}

// Server handles trace requests against the sortviz engine.
type Server struct {
	logger *zap.Logger
	config *sortviz.Config
}

// New creates a Server. logger can be nil to disable request logging;
// config can be nil for the engine defaults.
func New(logger *zap.Logger, config *sortviz.Config) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger, config: config}
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/algorithms", s.handleAlgorithms).Methods("GET")
	r.HandleFunc("/traces", s.handleTrace).Methods("POST")
	r.HandleFunc("/randomize", s.handleRandomize).Methods("POST")
	r.HandleFunc("/traces/stream", s.handleStream).Methods("GET")
	return r
}

// ListenAndServe serves the router on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	var group errgroup.Group
	group.Go(func() error {
		s.logger.Info("listening", zap.String("addr", addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// algorithmInfo describes one algorithm of the demonstration cycle.
type algorithmInfo struct {
	Name string `json:"name"`
	Next string `json:"next"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algorithms := sortviz.Algorithms()
	out := make([]algorithmInfo, len(algorithms))
	for i, a := range algorithms {
		out[i] = algorithmInfo{Name: a.String(), Next: a.Next().String()}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// traceRequest asks for a full trace over a list of trait values.
type traceRequest struct {
	Values    []float64 `json:"values"`
	Algorithm string    `json:"algorithm"`
	Trait     string    `json:"trait"`
	Seed      *int64    `json:"seed,omitempty"`
}

// traceResponse carries the computed trace plus the arrangement the steps
// replay to.
type traceResponse struct {
	Algorithm string        `json:"algorithm"`
	Trait     string        `json:"trait"`
	Steps     sortviz.Steps `json:"steps"`
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	var req traceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	algorithm, err := sortviz.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	steps, err := sortviz.SortConfig(sortviz.ScalarItems(req.Values...), sortviz.Trait(req.Trait), algorithm, s.requestConfig(req.Seed))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, traceResponse{
		Algorithm: algorithm.String(),
		Trait:     req.Trait,
		Steps:     steps,
	})
}

// randomizeRequest asks for a shuffle trace over Count positions.
type randomizeRequest struct {
	Count int    `json:"count"`
	Seed  *int64 `json:"seed,omitempty"`
}

func (s *Server) handleRandomize(w http.ResponseWriter, r *http.Request) {
	var req randomizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Count < 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("count must not be negative"))
		return
	}
	steps := sortviz.RandomizePositionsConfig(make([]struct{}, req.Count), s.requestConfig(req.Seed))
	s.writeJSON(w, http.StatusOK, traceResponse{Steps: steps})
}

// handleStream upgrades to a websocket and streams one step per text
// message. Query parameters: values (comma separated), trait, algorithm.
// A terminal JSON message carries either {"done":true} or an error.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	values, err := parseValues(r.URL.Query().Get("values"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	algorithm, err := sortviz.ParseAlgorithm(r.URL.Query().Get("algorithm"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	trait := sortviz.Trait(r.URL.Query().Get("trait"))

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	stepChan, errChan := sortviz.StreamSort(ctx, sortviz.ScalarItems(values...), trait, algorithm, s.config)
	for step := range stepChan {
		data, err := json.Marshal(step)
		if err != nil {
			s.logger.Warn("step encode failed", zap.Error(err))
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
	if err := <-errChan; err != nil {
		s.writeStreamEnd(ws, map[string]string{"error": err.Error()})
		return
	}
	s.writeStreamEnd(ws, map[string]bool{"done": true})
}

func (s *Server) writeStreamEnd(ws *websocket.Conn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Warn("websocket write failed", zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// requestConfig derives a per-request engine config, seeding the randomness
// source when the request pins one for a reproducible trace.
func (s *Server) requestConfig(seed *int64) *sortviz.Config {
	if seed == nil {
		return s.config
	}
	var cfg sortviz.Config
	if s.config != nil {
		cfg = *s.config
	}
	cfg.Rand = sortviz.SeededRand(*seed)
	return &cfg
}

func parseValues(raw string) ([]float64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
