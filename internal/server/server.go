// Package server exposes the configuration core to the browser-hosted
// editor front end as a small JSON/YAML HTTP API.
//
// The server holds no document state: every endpoint consumes a whole
// snapshot and produces a whole snapshot, mirroring the pure-function
// contract of the underlying packages. The only state is the asset registry
// the runtime resolves texture names against.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/decker502/particlestudio/internal/assets"
	"github.com/decker502/particlestudio/internal/config"
)

// Server wires the configuration core to HTTP.
type Server struct {
	log    *log.Logger
	assets *assets.Store
	canvas config.CanvasSettings
}

// New creates a Server. canvasDefaults supplies the viewport size for
// recenter requests that do not carry their own.
func New(logger *log.Logger, store *assets.Store, canvasDefaults config.CanvasSettings) *Server {
	return &Server{log: logger, assets: store, canvas: canvasDefaults}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Route("/api", func(r chi.Router) {
		r.Post("/config/import", s.handleImport)
		r.Post("/config/export", s.handleExport)
		r.Post("/config/validate", s.handleValidate)
		r.Post("/canvas/recenter", s.handleRecenter)
		r.Post("/sequences/detect", s.handleDetectSequences)
		r.Post("/assets/textures", s.handleRegisterTexture)
		r.Get("/assets", s.handleListAssets)
		r.Get("/assets/{name}", s.handleGetAsset)
		r.Delete("/assets/{name}", s.handleRemoveAsset)
	})
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		s.log.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
