package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/decker502/particlestudio/internal/canvas"
	"github.com/decker502/particlestudio/internal/particle"
	"github.com/decker502/particlestudio/internal/sequence"
)

// maxBodySize bounds request bodies; authored configs are a few kilobytes,
// so 4 MiB leaves generous headroom.
const maxBodySize = 4 << 20

type importResponse struct {
	Config     *particle.EditorConfig     `json:"config"`
	Rejected   []particle.RejectedEmitter `json:"rejected,omitempty"`
	Validation particle.ValidationResult  `json:"validation"`
}

// handleImport accepts a YAML config document as the request body and
// returns the imported document model, the records dropped by the shape
// filter, and the validation outcome. A syntax error is a 400 carrying the
// parser message; the front end must not apply a partial document.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err))
		return
	}

	res, err := particle.Import(string(body))
	if err != nil {
		var parseErr *particle.ParseError
		if errors.As(err, &parseErr) {
			writeError(w, http.StatusBadRequest, parseErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(res.Rejected) > 0 {
		s.log.Warn("import dropped malformed emitter records", "count", len(res.Rejected))
	}
	writeJSON(w, http.StatusOK, importResponse{
		Config:     res.Config,
		Rejected:   res.Rejected,
		Validation: particle.Validate(res.Config),
	})
}

// handleExport serializes the posted document model to YAML text.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var cfg particle.EditorConfig
	if !decodeBody(w, r, &cfg) {
		return
	}
	text, err := particle.ToText(&cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// handleValidate reports every structural defect of the posted document.
// Malformed documents are a normal input here, never a server error.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var cfg particle.EditorConfig
	if !decodeBody(w, r, &cfg) {
		return
	}
	writeJSON(w, http.StatusOK, particle.Validate(&cfg))
}

type recenterRequest struct {
	Emitters  []particle.EmitterConfig `json:"emitters"`
	OldWidth  float64                  `json:"oldWidth"`
	OldHeight float64                  `json:"oldHeight"`
	NewWidth  float64                  `json:"newWidth"`
	NewHeight float64                  `json:"newHeight"`
}

type recenterResponse struct {
	Emitters []particle.EmitterConfig `json:"emitters"`
}

// handleRecenter shifts emitter layouts for a viewport resize. When the new
// dimensions are omitted the configured default canvas size is used.
func (s *Server) handleRecenter(w http.ResponseWriter, r *http.Request) {
	var req recenterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.NewWidth == 0 {
		req.NewWidth = s.canvas.Width
	}
	if req.NewHeight == 0 {
		req.NewHeight = s.canvas.Height
	}
	shifted := canvas.Recenter(req.Emitters, req.OldWidth, req.OldHeight, req.NewWidth, req.NewHeight)
	writeJSON(w, http.StatusOK, recenterResponse{Emitters: shifted})
}

type detectRequest struct {
	Files []sequence.File `json:"files"`
}

type detectedSequence struct {
	Info       sequence.SequenceInfo       `json:"info"`
	Validation sequence.SequenceValidation `json:"validation"`
	AssetID    string                      `json:"assetId"`
}

type detectResponse struct {
	Sequences       []detectedSequence `json:"sequences"`
	IndividualFiles []sequence.File    `json:"individualFiles"`
}

// handleDetectSequences groups the uploaded file metadata into a frame
// sequence plus individual files, registers both in the asset store, and
// returns the per-sequence validation warnings so the front end can toast
// them without blocking the upload.
func (s *Server) handleDetectSequences(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	seqs, individual := sequence.AutoDetect(req.Files)
	resp := detectResponse{Sequences: []detectedSequence{}, IndividualFiles: individual}
	for i := range seqs {
		info := seqs[i]
		asset, err := s.assets.RegisterSequence(&info)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Sequences = append(resp.Sequences, detectedSequence{
			Info:       info,
			Validation: sequence.ValidateSequence(&info),
			AssetID:    asset.ID,
		})
	}
	for _, f := range individual {
		if _, err := s.assets.RegisterTexture(f.Name, f.Size); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type registerTextureRequest struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func (s *Server) handleRegisterTexture(w http.ResponseWriter, r *http.Request) {
	var req registerTextureRequest
	if !decodeBody(w, r, &req) {
		return
	}
	asset, err := s.assets.RegisterTexture(req.Name, req.Size)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.assets.List())
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	asset, ok := s.assets.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown asset %q", name))
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handleRemoveAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.assets.Remove(name) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown asset %q", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes a JSON request body into v, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}
