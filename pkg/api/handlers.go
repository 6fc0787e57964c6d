package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/errors"
	treeio "github.com/matzehuels/boxlayout/pkg/io"
	"github.com/matzehuels/boxlayout/pkg/layout"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
	"github.com/matzehuels/boxlayout/pkg/store"
)

// Viewport is the layout rectangle in a create request. Zero width or
// height take the pipeline defaults.
type Viewport struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CreateRequest is the body of POST /v1/layouts.
type CreateRequest struct {
	Viewport Viewport        `json:"viewport"`
	Tree     json.RawMessage `json:"tree"`
}

// CreateResponse is the body returned by POST /v1/layouts.
type CreateResponse struct {
	ID     string        `json:"id"`
	Layout layout.Layout `json:"layout"`
	Cached bool          `json:"cached"`
}

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatTree: "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func (s *Server) createLayout(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if len(req.Tree) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidTree, "tree is required"))
		return
	}

	opts := pipeline.Options{
		Format: treeio.FormatJSON,
		Left:   req.Viewport.Left,
		Top:    req.Viewport.Top,
		Width:  req.Viewport.Width,
		Height: req.Viewport.Height,
	}
	if err := opts.ValidateForLayout(); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	tree, err := pipeline.Decode(ctx, req.Tree, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, hit, err := s.runner.ComputeLayoutWithCacheInfo(ctx, tree, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	canonical, err := treeio.MarshalTree(tree)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec := store.NewRecord(opts.Viewport(), canonical, cache.Hash(canonical), l)
	if err := s.store.Put(ctx, rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/layouts/"+rec.ID)
	s.writeJSON(w, http.StatusCreated, CreateResponse{ID: rec.ID, Layout: l, Cached: hit})
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	rec, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := store.ValidateID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderLayout renders a stored layout. Query parameters: labels (svg, png,
// pdf), detailed (dot, tree) and scale (png).
func (s *Server) renderLayout(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tree, err := treeio.DecodeTree(rec.Tree, treeio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Left:     rec.Viewport.Left,
		Top:      rec.Viewport.Top,
		Width:    rec.Viewport.Width(),
		Height:   rec.Viewport.Height(),
		Formats:  []string{format},
		Labels:   queryBool(q.Get("labels")),
		Detailed: queryBool(q.Get("detailed")),
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}

	artifacts, err := s.runner.Render(r.Context(), rec.Layout, tree, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) lookup(r *http.Request) (*store.Record, error) {
	id := chi.URLParam(r, "id")
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	return s.store.Get(r.Context(), id)
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
