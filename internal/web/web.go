// Package web serves the single-page form that talks to /api/chat.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/ai-diag-assistant/internal/session"
)

//go:embed static/index.html
var assets embed.FS

type Handler struct {
	page []byte
}

// NewHandler renders the page once; it has no per-request state.
func NewHandler() (*Handler, error) {
	tmpl, err := template.ParseFS(assets, "static/index.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ SessionKey string }{session.StorageKey}); err != nil {
		return nil, err
	}
	return &Handler{page: buf.Bytes()}, nil
}

func (h *Handler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HandleIndex)
}
