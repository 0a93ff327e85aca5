package diagnostics

import (
	"context"

	"github.com/Vovarama1992/ai-diag-assistant/internal/audit"
)

// PlaceholderAnswer replaces an empty completion. Not an error.
const PlaceholderAnswer = "No answer returned."

// Fixed client-facing messages.
const (
	ErrMissingPrompt = "Missing prompt"
	ErrServer        = "Server error"
)

// Request — одна отправка формы, живёт до ответа.
type Request struct {
	Prompt    string
	SessionID string
}

type chatResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuditLogger never fails the request; see audit.Logger.
type AuditLogger interface {
	Log(ctx context.Context, rec audit.Record)
}

// Service — конвейер: completion → answer → audit.
type Service interface {
	Diagnose(ctx context.Context, req Request) (string, error)
}
