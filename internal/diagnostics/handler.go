package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/ai-diag-assistant/internal/metrics"
)

var (
	errTrailingData = errors.New("unexpected data after JSON body")
	errNullBody     = errors.New("request body is null")
)

type Handler struct {
	svc     Service
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewHandler(svc Service, log logrus.FieldLogger, m *metrics.Metrics) *Handler {
	return &Handler{
		svc:     svc,
		log:     log.WithField("component", "api"),
		metrics: m,
	}
}

// HandleChat — POST /api/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.serverError(w, r, fmt.Errorf("%v", rec))
		}
	}()

	payload, err := decodeBody(r.Body)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	// массив, строка, число: поля prompt нет — это 400, а не 500
	fields, _ := payload.(map[string]any)

	prompt, ok := fields["prompt"].(string)
	if !ok || strings.TrimSpace(prompt) == "" {
		h.metrics.RecordRequest(metrics.OutcomeBadRequest)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ErrMissingPrompt})
		return
	}

	sessionID, _ := fields["sessionId"].(string)

	// клиент ушёл — запрос всё равно доводим до конца
	ctx := context.WithoutCancel(r.Context())

	answer, err := h.svc.Diagnose(ctx, Request{Prompt: prompt, SessionID: sessionID})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.metrics.RecordRequest(metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.metrics.RecordRequest(metrics.OutcomeServerError)
	h.log.WithError(err).
		WithField("request_id", middleware.GetReqID(r.Context())).
		Error("error in /api/chat")

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   ErrServer,
		Details: err.Error(),
	})
}

// decodeBody reads exactly one JSON value. Trailing data and a null body are
// errors; any other value is returned for field lookup.
func decodeBody(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	if v == nil {
		return nil, errNullBody
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
