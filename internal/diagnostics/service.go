package diagnostics

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/ai-diag-assistant/internal/ai"
	"github.com/Vovarama1992/ai-diag-assistant/internal/audit"
	"github.com/Vovarama1992/ai-diag-assistant/internal/metrics"
)

type service struct {
	ai      ai.Completer
	audit   AuditLogger
	limits  ai.Limits
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewService(
	aiClient ai.Completer,
	auditLogger AuditLogger,
	log logrus.FieldLogger,
	m *metrics.Metrics,
) Service {
	return &service{
		ai:      aiClient,
		audit:   auditLogger,
		limits:  ai.DefaultLimits,
		log:     log.WithField("component", "diagnostics"),
		metrics: m,
	}
}

// Diagnose runs one exchange. Completion errors come back as-is and nothing
// is audited; otherwise the audit write is awaited before returning.
func (s *service) Diagnose(ctx context.Context, req Request) (string, error) {
	started := time.Now()
	raw, err := s.ai.Complete(ctx, DiagnosticsInstructions, req.Prompt, s.limits)
	s.metrics.ObserveCompletion(time.Since(started))
	if err != nil {
		return "", err
	}

	answer := raw
	if strings.TrimSpace(answer) == "" {
		s.log.WithField("session_id", req.SessionID).Warn("completion returned no text, using placeholder")
		answer = PlaceholderAnswer
	}

	// запись журнала ждём до ответа
	s.audit.Log(ctx, audit.Record{
		Prompt:    req.Prompt,
		Response:  answer,
		SessionID: req.SessionID,
	})

	s.log.WithFields(logrus.Fields{
		"session_id":   req.SessionID,
		"instructions": InstructionsVersion,
		"answer_len":   len(answer),
		"elapsed":      time.Since(started).String(),
	}).Info("diagnosis served")

	return answer, nil
}
