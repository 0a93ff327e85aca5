package audit

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/ai-diag-assistant/internal/metrics"
)

// Logger wraps a Sink in a failure boundary. Nothing it does reaches the
// caller: errors and panics end up in the local log and the metrics.
type Logger struct {
	sink    Sink
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewLogger(sink Sink, log logrus.FieldLogger, m *metrics.Metrics) *Logger {
	return &Logger{
		sink:    sink,
		log:     log.WithField("component", "audit"),
		metrics: m,
	}
}

func (l *Logger) Log(ctx context.Context, rec Record) {
	if err := l.write(ctx, rec); err != nil {
		l.metrics.RecordAuditWrite(metrics.AuditFailed)
		l.log.WithError(err).
			WithField("session_id", rec.SessionID).
			Error("failed to write audit record")
		return
	}
	l.metrics.RecordAuditWrite(metrics.AuditOK)
}

func (l *Logger) write(ctx context.Context, rec Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audit sink panic: %v", r)
		}
	}()
	return l.sink.Write(ctx, rec)
}
