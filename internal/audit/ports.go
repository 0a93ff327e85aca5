package audit

import "context"

// Record — одна строка журнала на завершённый обмен. Обратно не читается.
type Record struct {
	Prompt    string
	Response  string
	SessionID string // "" если клиент не прислал
}

// Sink performs exactly one write per call: no retry, no buffering.
type Sink interface {
	Write(ctx context.Context, rec Record) error
}

// NopSink drops records. Used with AUDIT_BACKEND=none.
type NopSink struct{}

func (NopSink) Write(context.Context, Record) error { return nil }
