package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresSink is the alternate log store. Table:
//
//	CREATE TABLE diagnostic_logs (
//	    id         BIGSERIAL PRIMARY KEY,
//	    prompt     TEXT NOT NULL,
//	    response   TEXT NOT NULL,
//	    session_id TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresSink struct {
	db *sql.DB
}

func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Write(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO diagnostic_logs (prompt, response, session_id)
		VALUES ($1, $2, $3)
	`,
		rec.Prompt,
		rec.Response,
		rec.SessionID,
	)
	if err != nil {
		return fmt.Errorf("insert diagnostic log: %w", err)
	}
	return nil
}
