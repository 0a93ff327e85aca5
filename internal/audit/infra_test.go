package audit

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDriver captures Exec calls instead of talking to Postgres.
type recordingDriver struct {
	mu    sync.Mutex
	execs [][]driver.Value
	query string
	fail  error
}

func (d *recordingDriver) Open(string) (driver.Conn, error) { return &recordingConn{d: d}, nil }

type recordingConn struct{ d *recordingDriver }

func (c *recordingConn) Prepare(query string) (driver.Stmt, error) {
	return &recordingStmt{d: c.d, query: query}, nil
}
func (c *recordingConn) Close() error              { return nil }
func (c *recordingConn) Begin() (driver.Tx, error) { return nil, errors.New("not supported") }

type recordingStmt struct {
	d     *recordingDriver
	query string
}

func (s *recordingStmt) Close() error  { return nil }
func (s *recordingStmt) NumInput() int { return -1 }

func (s *recordingStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.fail != nil {
		return nil, s.d.fail
	}
	s.d.query = s.query
	s.d.execs = append(s.d.execs, args)
	return driver.RowsAffected(1), nil
}

func (s *recordingStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("not supported")
}

var (
	registerOnce sync.Once
	testDriver   = &recordingDriver{}
)

func openRecordingDB(t *testing.T) *sql.DB {
	t.Helper()
	registerOnce.Do(func() { sql.Register("audit-recording", testDriver) })

	testDriver.mu.Lock()
	testDriver.execs = nil
	testDriver.fail = nil
	testDriver.mu.Unlock()

	db, err := sql.Open("audit-recording", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPostgresSink_Write_InsertsOneRow(t *testing.T) {
	db := openRecordingDB(t)
	sink := NewPostgresSink(db)

	err := sink.Write(context.Background(), Record{Prompt: "p", Response: "r", SessionID: "s"})
	require.NoError(t, err)

	require.Len(t, testDriver.execs, 1)
	assert.Equal(t, []driver.Value{"p", "r", "s"}, testDriver.execs[0])
	assert.Contains(t, testDriver.query, "INSERT INTO diagnostic_logs")
}

func TestPostgresSink_Write_WrapsError(t *testing.T) {
	db := openRecordingDB(t)
	boom := errors.New("connection refused")
	testDriver.mu.Lock()
	testDriver.fail = boom
	testDriver.mu.Unlock()

	err := NewPostgresSink(db).Write(context.Background(), Record{Prompt: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
