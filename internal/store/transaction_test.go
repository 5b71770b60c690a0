package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txConn implements just enough of database/sql/driver to observe commit
// and rollback calls.
type txConn struct {
	commits   int
	rollbacks int
}

func (c *txConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("statements not supported")
}
func (c *txConn) Close() error { return nil }
func (c *txConn) Begin() (driver.Tx, error) {
	return txHandle{conn: c}, nil
}

type txHandle struct{ conn *txConn }

func (t txHandle) Commit() error   { t.conn.commits++; return nil }
func (t txHandle) Rollback() error { t.conn.rollbacks++; return nil }

type txConnector struct{ conn *txConn }

func (c txConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c txConnector) Driver() driver.Driver                        { return txDriver{} }

type txDriver struct{}

func (txDriver) Open(string) (driver.Conn, error) { return &txConn{}, nil }

func newTxDB(t *testing.T) (*sql.DB, *txConn) {
	t.Helper()
	conn := &txConn{}
	db := sql.OpenDB(txConnector{conn: conn})
	t.Cleanup(func() { _ = db.Close() })
	return db, conn
}

func TestRunInTransaction_Commit(t *testing.T) {
	db, conn := newTxDB(t)

	var ran bool
	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, conn.commits)
	assert.Zero(t, conn.rollbacks)
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	db, conn := newTxDB(t)

	boom := errors.New("boom")
	err := RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, conn.rollbacks)
	assert.Zero(t, conn.commits)
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	db, conn := newTxDB(t)

	require.PanicsWithValue(t, "worker exploded", func() {
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			panic("worker exploded")
		})
	})
	assert.Equal(t, 1, conn.rollbacks)
	assert.Zero(t, conn.commits)
}
