package sqcheck

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"
	"github.com/wilphi/sqverify/sqerr"
)

// Execer is the statement surface the workload needs. Both *sql.DB and
// *sql.Conn satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// CheckWorkload runs the commit/rollback workload within a scoped
// connection. The connection is released whether the workload succeeds,
// fails the row count or errors part way through.
func (c *Checker) CheckWorkload(ctx context.Context, db *sql.DB) bool {
	conn, err := db.Conn(ctx)
	if err != nil {
		c.fail("unable to acquire a connection: %s", err)
		return false
	}
	defer conn.Close()

	count, err := runWorkload(ctx, conn)
	if err != nil {
		log.Warn(err)
		c.fail("transaction test failed: %s", err)
		return false
	}
	if count != 1 {
		c.fail("expected 1 row, got %d", count)
		return false
	}
	c.pass("transaction commit/rollback working correctly")
	return true
}

// runWorkload creates a throwaway table, commits one insert, rolls back a
// second and returns the surviving row count. Expected count is 1.
func runWorkload(ctx context.Context, conn Execer) (int, error) {
	if _, err := conn.ExecContext(ctx, "CREATE TABLE test_table (id INTEGER, name VARCHAR)"); err != nil {
		return 0, sqerr.NewWorkloadf("unable to create test table: %s", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, sqerr.NewWorkloadf("unable to begin first transaction: %s", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO test_table VALUES (1, 'Alice')"); err != nil {
		tx.Rollback()
		return 0, sqerr.NewWorkloadf("insert before commit failed: %s", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, sqerr.NewWorkloadf("commit failed: %s", err)
	}

	tx, err = conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, sqerr.NewWorkloadf("unable to begin second transaction: %s", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO test_table VALUES (2, 'Bob')"); err != nil {
		tx.Rollback()
		return 0, sqerr.NewWorkloadf("insert before rollback failed: %s", err)
	}
	if err := tx.Rollback(); err != nil {
		return 0, sqerr.NewWorkloadf("rollback failed: %s", err)
	}

	var count int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM test_table").Scan(&count); err != nil {
		return 0, sqerr.NewWorkloadf("count query failed: %s", err)
	}
	return count, nil
}
