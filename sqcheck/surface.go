package sqcheck

import (
	"context"
	"database/sql"
	"database/sql/driver"

	"github.com/wilphi/sqverify/sqcap"
	"github.com/wilphi/sqverify/sqconn"
	"github.com/wilphi/sqverify/sqerr"
)

// CheckEngine opens an in-memory instance of the engine, verifies the
// transaction surface and then runs the transactional workload. A broken
// surface aborts the check before the workload runs.
func (c *Checker) CheckEngine(ctx context.Context) bool {
	cap, ok := sqcap.Get(c.engine)
	if !ok {
		c.fail("unknown engine: %s", c.engine)
		return false
	}
	c.section("Checking %s transaction method availability...", cap.Name)

	profile, err := sqconn.New(c.engine)
	if err != nil {
		c.fail("unable to build %s profile: %s", c.engine, err)
		return false
	}
	db, err := profile.Open()
	if err != nil {
		c.fail("unable to open %s: %s", c.engine, err)
		return false
	}
	defer db.Close()

	if !c.CheckTransactionSurface(ctx, db) {
		return false
	}

	c.section("Testing transaction operations...")
	return c.CheckWorkload(ctx, db)
}

// CheckTransactionSurface verifies that a freshly acquired driver
// connection exposes begin, commit and rollback. The probe transaction is
// rolled back so the connection returns to the pool clean.
func (c *Checker) CheckTransactionSurface(ctx context.Context, db *sql.DB) bool {
	conn, err := db.Conn(ctx)
	if err != nil {
		c.fail("unable to acquire a connection: %s", err)
		return false
	}
	defer conn.Close()

	ok := true
	rawErr := conn.Raw(func(dc interface{}) error {
		tx, err := beginProbe(ctx, dc)
		if err != nil || tx == nil {
			c.fail("begin() method missing: %v", err)
			ok = false
			return nil
		}
		c.pass("begin() method available")

		// a driver.Tx always carries Commit and Rollback
		c.pass("commit() method available")

		if err := tx.Rollback(); err != nil {
			c.fail("rollback() failed on probe transaction: %s", err)
			ok = false
			return nil
		}
		c.pass("rollback() method available")
		return nil
	})
	if rawErr != nil {
		c.fail("unable to reach the driver connection: %s", rawErr)
		return false
	}
	return ok
}

// beginProbe starts a throwaway transaction directly on the driver
// connection, preferring ConnBeginTx over the legacy Begin.
func beginProbe(ctx context.Context, dc interface{}) (driver.Tx, error) {
	if cbt, ok := dc.(driver.ConnBeginTx); ok {
		return cbt.BeginTx(ctx, driver.TxOptions{})
	}
	if cn, ok := dc.(driver.Conn); ok {
		//nolint:staticcheck // legacy drivers only expose Begin
		return cn.Begin()
	}
	return nil, sqerr.NewCapability("driver connection does not implement driver.Conn")
}
