package sqcheck

import (
	"github.com/wilphi/sqverify/sqcap"
	"github.com/wilphi/sqverify/sqconn"
)

// CheckProfiles verifies the adapter declaration and the connection
// profile defaults for the base DuckDB profile and the derived MotherDuck
// profile. Profiles are constructed fresh and never mutated.
func (c *Checker) CheckProfiles() bool {
	c.section("Checking engine adapter configuration...")

	ok := true
	cap := sqcap.MustGet(sqcap.DuckDB)
	if cap.SupportsTransactions {
		c.pass("%s adapter declares SupportsTransactions = true", cap.Name)
	} else {
		c.fail("%s adapter declares SupportsTransactions = false", cap.Name)
		ok = false
	}

	ok = c.checkProfile(sqconn.NewDuckDBProfile(), false) && ok
	ok = c.checkProfile(sqconn.NewMotherDuckProfile(), true) && ok
	return ok
}

// checkProfile applies the transaction-support and concurrency-limit
// assertions to a single profile.
func (c *Checker) checkProfile(p sqconn.Profile, inherited bool) bool {
	note := ""
	if inherited {
		note = " (inherited)"
	}

	ok := true
	if p.SupportsTransactions {
		c.pass("%s supports_transactions = true%s", p.Type, note)
	} else {
		c.fail("%s supports_transactions = false%s", p.Type, note)
		ok = false
	}
	if p.ConcurrentTasks > 1 {
		c.pass("%s concurrent_tasks = %d%s", p.Type, p.ConcurrentTasks, note)
	} else {
		c.fail("%s concurrent_tasks = %d (should be > 1)%s", p.Type, p.ConcurrentTasks, note)
		ok = false
	}
	return ok
}
