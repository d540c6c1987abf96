package sqconn_test

import (
	"testing"

	"github.com/wilphi/assertions"
	"github.com/wilphi/sqverify/sqcap"
	"github.com/wilphi/sqverify/sqconn"
	"github.com/wilphi/sqverify/sqtest"
)

func init() {
	sqtest.TestInit("sqconn_test.log")
}

type ProfileData struct {
	TestName  string
	ID        sqcap.EngineID
	ExpErr    string
	ExpType   string
	ExpDriver string
	ExpTasks  int
	ExpTrans  bool
}

func testProfileFunc(d ProfileData) func(*testing.T) {
	return func(t *testing.T) {
		defer sqtest.PanicTestRecovery(t, "")

		p, err := sqconn.New(d.ID)
		if sqtest.CheckErr(t, err, d.ExpErr) {
			return
		}

		if p.Type != d.ExpType {
			t.Errorf("Type %s does not match expected %s", p.Type, d.ExpType)
		}
		if p.Driver != d.ExpDriver {
			t.Errorf("Driver %s does not match expected %s", p.Driver, d.ExpDriver)
		}
		if p.ConcurrentTasks != d.ExpTasks {
			t.Errorf("ConcurrentTasks %d does not match expected %d", p.ConcurrentTasks, d.ExpTasks)
		}
		if p.SupportsTransactions != d.ExpTrans {
			t.Errorf("SupportsTransactions %v does not match expected %v", p.SupportsTransactions, d.ExpTrans)
		}
	}
}

func TestProfiles(t *testing.T) {
	data := []ProfileData{
		{
			TestName:  "DuckDB base profile",
			ID:        sqcap.DuckDB,
			ExpType:   "duckdb",
			ExpDriver: "duckdb",
			ExpTasks:  4,
			ExpTrans:  true,
		},
		{
			TestName:  "MotherDuck derived profile copies base defaults",
			ID:        sqcap.MotherDuck,
			ExpType:   "motherduck",
			ExpDriver: "duckdb",
			ExpTasks:  4,
			ExpTrans:  true,
		},
		{
			TestName:  "SQLite profile",
			ID:        sqcap.SQLite,
			ExpType:   "sqlite",
			ExpDriver: "sqlite",
			ExpTasks:  4,
			ExpTrans:  true,
		},
	}

	for _, d := range data {
		t.Run(d.TestName, testProfileFunc(d))
	}

	t.Run("Unknown engine", testProfileFunc(ProfileData{
		TestName: "Unknown engine",
		ID:       "notanengine",
		ExpErr:   "Config Error: unknown engine type: notanengine",
	}))
}

func TestProfileIndependence(t *testing.T) {
	defer sqtest.PanicTestRecovery(t, "")

	// Changing a derived profile must not leak into fresh base profiles
	derived := sqconn.NewMotherDuckProfile()
	derived.ConcurrentTasks = 99

	base := sqconn.NewDuckDBProfile()
	if base.ConcurrentTasks != 4 {
		t.Errorf("Base profile ConcurrentTasks changed to %d", base.ConcurrentTasks)
	}

	fresh := sqconn.NewMotherDuckProfile()
	if fresh.ConcurrentTasks != 4 {
		t.Errorf("Fresh derived profile ConcurrentTasks changed to %d", fresh.ConcurrentTasks)
	}
}

func TestMustNewPanic(t *testing.T) {
	defer sqtest.PanicTestRecovery(t, "Config Error: unknown engine type: notanengine")

	sqconn.MustNew("notanengine")
}

func TestOpen(t *testing.T) {
	t.Run("SQLite in-memory open", func(t *testing.T) {
		defer sqtest.PanicTestRecovery(t, "")

		p := sqconn.NewSQLiteProfile()
		db, err := p.Open()
		assertions.AssertNoErr(err, "Unable to open sqlite profile")
		defer db.Close()

		if err := db.Ping(); err != nil {
			t.Errorf("Ping on fresh in-memory handle failed: %s", err)
		}
	})

	t.Run("MotherDuck requires a DSN", func(t *testing.T) {
		defer sqtest.PanicTestRecovery(t, "")

		p := sqconn.NewMotherDuckProfile()
		_, err := p.Open()
		sqtest.CheckErr(t, err, "Config Error: engine motherduck has no in-memory mode and no DSN was set")
	})
}
