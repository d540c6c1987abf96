package sqconn

import (
	"database/sql"

	log "github.com/sirupsen/logrus"
	"github.com/wilphi/sqverify/sqcap"
	"github.com/wilphi/sqverify/sqerr"

	// database/sql drivers for the registered engines
	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"
)

// Profile is a connection profile for a single engine. A profile is a
// value object: constructed fresh, compared, discarded. A derived engine
// profile copies its default field values from its base engine's
// capability entry at construction time rather than looking them up
// through the registry on each access.
type Profile struct {
	Type                 string // engine discriminator
	Driver               string // database/sql driver name
	DSN                  string
	ConcurrentTasks      int
	SupportsTransactions bool
}

// New builds a Profile for the given engine ID
func New(id sqcap.EngineID) (Profile, error) {
	cap, ok := sqcap.Get(id)
	if !ok {
		return Profile{}, sqerr.NewConfigf("unknown engine type: %s", id)
	}
	def, ok := sqcap.Defaults(id)
	if !ok {
		return Profile{}, sqerr.NewInternalf("engine %s inherits unregistered base %s", id, cap.Inherits)
	}
	return Profile{
		Type:                 string(cap.ID),
		Driver:               cap.Driver,
		DSN:                  cap.MemoryDSN,
		ConcurrentTasks:      def.ConcurrentTasks,
		SupportsTransactions: def.SupportsTransactions,
	}, nil
}

// MustNew builds a Profile for the given engine ID or panics if unknown
func MustNew(id sqcap.EngineID) Profile {
	p, err := New(id)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// NewDuckDBProfile creates the base in-memory DuckDB profile
func NewDuckDBProfile() Profile {
	return MustNew(sqcap.DuckDB)
}

// NewMotherDuckProfile creates the cloud-hosted profile derived from DuckDB
func NewMotherDuckProfile() Profile {
	return MustNew(sqcap.MotherDuck)
}

// NewSQLiteProfile creates the in-memory SQLite profile
func NewSQLiteProfile() Profile {
	return MustNew(sqcap.SQLite)
}

// Open opens a database handle for the profile. Engines without an
// in-memory mode must have a DSN set on the profile first.
func (p Profile) Open() (*sql.DB, error) {
	cap := sqcap.MustGet(sqcap.EngineID(p.Type))
	if !cap.HasMemoryMode && p.DSN == "" {
		return nil, sqerr.NewConfigf("engine %s has no in-memory mode and no DSN was set", p.Type)
	}
	db, err := sql.Open(p.Driver, p.DSN)
	if err != nil {
		return nil, sqerr.Newf("unable to open %s: %s", p.Type, err.Error())
	}
	log.Debugf("Opened %s handle with driver %s", p.Type, p.Driver)
	return db, nil
}
