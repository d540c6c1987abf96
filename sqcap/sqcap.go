package sqcap

import "sort"

// EngineID is the canonical identifier for a database engine known to
// sqverify. Use these constants to look up capability information.
type EngineID string

const (
	// DuckDB is the embedded analytical engine, the default verification target
	DuckDB EngineID = "duckdb"
	// MotherDuck is the cloud-hosted engine derived from DuckDB
	MotherDuck EngineID = "motherduck"
	// SQLite is the embedded relational engine (pure Go driver)
	SQLite EngineID = "sqlite"
)

// Capability describes what an engine declares about itself so the checker
// can consume every engine uniformly.
type Capability struct {
	// Human-friendly product name, e.g. "DuckDB".
	Name string

	// Canonical ID used across the codebase (see EngineID constants).
	ID EngineID

	// Driver is the database/sql driver name used to open the engine.
	Driver string

	// MemoryDSN opens an in-memory instance of the engine. Only valid
	// when HasMemoryMode is true.
	MemoryDSN     string
	HasMemoryMode bool

	// SupportsTransactions is the static declaration that begin/commit/
	// rollback semantics are honored for this engine.
	SupportsTransactions bool

	// ConcurrentTasks is the default bound on simultaneous tasks for a
	// connection profile of this engine. Zero on derived entries; the
	// value is resolved from the base entry via Inherits.
	ConcurrentTasks int

	// Inherits names the base engine whose default values a derived
	// entry copies. At most one level deep.
	Inherits EngineID
}

// All is the registry of capabilities keyed by the canonical engine ID.
// Entries are never mutated after init.
var All = map[EngineID]Capability{
	DuckDB: {
		Name:                 "DuckDB",
		ID:                   DuckDB,
		Driver:               "duckdb",
		MemoryDSN:            "",
		HasMemoryMode:        true,
		SupportsTransactions: true,
		ConcurrentTasks:      4,
	},
	MotherDuck: {
		Name:          "MotherDuck",
		ID:            MotherDuck,
		Driver:        "duckdb",
		HasMemoryMode: false,
		Inherits:      DuckDB,
	},
	SQLite: {
		Name:                 "SQLite",
		ID:                   SQLite,
		Driver:               "sqlite",
		MemoryDSN:            ":memory:",
		HasMemoryMode:        true,
		SupportsTransactions: true,
		ConcurrentTasks:      4,
	},
}

// Get returns the Capability for an engine ID.
func Get(id EngineID) (Capability, bool) {
	cap, ok := All[id]
	return cap, ok
}

// MustGet returns the Capability for an engine ID or panics if unknown.
func MustGet(id EngineID) Capability {
	cap, ok := Get(id)
	if !ok {
		panic("sqcap: unknown engine id: " + string(id))
	}
	return cap
}

// Exists reports whether an engine ID is registered.
func Exists(id EngineID) bool {
	_, ok := All[id]
	return ok
}

// Defaults resolves the entry whose default values apply to the given
// engine: the entry itself, or its base entry when Inherits is set.
func Defaults(id EngineID) (Capability, bool) {
	cap, ok := Get(id)
	if !ok {
		return Capability{}, false
	}
	if cap.Inherits != "" {
		return Get(cap.Inherits)
	}
	return cap, true
}

// IDs returns the sorted list of all known engine IDs.
func IDs() []EngineID {
	out := make([]EngineID, 0, len(All))
	for id := range All {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MemoryIDs returns the sorted list of engines that can be opened in-memory.
func MemoryIDs() []EngineID {
	out := make([]EngineID, 0, len(All))
	for id, cap := range All {
		if cap.HasMemoryMode {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
