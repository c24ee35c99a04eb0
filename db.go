package statdb

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// DefaultPath is used when no environment directory is configured.
	DefaultPath = "/tmp"

	envFileName = "statdb.env"
)

// DB owns the storage environment and every table handle. Construct it once
// with Open and pass it to whatever needs storage; there is no hidden global.
// All methods are safe for concurrent use; the engine serializes writers.
type DB struct {
	bdb     *bbolt.DB
	logf    func(format string, args ...any)
	verbose bool

	numericAsc bool
	modules    []Module

	agentKeys  *table
	agentVals  *table
	genStats   *table
	hostnames  *table
	uniqueKeys *table

	mtrcTables [moduleCount][mtrcCount]*table
}

type Options struct {
	// Path is the directory holding the environment. It must already exist
	// and be a directory; when empty, DefaultPath is used.
	Path string

	// Modules to create metric tables for. Nil means all known modules.
	Modules []Module

	// NumericAscending flips numeric exports from the default
	// highest-value-first order.
	NumericAscending bool

	Logf      func(format string, args ...any)
	Verbose   bool
	IsTesting bool
	MmapSize  int
}

// Open validates the environment directory, opens the engine and creates
// the full table schema in one setup transaction. A partial schema is not a
// supported state, so any creation failure fails Open as a whole.
func Open(opt Options) (*DB, error) {
	path := opt.Path
	if path == "" {
		path = DefaultPath
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, envErrf("unable to access database path", err)
	}
	if !info.IsDir() {
		return nil, envErrf("open", fmt.Errorf("database path %s is not a directory", path))
	}

	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	bopt.NoSync = true
	if opt.IsTesting {
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.InitialMmapSize = 1024 * 1024 * 1024
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(filepath.Join(path, envFileName), 0666, bopt)
	if err != nil {
		return nil, envErrf("open", err)
	}

	modules := opt.Modules
	if modules == nil {
		modules = AllModules()
	}

	db := &DB{
		bdb:        bdb,
		logf:       opt.Logf,
		verbose:    opt.Verbose,
		numericAsc: opt.NumericAscending,
		modules:    modules,
	}

	db.agentKeys = &table{makeBucketName(dbAgentKeys)}
	db.agentVals = &table{makeBucketName(dbAgentVals)}
	db.genStats = &table{makeBucketName(dbGenStats)}
	db.hostnames = &table{makeBucketName(dbHostnames)}
	db.uniqueKeys = &table{makeBucketName(dbUniqueKeys)}
	for _, module := range modules {
		if module >= moduleCount {
			bdb.Close()
			return nil, envErrf("open", fmt.Errorf("unknown module %d", module))
		}
		for mtrc := Metric(0); mtrc < mtrcCount; mtrc++ {
			db.mtrcTables[module][mtrc] = &table{makeMetricBucketName(mtrc, module)}
		}
	}

	err = bdb.Update(func(btx *bbolt.Tx) error {
		for _, tbl := range db.allTables() {
			if _, err := btx.CreateBucketIfNotExists(tbl.buck.Raw()); err != nil {
				return tableErrf(tbl, nil, err, "create")
			}
		}
		return nil
	})
	if err != nil {
		bdb.Close()
		return nil, err
	}

	db.logvf("opened environment at %s with %d modules", path, len(modules))
	return db, nil
}

func (db *DB) allTables() []*table {
	tables := []*table{db.agentKeys, db.agentVals, db.genStats, db.hostnames, db.uniqueKeys}
	for _, module := range db.modules {
		for mtrc := Metric(0); mtrc < mtrcCount; mtrc++ {
			tables = append(tables, db.mtrcTables[module][mtrc])
		}
	}
	return tables
}

// Bolt exposes the underlying engine handle.
func (db *DB) Bolt() *bbolt.DB {
	return db.bdb
}

func (db *DB) Close() {
	err := db.bdb.Close()
	if err != nil {
		panic(envErrf("closing", err))
	}
}

// resolve returns the table backing (module, metric), or nil when the
// module was not enabled at Open. A nil receiver also resolves to nil so
// that accessors degrade to their "unavailable" sentinels instead of
// crashing when storage was never set up.
func (db *DB) resolve(module Module, mtrc Metric) *table {
	if db == nil || module >= moduleCount || mtrc >= mtrcCount {
		return nil
	}
	return db.mtrcTables[module][mtrc]
}

func (db *DB) global(pick func(db *DB) *table) *table {
	if db == nil {
		return nil
	}
	return pick(db)
}

// sync flushes the environment to disk. The environment runs with NoSync,
// so this is the durability barrier taken before bulk exports.
func (db *DB) sync() {
	if err := db.bdb.Sync(); err != nil {
		panic(envErrf("sync", err))
	}
}

func (db *DB) logvf(format string, args ...any) {
	if !db.verbose || db.logf == nil {
		return
	}
	db.logf(format, args...)
}
