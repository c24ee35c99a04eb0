package statdb

import (
	"go.etcd.io/bbolt"

	"github.com/vmihailenco/msgpack/v5"
)

const genStatsKey = "general_stats"

// GeneralStats holds the whole-run parser totals persisted across restarts
// in the general-stats table.
type GeneralStats struct {
	TotalRequests  uint64 `msgpack:"tr"`
	ValidRequests  uint64 `msgpack:"vr"`
	FailedRequests uint64 `msgpack:"fr"`
	ExcludedHits   uint64 `msgpack:"xh"`
	ProcessingTime uint64 `msgpack:"pt"`
	LogSize        uint64 `msgpack:"ls"`
}

// SaveGeneralStats replaces the persisted totals.
func (db *DB) SaveGeneralStats(gs *GeneralStats) bool {
	tbl := db.global(func(db *DB) *table { return db.genStats })
	if tbl == nil {
		return false
	}
	data := must(msgpack.Marshal(gs))
	db.update(func(btx *bbolt.Tx) {
		k := encodeStrKey(genStatsKey)
		if err := bucketOf(btx, tbl).Put(k, data); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
	return true
}

// LoadGeneralStats returns the persisted totals, or nil when none were ever
// saved.
func (db *DB) LoadGeneralStats() *GeneralStats {
	tbl := db.global(func(db *DB) *table { return db.genStats })
	if tbl == nil {
		return nil
	}
	var gs *GeneralStats
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeStrKey(genStatsKey)); data != nil {
			gs = new(GeneralStats)
			ensure(msgpack.Unmarshal(data, gs))
		}
	})
	return gs
}
