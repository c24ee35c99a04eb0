package statdb

import (
	"context"
	"sort"

	"go.etcd.io/bbolt"
	"golang.org/x/sync/errgroup"
)

// DataType says which RawItem field carries the exported value.
type DataType int

const (
	Numeric DataType = iota
	String
)

// RawData is one table materialized for reporting. Ownership passes fully
// to the caller.
type RawData struct {
	Module Module
	Type   DataType
	Items  []RawItem
}

// RawItem is one exported entry. Num is set for Numeric exports, Str for
// String exports.
type RawItem struct {
	Key int32
	Num int32
	Str string
}

// Export materializes the module's reporting table into a sorted array:
// the datamap (string values, sorted lexicographically ascending) for the
// visitors module, the hits table (numeric values, sorted by value,
// descending unless NumericAscending was set) for every other module.
// Returns nil when the module's tables are unavailable.
//
// The environment is synced first so everything written before the call is
// durable and visible to the scan.
func (db *DB) Export(module Module) *RawData {
	if db == nil {
		return nil
	}
	db.sync()
	return db.export(module)
}

// ExportAll exports every enabled module, one concurrent read transaction
// per module, after a single durability barrier.
func (db *DB) ExportAll(ctx context.Context) ([]*RawData, error) {
	if db == nil {
		return nil, nil
	}
	db.sync()

	g, ctx := errgroup.WithContext(ctx)
	out := make([]*RawData, len(db.modules))
	for i, module := range db.modules {
		i, module := i, module
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = db.export(module)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (db *DB) export(module Module) *RawData {
	switch module {
	case Visitors:
		return db.exportStr(module)
	default:
		return db.exportNum(module)
	}
}

// exportNum scans the hits table into a RawData array and sorts it by
// value. The entry count is taken inside the scan transaction, so the
// array is sized exactly; growth during the scan is not a supported case.
func (db *DB) exportNum(module Module) *RawData {
	tbl := db.resolve(module, MtrcHits)
	if tbl == nil {
		return nil
	}

	raw := &RawData{Module: module, Type: Numeric}
	db.view(func(btx *bbolt.Tx) {
		b := bucketOf(btx, tbl)
		raw.Items = make([]RawItem, 0, b.Stats().KeyN)
		ensure(b.ForEach(func(k, v []byte) error {
			raw.Items = append(raw.Items, RawItem{Key: decodeI32(k), Num: decodeI32(v)})
			return nil
		}))
	})
	db.logvf("exported %d numeric items for %s", len(raw.Items), module)

	if db.numericAsc {
		sort.SliceStable(raw.Items, func(i, j int) bool {
			return raw.Items[i].Num < raw.Items[j].Num
		})
	} else {
		sort.SliceStable(raw.Items, func(i, j int) bool {
			return raw.Items[i].Num > raw.Items[j].Num
		})
	}
	return raw
}

// exportStr scans the datamap into a RawData array and sorts it by value,
// lexicographically ascending.
func (db *DB) exportStr(module Module) *RawData {
	tbl := db.resolve(module, MtrcDatamap)
	if tbl == nil {
		return nil
	}

	raw := &RawData{Module: module, Type: String}
	db.view(func(btx *bbolt.Tx) {
		b := bucketOf(btx, tbl)
		raw.Items = make([]RawItem, 0, b.Stats().KeyN)
		ensure(b.ForEach(func(k, v []byte) error {
			raw.Items = append(raw.Items, RawItem{Key: decodeI32(k), Str: decodeStrVal(v)})
			return nil
		}))
	})
	db.logvf("exported %d string items for %s", len(raw.Items), module)

	sort.SliceStable(raw.Items, func(i, j int) bool {
		return raw.Items[i].Str < raw.Items[j].Str
	})
	return raw
}
