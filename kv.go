package statdb

import (
	"go.etcd.io/bbolt"
)

// Low-level typed primitives, one (key type, value type) pairing each.
// Every call spans exactly one transaction. A nil table degrades to the
// "unavailable" sentinel of the result type instead of panicking.

// getInt32ByStr returns the int32 stored under a string key, or -1 when the
// key is absent.
func (db *DB) getInt32ByStr(tbl *table, key string) int32 {
	if tbl == nil {
		return -1
	}
	ret := int32(-1)
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeStrKey(key)); data != nil {
			ret = decodeI32(data)
		}
	})
	return ret
}

// getInt32ByInt returns the int32 stored under an int key, or 0 when the key
// is absent. 0 is therefore ambiguous with a stored zero; callers that care
// must not store zeroes.
func (db *DB) getInt32ByInt(tbl *table, key int32) int32 {
	if tbl == nil {
		return -1
	}
	var ret int32
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeIntKey(key)); data != nil {
			ret = decodeI32(data)
		}
	})
	return ret
}

// getUint64ByInt returns the uint64 stored under an int key, or 0 when the
// key is absent (same ambiguity as getInt32ByInt).
func (db *DB) getUint64ByInt(tbl *table, key int32) uint64 {
	if tbl == nil {
		return 0
	}
	var ret uint64
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeIntKey(key)); data != nil {
			ret = decodeU64(data)
		}
	})
	return ret
}

// getUint64ByStr returns the uint64 stored under a string key, or 0 when
// the key is absent.
func (db *DB) getUint64ByStr(tbl *table, key string) uint64 {
	if tbl == nil {
		return 0
	}
	var ret uint64
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeStrKey(key)); data != nil {
			ret = decodeU64(data)
		}
	})
	return ret
}

// getStrByStr returns the string stored under a string key, or "" when the
// key is absent.
func (db *DB) getStrByStr(tbl *table, key string) string {
	if tbl == nil {
		return ""
	}
	var ret string
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeStrKey(key)); data != nil {
			ret = decodeStrVal(data)
		}
	})
	return ret
}

// getStrByInt returns the string stored under an int key, or "" when the key
// is absent.
func (db *DB) getStrByInt(tbl *table, key int32) string {
	if tbl == nil {
		return ""
	}
	var ret string
	db.view(func(btx *bbolt.Tx) {
		if data := bucketOf(btx, tbl).Get(encodeIntKey(key)); data != nil {
			ret = decodeStrVal(data)
		}
	})
	return ret
}

func (db *DB) putInt32ByStr(tbl *table, key string, value int32) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		k := encodeStrKey(key)
		if err := bucketOf(btx, tbl).Put(k, encodeI32(value)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

func (db *DB) putStrByInt(tbl *table, key int32, value string) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		k := encodeIntKey(key)
		if err := bucketOf(btx, tbl).Put(k, encodeStrVal(value)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

func (db *DB) putStrByStr(tbl *table, key string, value string) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		k := encodeStrKey(key)
		if err := bucketOf(btx, tbl).Put(k, encodeStrVal(value)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

func (db *DB) putInt32ByInt(tbl *table, key int32, value int32) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		k := encodeIntKey(key)
		if err := bucketOf(btx, tbl).Put(k, encodeI32(value)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

func (db *DB) putUint64ByInt(tbl *table, key int32, value uint64) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		k := encodeIntKey(key)
		if err := bucketOf(btx, tbl).Put(k, encodeU64(value)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

// addInt32ByInt adds inc to the int32 under an int key, starting from 0 when
// the key is absent. The read-modify-write spans one transaction, so it is
// atomic with respect to the engine's single-writer serialization only.
func (db *DB) addInt32ByInt(tbl *table, key int32, inc int32) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		b := bucketOf(btx, tbl)
		k := encodeIntKey(key)
		ret := inc
		if data := b.Get(k); data != nil {
			ret = decodeI32(data) + inc
		}
		if err := b.Put(k, encodeI32(ret)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

// addUint64ByInt is addInt32ByInt for uint64 values.
func (db *DB) addUint64ByInt(tbl *table, key int32, inc uint64) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		b := bucketOf(btx, tbl)
		k := encodeIntKey(key)
		ret := inc
		if data := b.Get(k); data != nil {
			ret = decodeU64(data) + inc
		}
		if err := b.Put(k, encodeU64(ret)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

// addUint64ByStr is addUint64ByInt for string keys.
func (db *DB) addUint64ByStr(tbl *table, key string, inc uint64) {
	if tbl == nil {
		return
	}
	db.update(func(btx *bbolt.Tx) {
		b := bucketOf(btx, tbl)
		k := encodeStrKey(key)
		ret := inc
		if data := b.Get(k); data != nil {
			ret = decodeU64(data) + inc
		}
		if err := b.Put(k, encodeU64(ret)); err != nil {
			panic(tableErrf(tbl, k, err, "put"))
		}
	})
}

// tableSize returns the engine's entry count for the table. Also the basis
// for the next interning id.
func (db *DB) tableSize(tbl *table) int {
	if tbl == nil {
		return 0
	}
	var size int
	db.view(func(btx *bbolt.Tx) {
		size = bucketOf(btx, tbl).Stats().KeyN
	})
	return size
}
