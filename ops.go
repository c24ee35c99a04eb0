package statdb

// Public per-metric surface. Insert* operations report false only when the
// target table is unavailable (storage not set up, or the module was not
// enabled at Open); that is the single recoverable error class. Lookup
// misses come back as sentinels: -1 for interned ids, 0 for counters, ""
// for strings.

// InsertUniqueKey interns a unique visitor key, returning its 1-based id.
func (db *DB) InsertUniqueKey(key string) int32 {
	return db.intern(db.global(func(db *DB) *table { return db.uniqueKeys }), key)
}

// InsertAgentKey interns a user agent string, returning its 1-based id.
func (db *DB) InsertAgentKey(key string) int32 {
	return db.intern(db.global(func(db *DB) *table { return db.agentKeys }), key)
}

// InsertAgentValue stores the agent string for an interned agent id.
func (db *DB) InsertAgentValue(key int32, value string) bool {
	tbl := db.global(func(db *DB) *table { return db.agentVals })
	if tbl == nil {
		return false
	}
	db.putStrByInt(tbl, key, value)
	return true
}

// GetAgentValue returns the agent string for an interned agent id, or "".
func (db *DB) GetAgentValue(key int32) string {
	return db.getStrByInt(db.global(func(db *DB) *table { return db.agentVals }), key)
}

// InsertHostname stores the resolved hostname for an IP.
func (db *DB) InsertHostname(host string, hostname string) bool {
	tbl := db.global(func(db *DB) *table { return db.hostnames })
	if tbl == nil {
		return false
	}
	db.putStrByStr(tbl, host, hostname)
	return true
}

// GetHostname returns the resolved hostname for an IP, or "".
func (db *DB) GetHostname(host string) string {
	return db.getStrByStr(db.global(func(db *DB) *table { return db.hostnames }), host)
}

// InsertKeymap interns a module-level record key, returning its 1-based id
// within the module, or -1 when the table is unavailable.
func (db *DB) InsertKeymap(module Module, key string) int32 {
	return db.intern(db.resolve(module, MtrcKeymap), key)
}

// InsertUniqmap interns a visitor-uniqueness key. Unlike InsertKeymap it
// returns 0 for a key that was already present, so callers can tell a first
// sighting (fresh id) from a repeat (0).
func (db *DB) InsertUniqmap(module Module, key string) int32 {
	tbl := db.resolve(module, MtrcUniqmap)
	if tbl == nil {
		return -1
	}
	if db.getInt32ByStr(tbl, key) != -1 {
		return 0
	}
	return db.internNext(tbl, key)
}

// InsertDatamap stores the display string for a record id, replacing any
// previous value.
func (db *DB) InsertDatamap(module Module, key int32, value string) bool {
	tbl := db.resolve(module, MtrcDatamap)
	if tbl == nil {
		return false
	}
	db.putStrByInt(tbl, key, value)
	return true
}

// InsertRootmap stores the display string for a root id, replacing any
// previous value.
func (db *DB) InsertRootmap(module Module, key int32, value string) bool {
	tbl := db.resolve(module, MtrcRootmap)
	if tbl == nil {
		return false
	}
	db.putStrByInt(tbl, key, value)
	return true
}

// InsertRoot links a record id to its root id, replacing any previous link.
func (db *DB) InsertRoot(module Module, key int32, value int32) bool {
	tbl := db.resolve(module, MtrcRoot)
	if tbl == nil {
		return false
	}
	db.putInt32ByInt(tbl, key, value)
	return true
}

// InsertHits accumulates hits for a record id.
func (db *DB) InsertHits(module Module, key int32, inc int32) bool {
	tbl := db.resolve(module, MtrcHits)
	if tbl == nil {
		return false
	}
	db.addInt32ByInt(tbl, key, inc)
	return true
}

// InsertVisitor accumulates the visitor count for a record id.
func (db *DB) InsertVisitor(module Module, key int32, inc int32) bool {
	tbl := db.resolve(module, MtrcVisitors)
	if tbl == nil {
		return false
	}
	db.addInt32ByInt(tbl, key, inc)
	return true
}

// InsertBW accumulates bandwidth for a record id.
func (db *DB) InsertBW(module Module, key int32, inc uint64) bool {
	tbl := db.resolve(module, MtrcBW)
	if tbl == nil {
		return false
	}
	db.addUint64ByInt(tbl, key, inc)
	return true
}

// InsertCumTS accumulates the cumulative serve time for a record id.
func (db *DB) InsertCumTS(module Module, key int32, inc uint64) bool {
	tbl := db.resolve(module, MtrcCumTS)
	if tbl == nil {
		return false
	}
	db.addUint64ByInt(tbl, key, inc)
	return true
}

// InsertMaxTS records value as the max serve time for a record id when it
// exceeds the stored one. The read and the conditional write are separate
// transactions, so concurrent callers on the same key can lose a larger
// candidate; calls are expected to be serial.
func (db *DB) InsertMaxTS(module Module, key int32, value uint64) bool {
	tbl := db.resolve(module, MtrcMaxTS)
	if tbl == nil {
		return false
	}
	if db.getUint64ByInt(tbl, key) < value {
		db.putUint64ByInt(tbl, key, value)
	}
	return true
}

// InsertMethod stores the HTTP method for a record id, replacing any
// previous value.
func (db *DB) InsertMethod(module Module, key int32, value string) bool {
	tbl := db.resolve(module, MtrcMethods)
	if tbl == nil {
		return false
	}
	db.putStrByInt(tbl, key, value)
	return true
}

// InsertProtocol stores the HTTP protocol for a record id, replacing any
// previous value.
func (db *DB) InsertProtocol(module Module, key int32, value string) bool {
	tbl := db.resolve(module, MtrcProtocols)
	if tbl == nil {
		return false
	}
	db.putStrByInt(tbl, key, value)
	return true
}

// InsertMetaData accumulates a named module-level counter.
func (db *DB) InsertMetaData(module Module, key string, value uint64) bool {
	tbl := db.resolve(module, MtrcMetadata)
	if tbl == nil {
		return false
	}
	db.addUint64ByStr(tbl, key, value)
	return true
}

// GetMetaData returns a named module-level counter, or 0.
func (db *DB) GetMetaData(module Module, key string) uint64 {
	return db.getUint64ByStr(db.resolve(module, MtrcMetadata), key)
}

// GetDatamap returns the display string for a record id, or "".
func (db *DB) GetDatamap(module Module, key int32) string {
	return db.getStrByInt(db.resolve(module, MtrcDatamap), key)
}

// GetMethod returns the HTTP method for a record id, or "".
func (db *DB) GetMethod(module Module, key int32) string {
	return db.getStrByInt(db.resolve(module, MtrcMethods), key)
}

// GetProtocol returns the HTTP protocol for a record id, or "".
func (db *DB) GetProtocol(module Module, key int32) string {
	return db.getStrByInt(db.resolve(module, MtrcProtocols), key)
}

// GetHits returns the hit count for a record id: 0 when the id has no hits,
// -1 when the table is unavailable.
func (db *DB) GetHits(module Module, key int32) int32 {
	return db.getInt32ByInt(db.resolve(module, MtrcHits), key)
}

// GetVisitors returns the visitor count for a record id (same sentinels as
// GetHits).
func (db *DB) GetVisitors(module Module, key int32) int32 {
	return db.getInt32ByInt(db.resolve(module, MtrcVisitors), key)
}

// GetBW returns the accumulated bandwidth for a record id, or 0.
func (db *DB) GetBW(module Module, key int32) uint64 {
	return db.getUint64ByInt(db.resolve(module, MtrcBW), key)
}

// GetCumTS returns the cumulative serve time for a record id, or 0.
func (db *DB) GetCumTS(module Module, key int32) uint64 {
	return db.getUint64ByInt(db.resolve(module, MtrcCumTS), key)
}

// GetMaxTS returns the max serve time for a record id, or 0.
func (db *DB) GetMaxTS(module Module, key int32) uint64 {
	return db.getUint64ByInt(db.resolve(module, MtrcMaxTS), key)
}

// GetRoot returns the root display string for a record id: the root link is
// read from the root table, then resolved through the rootmap. Returns ""
// when the record has no root.
func (db *DB) GetRoot(module Module, key int32) string {
	root := db.resolve(module, MtrcRoot)
	rootmap := db.resolve(module, MtrcRootmap)
	if root == nil || rootmap == nil {
		return ""
	}
	rootKey := db.getInt32ByInt(root, key)
	if rootKey <= 0 {
		return ""
	}
	return db.getStrByInt(rootmap, rootKey)
}

// UniqmapSize returns the number of interned visitor-uniqueness keys.
func (db *DB) UniqmapSize(module Module) uint32 {
	return uint32(db.tableSize(db.resolve(module, MtrcUniqmap)))
}

// DatamapSize returns the number of stored display strings.
func (db *DB) DatamapSize(module Module) uint32 {
	return uint32(db.tableSize(db.resolve(module, MtrcDatamap)))
}
