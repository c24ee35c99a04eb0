package statdb

// internNext assigns the next dense id to a never-seen key: the table's
// current entry count plus one, so ids stay 1-based and contiguous in
// first-come-first-served order.
//
// The size read and the insert span two separate transactions. Two writers
// interning different never-seen keys concurrently can compute the same id;
// the single-writer parsing pipeline this layer serves never does that, and
// the behavior is kept as-is rather than papered over with a sequence
// counter the on-disk format does not have.
func (db *DB) internNext(tbl *table, key string) int32 {
	if tbl == nil {
		return -1
	}
	value := int32(db.tableSize(tbl)) + 1
	db.putInt32ByStr(tbl, key, value)
	return value
}

// intern returns the id already assigned to key, or assigns the next one.
// Once assigned, a key's id never changes for the lifetime of the table.
func (db *DB) intern(tbl *table, key string) int32 {
	if tbl == nil {
		return -1
	}
	if value := db.getInt32ByStr(tbl, key); value != -1 {
		return value
	}
	return db.internNext(tbl, key)
}
