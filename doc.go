/*
Package statdb implements durable per-module statistics storage for a log
analytics pipeline on top of a key-value store (in this case, on top of Bolt).

We implement:

1. A fixed table schema: five global tables shared by the whole application
(user agents, hostnames, general stats, unique visitor keys) plus fourteen
metric tables per analysis module, all created in a single setup transaction
when the environment is opened.

2. Typed accessors over those tables: get, insert-if-absent, unconditional
insert, accumulate (read-add-write) and max-tracking, each running inside
exactly one engine transaction.

3. String interning, assigning dense 1-based integer ids to strings on first
sight (request paths, user agents, visitor keys) so every other table can be
keyed by a fixed-width integer.

4. Bulk export, materializing a whole table into a sorted in-memory array
for report rendering.

# Technical Details

**Buckets.**
Each table is a Bolt bucket. Global buckets are named db_<purpose>; per-module
metric buckets are named db_<metric>-m<module-index>. These names are part of
the on-disk contract and must not change.

## Binary encoding

**String keys** are stored as their raw bytes with no terminator; the key
length is the string length.

**String values** are stored with a trailing NUL so they can be re-read as
text without an out-of-band length.

**Integer keys and values** are fixed-width native-endian: 4 bytes for int32,
8 bytes for uint64. Values do not self-describe; a table's value type is
fixed by its metric, and readers must know it.

# Error model

Engine failures (begin, commit, put, stat, sync) are not recoverable in this
design and panic with a typed error. A lookup miss is an ordinary result
signaled by a sentinel (-1, 0 or ""), as is asking for a table of a module
that was not enabled at Open.
*/
package statdb
