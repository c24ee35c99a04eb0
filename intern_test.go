package statdb

import (
	"fmt"
	"testing"
)

func TestInternIdsAreDenseAndStable(t *testing.T) {
	db := setup(t, Requests)

	const n = 50
	for i := 0; i < n; i++ {
		eq(t, db.InsertKeymap(Requests, fmt.Sprintf("/page/%d", i)), int32(i+1))
	}
	// repeats return the originally assigned id
	for i := 0; i < n; i++ {
		eq(t, db.InsertKeymap(Requests, fmt.Sprintf("/page/%d", i)), int32(i+1))
	}
}

func TestInternPerTableCounters(t *testing.T) {
	db := setup(t, Requests, Hosts)

	// each interning table numbers its keys independently
	eq(t, db.InsertKeymap(Requests, "/index.html"), 1)
	eq(t, db.InsertKeymap(Hosts, "10.0.0.1"), 1)
	eq(t, db.InsertAgentKey("firefox"), 1)
	eq(t, db.InsertUniqueKey("10.0.0.1|firefox|2026-08-29"), 1)

	eq(t, db.InsertKeymap(Requests, "/about.html"), 2)
	eq(t, db.InsertAgentKey("chrome"), 2)
}

func TestUniqmapRepeatReturnsZero(t *testing.T) {
	db := setup(t, Visitors)

	eq(t, db.InsertUniqmap(Visitors, "2026-08-29|10.0.0.1"), 1)
	eq(t, db.InsertUniqmap(Visitors, "2026-08-29|10.0.0.2"), 2)
	eq(t, db.InsertUniqmap(Visitors, "2026-08-29|10.0.0.1"), 0)
	eq(t, db.UniqmapSize(Visitors), uint32(2))
}

func TestSizeCountsDistinctInserts(t *testing.T) {
	db := setup(t, Visitors)

	const n = 10
	for i := 0; i < n; i++ {
		db.InsertUniqmap(Visitors, fmt.Sprintf("key-%d", i))
		db.InsertDatamap(Visitors, int32(i+1), fmt.Sprintf("val-%d", i))
	}
	// repeats and replacements do not change the counts
	db.InsertUniqmap(Visitors, "key-0")
	db.InsertDatamap(Visitors, 1, "val-0-replaced")

	eq(t, db.UniqmapSize(Visitors), uint32(n))
	eq(t, db.DatamapSize(Visitors), uint32(n))
}
