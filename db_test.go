package statdb

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setup(t testing.TB, modules ...Module) *DB {
	t.Helper()
	db := must(Open(Options{
		Path:      t.TempDir(),
		Modules:   modules,
		IsTesting: true,
	}))
	t.Cleanup(db.Close)
	return db
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func TestOpenMissingPath(t *testing.T) {
	_, err := Open(Options{Path: filepath.Join(t.TempDir(), "nope"), IsTesting: true})
	if err == nil {
		t.Fatal("** expected error for missing path")
	}
}

func TestOpenPathNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	ensure(os.WriteFile(file, []byte("x"), 0666))
	_, err := Open(Options{Path: file, IsTesting: true})
	if err == nil {
		t.Fatal("** expected error for non-directory path")
	}
}

func TestOpenAllModulesByDefault(t *testing.T) {
	db := setup(t)
	for _, m := range AllModules() {
		eq(t, db.InsertHits(m, 1, 1), true)
	}
}

func TestOpenModuleSubset(t *testing.T) {
	db := setup(t, Hosts)

	eq(t, db.InsertHits(Hosts, 1, 1), true)

	eq(t, db.InsertHits(Browsers, 1, 1), false)
	eq(t, db.GetHits(Browsers, 1), -1)
	eq(t, db.InsertKeymap(Browsers, "k"), -1)
	eq(t, db.GetDatamap(Browsers, 1), "")
	if db.Export(Browsers) != nil {
		t.Error("** expected nil export for disabled module")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	opt := Options{Path: dir, Modules: []Module{Hosts}, IsTesting: true}

	db := must(Open(opt))
	eq(t, db.InsertKeymap(Hosts, "10.0.0.1"), 1)
	db.InsertHits(Hosts, 1, 7)
	db.Close()

	db = must(Open(opt))
	defer db.Close()
	eq(t, db.InsertKeymap(Hosts, "10.0.0.1"), 1)
	eq(t, db.GetHits(Hosts, 1), int32(7))
}

func TestNilStorageIsUnavailable(t *testing.T) {
	var db *DB
	eq(t, db.InsertKeymap(Hosts, "k"), -1)
	eq(t, db.InsertAgentKey("agent"), -1)
	eq(t, db.InsertHits(Hosts, 1, 1), false)
	eq(t, db.InsertDatamap(Hosts, 1, "v"), false)
	eq(t, db.GetHits(Hosts, 1), -1)
	eq(t, db.GetBW(Hosts, 1), uint64(0))
	eq(t, db.GetDatamap(Hosts, 1), "")
	eq(t, db.GetHostname("10.0.0.1"), "")
	eq(t, db.UniqmapSize(Hosts), uint32(0))
	if db.Export(Hosts) != nil {
		t.Error("** expected nil export")
	}
	if db.LoadGeneralStats() != nil {
		t.Error("** expected nil stats")
	}
}

// The whole pipeline in miniature: intern agents, accumulate hits, export.
func TestEndToEnd(t *testing.T) {
	db := setup(t, Hosts)

	eq(t, db.InsertAgentKey("firefox"), 1)
	eq(t, db.InsertAgentKey("chrome"), 2)
	eq(t, db.InsertAgentKey("firefox"), 1)

	db.InsertHits(Hosts, 1, 3)
	db.InsertHits(Hosts, 1, 5)
	eq(t, db.GetHits(Hosts, 1), int32(8))

	raw := db.Export(Hosts)
	eq(t, raw.Module, Hosts)
	eq(t, raw.Type, Numeric)
	deepEqual(t, raw.Items, []RawItem{{Key: 1, Num: 8}})
}
