package statdb

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statdb.yml")
	ensure(os.WriteFile(path, []byte(body), 0666))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
db_path: /var/lib/statdb
mmap_size_mb: 64
numeric_ascending: true
modules:
  - visitors
  - hosts
`)
	cfg := must(LoadConfig(path))
	eq(t, cfg.DBPath, "/var/lib/statdb")
	eq(t, cfg.NumericAscending, true)

	opt := must(cfg.Options())
	eq(t, opt.Path, "/var/lib/statdb")
	eq(t, opt.MmapSize, 64*1024*1024)
	deepEqual(t, opt.Modules, []Module{Visitors, Hosts})
}

func TestLoadConfigEmptyModulesMeansAll(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp\n")
	cfg := must(LoadConfig(path))
	opt := must(cfg.Options())
	if opt.Modules != nil {
		t.Errorf("** got %v, wanted nil (all modules)", opt.Modules)
	}
}

func TestLoadConfigUnknownModule(t *testing.T) {
	path := writeConfig(t, "modules: [visitors, bogus]\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("** expected error for unknown module")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("** expected error for missing file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "modules: {not: [a, list\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("** expected error for malformed yaml")
	}
}

func TestConfigDrivesOpen(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "db_path: "+dir+"\nmodules: [hosts]\n")
	cfg := must(LoadConfig(path))
	opt := must(cfg.Options())
	opt.IsTesting = true

	db := must(Open(opt))
	defer db.Close()
	eq(t, db.InsertHits(Hosts, 1, 1), true)
	eq(t, db.InsertHits(Browsers, 1, 1), false)
}
