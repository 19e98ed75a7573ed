package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestNewTable(t *testing.T) {
	fsys := fstest.MapFS{
		"level00.txt": {Data: []byte("1 1\n@ \n##\n")},
		"level01.txt": {Data: []byte("1 1\n @\n##\n")},
	}

	tbl, err := NewTable(fsys, 2, "")
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if tbl.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", tbl.Count())
	}
	if tbl.Name(1) != "level01.txt" {
		t.Errorf("Name(1) = %q, expected level01.txt", tbl.Name(1))
	}
	if tbl.Name(2) != "" || tbl.Name(-1) != "" {
		t.Error("Name out of range should be empty")
	}

	data, err := tbl.Load(1)
	if err != nil {
		t.Fatalf("Load(1) failed: %v", err)
	}
	if string(data) != "1 1\n @\n##\n" {
		t.Errorf("Load(1) = %q", data)
	}

	if _, err := tbl.Load(2); !errors.Is(err, ErrNoSuchLevel) {
		t.Errorf("Load(2) error = %v, expected ErrNoSuchLevel", err)
	}

	if i, ok := tbl.Index("level01.txt"); !ok || i != 1 {
		t.Errorf("Index(level01.txt) = %d, %v; expected 1, true", i, ok)
	}
	if _, ok := tbl.Index("level09.txt"); ok {
		t.Error("Index of an unknown name should fail")
	}
}

func TestNewTableErrors(t *testing.T) {
	fsys := fstest.MapFS{}

	if _, err := NewTable(fsys, 0, ""); err == nil {
		t.Error("expected an error for a zero count")
	}
	if _, err := NewTable(fsys, 1, "../level%d.txt"); err == nil {
		t.Error("expected an error for a pattern escaping the directory")
	}
}

func TestTableMissingFile(t *testing.T) {
	tbl, err := NewTable(fstest.MapFS{}, 1, "stage-%d.lvl")
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if tbl.Name(0) != "stage-0.lvl" {
		t.Errorf("Name(0) = %q, expected stage-0.lvl", tbl.Name(0))
	}
	if _, err := tbl.Load(0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level00.txt"), []byte("1 1\n@ \n##\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Dir(dir, 1, "")
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if _, err := tbl.Load(0); err != nil {
		t.Errorf("Load(0) failed: %v", err)
	}

	if _, err := Dir(filepath.Join(dir, "missing"), 1, ""); err == nil {
		t.Error("expected an error for a missing directory")
	}
	if _, err := Dir(filepath.Join(dir, "level00.txt"), 1, ""); err == nil {
		t.Error("expected an error for a file instead of a directory")
	}
}

func TestEmbedded(t *testing.T) {
	tbl := Embedded()
	if tbl.Count() != DefaultCount {
		t.Fatalf("Count() = %d, expected %d", tbl.Count(), DefaultCount)
	}
	for i := 0; i < tbl.Count(); i++ {
		if _, err := tbl.Load(i); err != nil {
			t.Errorf("embedded level %d: %v", i, err)
		}
	}
}
