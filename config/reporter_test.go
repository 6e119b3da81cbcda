package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func archiveNames(t *testing.T, path string) map[string]bool {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func TestReport_StoreAndClose(t *testing.T) {
	tmpDir := t.TempDir()

	stored := filepath.Join(tmpDir, "input.yaml")
	if err := os.WriteFile(stored, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.Store("input/input.yaml", stored)
	r.StoreData("output/selectors.yaml", []byte("link: a\n"))
	r.Store("missing.log", filepath.Join(tmpDir, "does-not-exist.log"))

	name := r.Name()
	if name == "" {
		t.Fatal("Name() returned empty string")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	names := archiveNames(t, name)
	if !names["MANIFEST"] {
		t.Error("archive missing MANIFEST")
	}
	if !names["input/input.yaml"] {
		t.Error("archive missing stored file")
	}
	if !names["output/selectors.yaml"] {
		t.Error("archive missing stored data")
	}
	// absent files are quietly skipped
	if names["missing.log"] {
		t.Error("archive should not contain entry for missing file")
	}
}

func TestReport_NilIsUsable(t *testing.T) {
	var r *Report

	// every operation on an uninitialized report is a no-op
	r.Store("a", "b")
	r.StoreData("c", []byte("d"))
	if got := r.Name(); got != "" {
		t.Errorf("Name() on nil report = %q, want empty", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}
}

func TestReport_StoreDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overwriting stored data")
		}
	}()

	r := &Report{entries: make(map[string]entry)}
	r.StoreData("same", []byte("one"))
	r.StoreData("same", []byte("two"))
}
