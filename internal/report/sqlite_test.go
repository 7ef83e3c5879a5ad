package report

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	g := testGraph()

	if err := ExportSQLite(path, "1.0", g, testIssues()); err != nil {
		t.Fatalf("ExportSQLite() error = %v", err)
	}

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	counts := map[string]int{
		"runs":   1,
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
		"issues": len(testIssues()),
	}
	for table, want := range counts {
		got, err := db.CountRows(table)
		if err != nil {
			t.Fatalf("CountRows(%s) error = %v", table, err)
		}
		if got != want {
			t.Errorf("CountRows(%s) = %d, want %d", table, got, want)
		}
	}

	got, err := db.IssuesFor("TEST_1")
	if err != nil {
		t.Fatalf("IssuesFor() error = %v", err)
	}
	if !slices.Equal(got, testIssues()[1:2]) {
		t.Errorf("IssuesFor(TEST_1) = %v, want %v", got, testIssues()[1:2])
	}
}

func TestExportSQLite_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	if err := os.WriteFile(path, []byte("not a database"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ExportSQLite(path, "1.0", testGraph(), testIssues()); err != nil {
		t.Fatalf("first export error = %v", err)
	}
	if err := ExportSQLite(path, "1.0", testGraph(), testIssues()[:1]); err != nil {
		t.Fatalf("second export error = %v", err)
	}

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	n, err := db.CountRows("issues")
	if err != nil {
		t.Fatalf("CountRows() error = %v", err)
	}
	if n != 1 {
		t.Errorf("issues rows = %d, want 1 after re-export", n)
	}
}

func TestCountRows_UnknownTable(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "x.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	if _, err := db.CountRows("sqlite_master; DROP TABLE nodes"); err == nil {
		t.Error("CountRows() expected error for unknown table")
	}
}
