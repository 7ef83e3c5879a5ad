package report

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// DB wraps a SQLite database holding an exported run.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			version TEXT NOT NULL,
			fingerprint TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			title TEXT,
			status TEXT,
			url TEXT,
			tags TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_nodes_kind ON nodes(kind);

		CREATE TABLE IF NOT EXISTS edges (
			source_id TEXT NOT NULL,
			target_id TEXT NOT NULL,
			PRIMARY KEY (source_id, target_id)
		);

		CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target_id);

		CREATE TABLE IF NOT EXISTS issues (
			seq INTEGER PRIMARY KEY,
			severity TEXT NOT NULL,
			code TEXT NOT NULL,
			subject TEXT NOT NULL,
			detail TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_issues_subject ON issues(subject);
	`

	_, err := db.Exec(schema)
	return err
}

// ExportSQLite writes a fresh database at path. An existing file is replaced.
func ExportSQLite(path, version string, g *graph.Graph, issues []issue.Issue) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing old database: %w", err)
	}

	db, err := OpenDB(path)
	if err != nil {
		return err
	}
	if err := db.Write(version, g, issues); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

// Write stores the graph and issues of one run in a single transaction,
// replacing whatever the tables held.
func (d *DB) Write(version string, g *graph.Graph, issues []issue.Issue) error {
	fp, err := Fingerprint(issues)
	if err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"runs", "nodes", "edges", "issues"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO runs (version, fingerprint) VALUES (?, ?)`, version, fp); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	if err := insertNodes(tx, g); err != nil {
		return err
	}
	if err := insertEdges(tx, g); err != nil {
		return err
	}
	if err := insertIssues(tx, issues); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertNodes(tx *sql.Tx, g *graph.Graph) error {
	stmt, err := tx.Prepare(`
		INSERT INTO nodes (id, kind, title, status, url, tags)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing nodes insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range g.IDs() {
		n, _ := g.Node(id)
		_, err := stmt.Exec(
			string(id), n.Kind().String(),
			nullableString(n.Title), nullableString(n.Status), nullableString(n.URL),
			nullableString(strings.Join(n.Tags, ",")),
		)
		if err != nil {
			return fmt.Errorf("inserting node %s: %w", id, err)
		}
	}
	return nil
}

func insertEdges(tx *sql.Tx, g *graph.Graph) error {
	stmt, err := tx.Prepare(`INSERT INTO edges (source_id, target_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edges insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range g.Edges() {
		if _, err := stmt.Exec(string(e.From), string(e.To)); err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return nil
}

func insertIssues(tx *sql.Tx, issues []issue.Issue) error {
	stmt, err := tx.Prepare(`
		INSERT INTO issues (seq, severity, code, subject, detail)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing issues insert: %w", err)
	}
	defer stmt.Close()

	for i, iss := range issues {
		_, err := stmt.Exec(i, iss.Severity.String(), iss.Code.String(), string(iss.Subject), iss.Detail)
		if err != nil {
			return fmt.Errorf("inserting issue %d: %w", i, err)
		}
	}
	return nil
}

// IssuesFor returns the stored issues about one node, in run order.
func (d *DB) IssuesFor(subject node.ID) ([]issue.Issue, error) {
	rows, err := d.db.Query(`
		SELECT severity, code, subject, detail
		FROM issues
		WHERE subject = ?
		ORDER BY seq`, string(subject))
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer rows.Close()

	var out []issue.Issue
	for rows.Next() {
		var sev, code, subj, detail string
		if err := rows.Scan(&sev, &code, &subj, &detail); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		s, err := issue.ParseSeverity(sev)
		if err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		out = append(out, issue.New(s, issue.CodeFromRule(code), node.ID(subj), detail))
	}
	return out, rows.Err()
}

// CountRows returns the number of rows in one of the export tables.
func (d *DB) CountRows(table string) (int, error) {
	switch table {
	case "runs", "nodes", "edges", "issues":
	default:
		return 0, fmt.Errorf("unknown table: %s", table)
	}
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
