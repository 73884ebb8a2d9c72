// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists scan results into a SQLite index so conversion
// tooling can query sketches across many documents without re-reading the
// source archives, and serializes scanned sketches to YAML/JSON.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/fcsketch/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the sketch catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
}

// NewStore opens or creates the catalog database at
// catalogDir/catalog.db, creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, catalogDir: cfg.CatalogDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			scanned_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sketches (
			document TEXT NOT NULL REFERENCES documents(path),
			name TEXT NOT NULL,
			label TEXT,
			geometry_count INTEGER,
			external_count INTEGER,
			constraint_count INTEGER,
			fully_constrained INTEGER,
			PRIMARY KEY (document, name)
		)`,
		`CREATE TABLE IF NOT EXISTS geometry (
			document TEXT NOT NULL,
			sketch TEXT NOT NULL,
			idx INTEGER NOT NULL,
			kind TEXT NOT NULL,
			construction INTEGER,
			PRIMARY KEY (document, sketch, idx)
		)`,
		`CREATE TABLE IF NOT EXISTS constraints (
			document TEXT NOT NULL,
			sketch TEXT NOT NULL,
			idx INTEGER NOT NULL,
			kind TEXT NOT NULL,
			name TEXT,
			value REAL,
			driving INTEGER,
			PRIMARY KEY (document, sketch, idx)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sketches_name ON sketches(name)`,
		`CREATE INDEX IF NOT EXISTS idx_geometry_kind ON geometry(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IndexSummary holds counts from one catalog indexing run.
type IndexSummary struct {
	Sketches    int
	Geometry    int
	Constraints int
	Updated     bool
}

// IndexDocument replaces the catalog rows for the document at path with the
// given scan result, in a single transaction. Progress lines are written
// to w.
func (s *Store) IndexDocument(ctx context.Context, path string, sketches map[string]types.Sketch, w io.Writer) (IndexSummary, error) {
	var summary IndexSummary

	var existing int
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM documents WHERE path = ?`, path,
	).Scan(&existing); err != nil {
		return summary, fmt.Errorf("checking document: %w", err)
	}
	summary.Updated = existing > 0

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"geometry", "constraints", "sketches"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE document = ?`, table), path,
		); err != nil {
			return summary, fmt.Errorf("clearing %s rows: %w", table, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, scanned_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET scanned_at=excluded.scanned_at`,
		path, now,
	); err != nil {
		return summary, fmt.Errorf("upserting document: %w", err)
	}

	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sk := sketches[name]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sketches (document, name, label, geometry_count, external_count, constraint_count, fully_constrained)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			path, sk.Name, sk.Label, len(sk.Geometry), len(sk.ExternalGeo), len(sk.Constraints), sk.FullyConstrained,
		); err != nil {
			return summary, fmt.Errorf("inserting sketch %s: %w", sk.Name, err)
		}

		for i, g := range sk.Geometry {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO geometry (document, sketch, idx, kind, construction) VALUES (?, ?, ?, ?, ?)`,
				path, sk.Name, i, g.Kind(), g.IsConstruction(),
			); err != nil {
				return summary, fmt.Errorf("inserting geometry %d of %s: %w", i, sk.Name, err)
			}
			summary.Geometry++
		}

		for i, c := range sk.Constraints {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO constraints (document, sketch, idx, kind, name, value, driving) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				path, sk.Name, i, string(c.Type), c.Name, c.Value, c.Driving,
			); err != nil {
				return summary, fmt.Errorf("inserting constraint %d of %s: %w", i, sk.Name, err)
			}
			summary.Constraints++
		}

		summary.Sketches++
		fmt.Fprintf(w, "indexed %s: %s (%d geometry, %d constraints)\n",
			path, sk.Name, len(sk.Geometry), len(sk.Constraints))
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// Entry is one catalog row returned by Sketches.
type Entry struct {
	Document         string
	Name             string
	Label            string
	GeometryCount    int
	ExternalCount    int
	ConstraintCount  int
	FullyConstrained bool
}

// Sketches returns every cataloged sketch, ordered by document then name.
func (s *Store) Sketches(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document, name, label, geometry_count, external_count, constraint_count, fully_constrained
		 FROM sketches ORDER BY document, name`)
	if err != nil {
		return nil, fmt.Errorf("querying sketches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Document, &e.Name, &e.Label, &e.GeometryCount,
			&e.ExternalCount, &e.ConstraintCount, &e.FullyConstrained); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// List writes one line per cataloged sketch to w.
func (s *Store) List(ctx context.Context, w io.Writer) error {
	entries, err := s.Sketches(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s\t%s\t%s\tgeometry=%d external=%d constraints=%d",
			e.Document, e.Name, e.Label, e.GeometryCount, e.ExternalCount, e.ConstraintCount)
		if e.FullyConstrained {
			line += " fully-constrained"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
