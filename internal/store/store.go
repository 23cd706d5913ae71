// Package store persists the host process's project-model documents in a
// local SQLite database and materializes immutable snapshots from it for
// rehydration.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/logging"
	"github.com/KlemensE/roslyn/internal/nav"
	"github.com/KlemensE/roslyn/internal/snapshot"
)

// DB represents a document store connection with transaction helpers
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the document store at <root>/.navwire/navwire.db.
// A new database is created with the full schema.
func Open(root string, logger *logging.Logger) (*DB, error) {
	dir := filepath.Join(root, ".navwire")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.StoreUnavailable,
			"failed to create .navwire directory", err)
	}

	dbPath := filepath.Join(dir, "navwire.db")
	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(errors.StoreUnavailable,
			"failed to open document store", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, errors.Wrap(errors.StoreUnavailable,
				"failed to set pragma", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}

	if !dbExists {
		logger.Info("Creating new document store", logging.Fields{
			"path": dbPath,
		})
		if err := db.initializeSchema(); err != nil {
			conn.Close()
			return nil, errors.Wrap(errors.StoreUnavailable,
				"failed to initialize schema", err)
		}
	} else {
		if err := db.runMigrations(); err != nil {
			conn.Close()
			return nil, errors.Wrap(errors.StoreUnavailable,
				"failed to run migrations", err)
		}
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.dbPath
}

// WithTx executes a function within a transaction. If the function returns
// an error the transaction is rolled back, otherwise it is committed.
func (db *DB) WithTx(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p) // Re-throw panic after rollback
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// PutDocuments inserts or replaces documents in a single transaction.
func (db *DB) PutDocuments(docs []nav.Document) error {
	return db.WithTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR REPLACE INTO documents (id, name, path)
			VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, doc := range docs {
			if doc.ID.IsEmpty() {
				return errors.Newf(errors.InvalidResult,
					"document %q has no id", doc.Name)
			}
			if _, err := stmt.Exec(doc.ID.String(), doc.Name, doc.Path); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveDocument deletes a document by ID. Removing a document makes wire
// records referencing it stale; subsequent rehydration against a fresh
// snapshot fails with DocumentNotFound.
func (db *DB) RemoveDocument(id nav.DocumentID) error {
	_, err := db.conn.Exec(`DELETE FROM documents WHERE id = ?`, id.String())
	return err
}

// ListDocuments returns all documents ordered by path.
func (db *DB) ListDocuments() ([]nav.Document, error) {
	rows, err := db.conn.Query(`SELECT id, name, path FROM documents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []nav.Document
	for rows.Next() {
		var id, name, path string
		if err := rows.Scan(&id, &name, &path); err != nil {
			return nil, err
		}
		docs = append(docs, nav.Document{ID: nav.DocumentID(id), Name: name, Path: path})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// Snapshot materializes an immutable in-memory snapshot of the current
// document set. The snapshot does not observe later store mutations.
func (db *DB) Snapshot() (*snapshot.Snapshot, error) {
	docs, err := db.ListDocuments()
	if err != nil {
		return nil, err
	}
	return snapshot.New(docs), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
