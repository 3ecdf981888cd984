// Package sqlite stores a CCDB namespace (directories and type tables) in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Import SQLite driver

	"github.com/hayeah/ccdb/namespace"
)

const tableColumns = "id, name, directoryId, nRows, nColumns, comments"

// Store implements namespace.Provider on top of the directories and
// typeTables tables.
type Store struct {
	DB     *sqlx.DB
	Logger *slog.Logger

	mu  sync.Mutex
	idx *dirIndex // Directory tree, loaded on first lookup
}

var _ namespace.Provider = (*Store)(nil)

// dirIndex is the directory tree built from a single read of the directories table.
type dirIndex struct {
	root   *namespace.Directory
	byID   map[int64]*namespace.Directory
	byPath map[string]*namespace.Directory
}

// OpenDB connects to the SQLite database at dsn.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)
	return db, nil
}

// New wraps an open database. The schema is expected to exist, see Migrations.
func New(db *sqlx.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{DB: db, Logger: logger}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// reset drops the loaded directory tree so the next lookup reloads it.
func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = nil
}

// index returns the directory tree, loading it with ctx on first use. A failed
// or cancelled load is not kept; the next caller loads again.
func (s *Store) index(ctx context.Context) (*dirIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil {
		return s.idx, nil
	}
	idx, err := s.loadDirectories(ctx)
	if err != nil {
		return nil, err
	}
	s.idx = idx
	return idx, nil
}

func (s *Store) loadDirectories(ctx context.Context) (*dirIndex, error) {
	var dirs []*namespace.Directory
	err := s.DB.SelectContext(ctx, &dirs, "SELECT id, name, parentId, comment FROM directories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load directories: %w", err)
	}

	root := &namespace.Directory{Path: namespace.RootPath}
	idx := &dirIndex{
		root:   root,
		byID:   map[int64]*namespace.Directory{0: root},
		byPath: map[string]*namespace.Directory{namespace.RootPath: root},
	}
	for _, dir := range dirs {
		idx.byID[dir.ID] = dir
	}

	for _, dir := range dirs {
		parent, ok := idx.byID[dir.ParentID]
		if !ok || parent == dir {
			s.Logger.Warn("directory has an unknown parent", "id", dir.ID, "name", dir.Name, "parentId", dir.ParentID)
			continue
		}
		parent.SubDirs = append(parent.SubDirs, dir)
	}

	// Only directories reachable from the root get a path.
	var assign func(dir *namespace.Directory)
	assign = func(dir *namespace.Directory) {
		for _, sub := range dir.SubDirs {
			if sub.Path != "" {
				continue
			}
			sub.Path = namespace.ChildPath(dir.Path, sub.Name)
			idx.byPath[sub.Path] = sub
			assign(sub)
		}
	}
	assign(root)

	s.Logger.Debug("loaded directories", "count", len(dirs))
	return idx, nil
}

func (s *Store) GetRootDirectory(ctx context.Context) (*namespace.Directory, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.root, nil
}

func (s *Store) GetDirectory(ctx context.Context, absPath string) (*namespace.Directory, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.byPath[absPath], nil
}

func (s *Store) SearchDirectories(ctx context.Context, pattern, scopePath string) ([]*namespace.Directory, error) {
	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT id FROM directories WHERE name LIKE ? ESCAPE '` + likeEscape + `'`
	args := []any{WildcardsToLike(pattern)}
	if scopePath != "" {
		parent, ok := idx.byPath[scopePath]
		if !ok {
			return nil, nil
		}
		query += " AND parentId = ?"
		args = append(args, parent.ID)
	}
	query += " ORDER BY name"

	var ids []int64
	if err := s.DB.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search directories: %w", err)
	}

	result := make([]*namespace.Directory, 0, len(ids))
	for _, id := range ids {
		dir, ok := idx.byID[id]
		if !ok || dir.Path == "" {
			continue
		}
		result = append(result, dir)
	}
	return result, nil
}

func (s *Store) GetTypeTables(ctx context.Context, dir *namespace.Directory) ([]*namespace.TypeTable, error) {
	var tables []*namespace.TypeTable
	err := s.DB.SelectContext(ctx, &tables,
		"SELECT "+tableColumns+" FROM typeTables WHERE directoryId = ? ORDER BY name", dir.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get type tables of %s: %w", dir.Path, err)
	}
	return tables, nil
}

func (s *Store) SearchTypeTables(ctx context.Context, pattern, scopePath string) ([]*namespace.TypeTable, error) {
	query := "SELECT " + tableColumns + ` FROM typeTables WHERE name LIKE ? ESCAPE '` + likeEscape + `'`
	args := []any{WildcardsToLike(pattern)}
	if scopePath != "" {
		parent, err := s.GetDirectory(ctx, scopePath)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, nil
		}
		query += " AND directoryId = ?"
		args = append(args, parent.ID)
	}
	query += " ORDER BY name"

	var tables []*namespace.TypeTable
	if err := s.DB.SelectContext(ctx, &tables, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search type tables: %w", err)
	}
	return tables, nil
}

// ImportStats counts the rows created by Import.
type ImportStats struct {
	Directories int
	Tables      int
}

// Import adds the fixture's directories and tables. Entries that already
// exist under the same parent are kept.
func (s *Store) Import(ctx context.Context, f *namespace.Fixture) (ImportStats, error) {
	var stats ImportStats

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ids := map[string]int64{namespace.RootPath: 0}
	err = f.Walk(func(dirPath string, node *namespace.Fixture) error {
		id, ok := ids[dirPath]
		if !ok {
			newID, created, err := ensureDirectory(ctx, tx, ids[parentOf(dirPath)], node)
			if err != nil {
				return fmt.Errorf("failed to import directory %s: %w", dirPath, err)
			}
			if created {
				stats.Directories++
			}
			id = newID
			ids[dirPath] = id
		}

		for _, name := range node.Tables {
			created, err := ensureTable(ctx, tx, id, name)
			if err != nil {
				return fmt.Errorf("failed to import table %s in %s: %w", name, dirPath, err)
			}
			if created {
				stats.Tables++
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit import: %w", err)
	}
	s.reset()
	s.Logger.Info("imported namespace", "directories", stats.Directories, "tables", stats.Tables)
	return stats, nil
}

func ensureDirectory(ctx context.Context, tx *sqlx.Tx, parentID int64, node *namespace.Fixture) (int64, bool, error) {
	var id int64
	err := tx.GetContext(ctx, &id, "SELECT id FROM directories WHERE parentId = ? AND name = ?", parentID, node.Name)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO directories (name, parentId, comment) VALUES (?, ?, ?)",
		node.Name, parentID, node.Comment,
	)
	if err != nil {
		return 0, false, err
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, true, nil
}

func ensureTable(ctx context.Context, tx *sqlx.Tx, dirID int64, name string) (bool, error) {
	var id int64
	err := tx.GetContext(ctx, &id, "SELECT id FROM typeTables WHERE directoryId = ? AND name = ?", dirID, name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	_, err = tx.ExecContext(ctx, "INSERT INTO typeTables (name, directoryId) VALUES (?, ?)", name, dirID)
	return err == nil, err
}

func parentOf(dirPath string) string {
	for i := len(dirPath) - 1; i > 0; i-- {
		if dirPath[i] == '/' {
			return dirPath[:i]
		}
	}
	return namespace.RootPath
}
