package namespace

import (
	"context"
	"path"
	"strings"
)

// Directory is a node of the namespace. Path is canonical and absolute.
type Directory struct {
	ID       int64  `db:"id"`
	ParentID int64  `db:"parentId"`
	Name     string `db:"name"`
	Comment  string `db:"comment"`
	Path     string `db:"-"`

	SubDirs []*Directory `db:"-"`
}

// TypeTable is a leaf entry attached to a directory.
type TypeTable struct {
	ID          int64  `db:"id"`
	DirectoryID int64  `db:"directoryId"`
	Name        string `db:"name"`
	NRows       int    `db:"nRows"`
	NColumns    int    `db:"nColumns"`
	Comment     string `db:"comments"`
}

// Provider answers exact-path and pattern queries against a namespace.
//
// GetDirectory returns nil and no error when the path does not exist.
// Pattern grammar belongs to the provider; both stores treat `*` as any run
// of characters and `?` as a single character. A non-empty scopePath limits a
// search to the direct children of that directory, an empty one searches the
// whole namespace.
type Provider interface {
	GetDirectory(ctx context.Context, absPath string) (*Directory, error)
	SearchDirectories(ctx context.Context, pattern, scopePath string) ([]*Directory, error)
	GetTypeTables(ctx context.Context, dir *Directory) ([]*TypeTable, error)
	SearchTypeTables(ctx context.Context, pattern, scopePath string) ([]*TypeTable, error)
	GetRootDirectory(ctx context.Context) (*Directory, error)
}

// RootPath is the path of the namespace root.
const RootPath = "/"

// ChildPath joins a directory path and a child name.
func ChildPath(parent, name string) string {
	return path.Join(RootPath, parent, name)
}

// CleanPath returns the canonical form of an absolute path.
func CleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
