package ls

import (
	"context"
	"errors"
	"fmt"

	"github.com/hayeah/ccdb/namespace"
)

// ErrNotFound is returned when a location has no directory to list.
var ErrNotFound = errors.New("can't find the directory")

// Listing holds the entries found at a location, in provider order.
type Listing struct {
	Directories []*namespace.Directory
	Tables      []*namespace.TypeTable
}

// List returns the direct children of loc, or the entries matching its
// pattern under loc.ParentPath.
func List(ctx context.Context, p namespace.Provider, loc Location) (Listing, error) {
	if !loc.Found() {
		return Listing{}, ErrNotFound
	}

	var listing Listing
	var err error
	if loc.Pattern == "" {
		listing.Directories = loc.ParentDir.SubDirs
		listing.Tables, err = p.GetTypeTables(ctx, loc.ParentDir)
		if err != nil {
			return Listing{}, fmt.Errorf("failed to list tables of %s: %w", loc.ParentPath, err)
		}
		return listing, nil
	}

	listing.Directories, err = p.SearchDirectories(ctx, loc.Pattern, loc.ParentPath)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to search directories %q in %s: %w", loc.Pattern, loc.ParentPath, err)
	}
	listing.Tables, err = p.SearchTypeTables(ctx, loc.Pattern, loc.ParentPath)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to search tables %q in %s: %w", loc.Pattern, loc.ParentPath, err)
	}
	return listing, nil
}

// Names is a listing reduced to entry names.
type Names struct {
	Directories []string
	Tables      []string
}

// Names returns the names of the listing's entries.
func (l Listing) Names() Names {
	names := Names{
		Directories: make([]string, 0, len(l.Directories)),
		Tables:      make([]string, 0, len(l.Tables)),
	}
	for _, dir := range l.Directories {
		names.Directories = append(names.Directories, dir.Name)
	}
	for _, table := range l.Tables {
		names.Tables = append(names.Tables, table.Name)
	}
	return names
}
