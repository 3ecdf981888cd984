package ls

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hayeah/ccdb/namespace"
)

// NotFoundMessage is printed when a path resolves to nothing.
const NotFoundMessage = "Can't find the directory"

// Lister resolves paths relative to CurrentPath and renders what they point
// at, either printed or as names.
type Lister struct {
	Provider    namespace.Provider
	CurrentPath string
	Theme       Theme
	Logger      *slog.Logger
}

// NewLister creates a Lister. currentPath is taken as absolute and cleaned;
// an empty currentPath means the root.
func NewLister(p namespace.Provider, currentPath string, theme Theme, logger *slog.Logger) *Lister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Lister{
		Provider:    p,
		CurrentPath: namespace.CleanPath(currentPath),
		Theme:       theme,
		Logger:      logger,
	}
}

// Resolve resolves raw against the current path. An empty raw means the
// current path itself.
func (l *Lister) Resolve(ctx context.Context, raw string) (Location, error) {
	if raw == "" {
		raw = l.CurrentPath
	}
	loc, err := Resolve(ctx, l.Provider, raw, l.CurrentPath)
	if err != nil {
		return Location{}, err
	}
	l.Logger.Debug("resolved path", "raw", raw, "parent", loc.ParentPath, "pattern", loc.Pattern, "found", loc.Found())
	return loc, nil
}

// Listing resolves raw and lists it. ErrNotFound is returned when nothing
// could be resolved.
func (l *Lister) Listing(ctx context.Context, raw string) (Listing, error) {
	loc, err := l.Resolve(ctx, raw)
	if err != nil {
		return Listing{}, err
	}
	return List(ctx, l.Provider, loc)
}

// Print writes the listing of raw to w: directories, then tables, then a
// blank line. A path that cannot be resolved prints NotFoundMessage and is
// not an error.
func (l *Lister) Print(ctx context.Context, w io.Writer, raw string) error {
	listing, err := l.Listing(ctx, raw)
	if errors.Is(err, ErrNotFound) {
		_, err = fmt.Fprintln(w, NotFoundMessage)
		return err
	}
	if err != nil {
		return err
	}

	for _, dir := range listing.Directories {
		if _, err := fmt.Fprintln(w, l.Theme.directory(dir.Name)); err != nil {
			return err
		}
	}
	for _, table := range listing.Tables {
		if _, err := fmt.Fprintln(w, l.Theme.table(table.Name)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// Names returns the entry names at raw. ok is false when the path cannot be
// resolved.
func (l *Lister) Names(ctx context.Context, raw string) (names Names, ok bool, err error) {
	listing, err := l.Listing(ctx, raw)
	if errors.Is(err, ErrNotFound) {
		return Names{}, false, nil
	}
	if err != nil {
		return Names{}, false, err
	}
	return listing.Names(), true, nil
}

// DumpTree writes the whole directory tree from the namespace root.
func (l *Lister) DumpTree(ctx context.Context, w io.Writer, showFullPath bool) error {
	root, err := l.Provider.GetRootDirectory(ctx)
	if err != nil {
		return fmt.Errorf("failed to get root directory: %w", err)
	}
	return DumpTree(w, root, showFullPath, 0)
}
