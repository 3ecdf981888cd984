// Package ls resolves user paths against a namespace and lists what they
// point at.
package ls

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hayeah/ccdb/namespace"
)

// Location is the outcome of resolving a raw path.
type Location struct {
	ParentPath string               // absolute, normalized
	ParentDir  *namespace.Directory // nil when nothing could be resolved
	Pattern    string               // trailing segment to search with, empty for a plain directory
}

// Found reports whether the location points at an existing directory.
func (loc Location) Found() bool {
	return loc.ParentDir != nil
}

// PreparePath makes raw absolute against current and normalizes it lexically.
func PreparePath(raw, current string) string {
	if len(raw) > 1 && strings.HasSuffix(raw, "/") {
		raw = raw[:len(raw)-1]
	}
	if !strings.HasPrefix(raw, "/") {
		if current == "" {
			current = namespace.RootPath
		}
		raw = path.Join(current, raw)
	}
	return namespace.CleanPath(raw)
}

// splitPath splits an absolute path at its last separator. The head keeps
// its leading slash, so splitPath("/a") is ("/", "a").
func splitPath(p string) (head, tail string) {
	i := strings.LastIndex(p, "/")
	head, tail = p[:i], p[i+1:]
	if head == "" {
		head = namespace.RootPath
	}
	return head, tail
}

// Resolve turns raw into a Location. The full path is first looked up as a
// directory; failing that, its last segment becomes the pattern and the rest
// is looked up instead. A missing directory is not an error.
func Resolve(ctx context.Context, p namespace.Provider, raw, current string) (Location, error) {
	full := PreparePath(raw, current)

	dir, err := p.GetDirectory(ctx, full)
	if err != nil {
		return Location{}, fmt.Errorf("failed to look up %s: %w", full, err)
	}
	if dir != nil {
		return Location{ParentPath: full, ParentDir: dir}, nil
	}

	head, tail := splitPath(full)
	if tail == "" {
		return Location{ParentPath: head}, nil
	}

	dir, err = p.GetDirectory(ctx, head)
	if err != nil {
		return Location{}, fmt.Errorf("failed to look up %s: %w", head, err)
	}
	return Location{ParentPath: head, ParentDir: dir, Pattern: tail}, nil
}
