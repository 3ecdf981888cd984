package namespace

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Memory is an in-memory Provider. Children and tables keep insertion order.
type Memory struct {
	root   *Directory
	byPath map[string]*Directory
	tables map[*Directory][]*TypeTable
	nextID int64
}

// NewMemory creates an empty namespace holding only the root directory.
func NewMemory() *Memory {
	root := &Directory{Path: RootPath}
	return &Memory{
		root:   root,
		byPath: map[string]*Directory{RootPath: root},
		tables: make(map[*Directory][]*TypeTable),
	}
}

// Mkdir creates the directory at p along with any missing parents and
// returns it. Existing directories are returned as is.
func (m *Memory) Mkdir(p string) *Directory {
	p = CleanPath(p)
	if dir, ok := m.byPath[p]; ok {
		return dir
	}

	cur := m.root
	for _, name := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		childPath := ChildPath(cur.Path, name)
		child, ok := m.byPath[childPath]
		if !ok {
			m.nextID++
			child = &Directory{
				ID:       m.nextID,
				ParentID: cur.ID,
				Name:     name,
				Path:     childPath,
			}
			cur.SubDirs = append(cur.SubDirs, child)
			m.byPath[childPath] = child
		}
		cur = child
	}
	return cur
}

// AddTable attaches a table to the directory at dirPath, creating the
// directory when needed.
func (m *Memory) AddTable(dirPath, name string) *TypeTable {
	dir := m.Mkdir(dirPath)
	m.nextID++
	table := &TypeTable{ID: m.nextID, DirectoryID: dir.ID, Name: name, NRows: 1, NColumns: 1}
	m.tables[dir] = append(m.tables[dir], table)
	return table
}

func (m *Memory) GetDirectory(_ context.Context, absPath string) (*Directory, error) {
	return m.byPath[absPath], nil
}

func (m *Memory) GetRootDirectory(_ context.Context) (*Directory, error) {
	return m.root, nil
}

func (m *Memory) GetTypeTables(_ context.Context, dir *Directory) ([]*TypeTable, error) {
	return m.tables[dir], nil
}

func (m *Memory) SearchDirectories(_ context.Context, pattern, scopePath string) ([]*Directory, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	candidates, ok := m.scope(scopePath)
	if !ok {
		return nil, nil
	}

	var result []*Directory
	for _, dir := range candidates {
		if dir == m.root {
			continue
		}
		matched, err := doublestar.Match(pattern, dir.Name)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if matched {
			result = append(result, dir)
		}
	}
	return result, nil
}

func (m *Memory) SearchTypeTables(_ context.Context, pattern, scopePath string) ([]*TypeTable, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	var dirs []*Directory
	if scopePath == "" {
		dirs = m.walk(m.root, nil)
	} else {
		dir, ok := m.byPath[scopePath]
		if !ok {
			return nil, nil
		}
		dirs = []*Directory{dir}
	}

	var result []*TypeTable
	for _, dir := range dirs {
		for _, table := range m.tables[dir] {
			matched, err := doublestar.Match(pattern, table.Name)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			if matched {
				result = append(result, table)
			}
		}
	}
	return result, nil
}

func validatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("bad pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return nil
}

// scope returns the directories a search over scopePath looks at.
func (m *Memory) scope(scopePath string) ([]*Directory, bool) {
	if scopePath == "" {
		return m.walk(m.root, nil), true
	}
	dir, ok := m.byPath[scopePath]
	if !ok {
		return nil, false
	}
	return dir.SubDirs, true
}

// walk collects dir and all its descendants in pre-order.
func (m *Memory) walk(dir *Directory, acc []*Directory) []*Directory {
	acc = append(acc, dir)
	for _, sub := range dir.SubDirs {
		acc = m.walk(sub, acc)
	}
	return acc
}
