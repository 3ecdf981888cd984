package namespace

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes a namespace subtree in YAML:
//
//	directories:
//	  - name: test
//	    tables: [test_vars]
//	    directories:
//	      - name: subtest
type Fixture struct {
	Name        string     `yaml:"name,omitempty"`
	Comment     string     `yaml:"comment,omitempty"`
	Tables      []string   `yaml:"tables,omitempty"`
	Directories []*Fixture `yaml:"directories,omitempty"`
}

// ParseFixture decodes a YAML fixture. The top level node is the root.
func ParseFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode namespace fixture: %w", err)
	}
	return &f, nil
}

// ReadFixtureFile parses the YAML fixture at path.
func ReadFixtureFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open namespace fixture: %w", err)
	}
	defer file.Close()
	return ParseFixture(file)
}

// Walk visits every directory of the fixture in pre-order with its absolute
// path. The root is visited first with path "/".
func (f *Fixture) Walk(fn func(dirPath string, node *Fixture) error) error {
	return f.walk(RootPath, fn)
}

func (f *Fixture) walk(dirPath string, fn func(string, *Fixture) error) error {
	if err := fn(dirPath, f); err != nil {
		return err
	}
	for _, child := range f.Directories {
		if child.Name == "" {
			return fmt.Errorf("directory without a name under %s", dirPath)
		}
		if err := child.walk(ChildPath(dirPath, child.Name), fn); err != nil {
			return err
		}
	}
	return nil
}

// NewMemoryFromFixture builds a Memory provider holding the fixture's tree.
func NewMemoryFromFixture(f *Fixture) (*Memory, error) {
	m := NewMemory()
	m.root.Name = f.Name
	err := f.Walk(func(dirPath string, node *Fixture) error {
		dir := m.Mkdir(dirPath)
		if dir != m.root {
			dir.Comment = node.Comment
		}
		for _, table := range node.Tables {
			m.AddTable(dirPath, table)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMemoryFile reads a YAML fixture into a Memory provider.
func LoadMemoryFile(path string) (*Memory, error) {
	f, err := ReadFixtureFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryFromFixture(f)
}
