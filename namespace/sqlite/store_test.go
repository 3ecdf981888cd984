package sqlite

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/hayeah/goo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayeah/ccdb/namespace"
)

const testFixture = `
tables: [root_table]
directories:
  - name: test
    tables: [test_vars, test_more, other_table]
    directories:
      - name: subtest
      - name: sub_2
  - name: calibration
    directories:
      - name: subtest
        tables: [test_deep]
`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, goo.ProvideDBMigrator(db, slog.New(slog.DiscardHandler)).Up(Migrations))
	s := New(db, nil)

	f, err := namespace.ParseFixture(strings.NewReader(testFixture))
	require.NoError(t, err)
	stats, err := s.Import(ctx, f)
	require.NoError(t, err)
	require.Equal(t, ImportStats{Directories: 5, Tables: 5}, stats)
	return s
}

func dirPaths(dirs []*namespace.Directory) []string {
	paths := make([]string, 0, len(dirs))
	for _, d := range dirs {
		paths = append(paths, d.Path)
	}
	return paths
}

func tableNames(tables []*namespace.TypeTable) []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.Name)
	}
	return out
}

func TestWildcardsToLike(t *testing.T) {
	tests := map[string]string{
		"test*":     "test%",
		"t?st":      "t_st",
		"test_vars": `test\_vars`,
		"100%":      `100\%`,
		`a\b`:       `a\\b`,
		"*_?":       `%\__`,
	}
	for in, want := range tests {
		assert.Equal(t, want, WildcardsToLike(in), in)
	}
}

func TestStore_Tree(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	root, err := s.GetRootDirectory(ctx)
	require.NoError(t, err)
	assert.Equal("/", root.Path)
	assert.Equal([]string{"/test", "/calibration"}, dirPaths(root.SubDirs))

	test, err := s.GetDirectory(ctx, "/test")
	require.NoError(t, err)
	require.NotNil(t, test)
	assert.Equal([]string{"/test/subtest", "/test/sub_2"}, dirPaths(test.SubDirs))

	deep, err := s.GetDirectory(ctx, "/calibration/subtest")
	require.NoError(t, err)
	require.NotNil(t, deep)
	assert.Equal("subtest", deep.Name)

	missing, err := s.GetDirectory(ctx, "/nope")
	assert.NoError(err)
	assert.Nil(missing)
}

func TestStore_TypeTables(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	test, err := s.GetDirectory(ctx, "/test")
	require.NoError(t, err)
	tables, err := s.GetTypeTables(ctx, test)
	require.NoError(t, err)
	assert.Equal([]string{"other_table", "test_more", "test_vars"}, tableNames(tables))
	for _, table := range tables {
		assert.Equal(test.ID, table.DirectoryID)
	}

	root, err := s.GetRootDirectory(ctx)
	require.NoError(t, err)
	tables, err = s.GetTypeTables(ctx, root)
	require.NoError(t, err)
	assert.Equal([]string{"root_table"}, tableNames(tables))
}

func TestStore_Search(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	dirs, err := s.SearchDirectories(ctx, "sub*", "/test")
	require.NoError(t, err)
	assert.Equal([]string{"/test/sub_2", "/test/subtest"}, dirPaths(dirs))

	// `_` in a pattern is literal
	dirs, err = s.SearchDirectories(ctx, "sub_?", "/test")
	require.NoError(t, err)
	assert.Equal([]string{"/test/sub_2"}, dirPaths(dirs))

	dirs, err = s.SearchDirectories(ctx, "subtest", "")
	require.NoError(t, err)
	assert.ElementsMatch([]string{"/test/subtest", "/calibration/subtest"}, dirPaths(dirs))

	dirs, err = s.SearchDirectories(ctx, "*", "/missing")
	assert.NoError(err)
	assert.Empty(dirs)

	tables, err := s.SearchTypeTables(ctx, "test_*", "/test")
	require.NoError(t, err)
	assert.Equal([]string{"test_more", "test_vars"}, tableNames(tables))

	tables, err = s.SearchTypeTables(ctx, "test*", "")
	require.NoError(t, err)
	assert.Equal([]string{"test_deep", "test_more", "test_vars"}, tableNames(tables))

	tables, err = s.SearchTypeTables(ctx, "*", "/missing")
	assert.NoError(err)
	assert.Empty(tables)
}

func TestStore_ImportIsIncremental(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	f, err := namespace.ParseFixture(strings.NewReader(`
directories:
  - name: test
    tables: [test_vars, brand_new]
    directories:
      - name: added
`))
	require.NoError(t, err)

	stats, err := s.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, ImportStats{Directories: 1, Tables: 1}, stats)

	added, err := s.GetDirectory(ctx, "/test/added")
	require.NoError(t, err)
	assert.NotNil(t, added)
}

func TestStore_OrphanDirectory(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.DB.ExecContext(ctx, "INSERT INTO directories (name, parentId) VALUES (?, ?)", "orphan", 999)
	require.NoError(t, err)
	s.reset()

	dirs, err := s.SearchDirectories(ctx, "orphan", "")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	root, err := s.GetRootDirectory(ctx)
	require.NoError(t, err)
	assert.Len(t, root.SubDirs, 2)
}

func TestStore_MigrationsAreRecorded(t *testing.T) {
	s := openTestStore(t)

	var names []string
	require.NoError(t, s.DB.Select(&names, "SELECT name FROM migrations ORDER BY name"))
	assert.Equal(t, []string{"create_directories_table", "create_type_tables_table"}, names)

	// Applied migrations are skipped on the next run.
	require.NoError(t, goo.ProvideDBMigrator(s.DB, s.Logger).Up(Migrations))
	root, err := s.GetRootDirectory(context.Background())
	require.NoError(t, err)
	assert.Len(t, root.SubDirs, 2)
}

func TestStore_CancelledLoad(t *testing.T) {
	s := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GetDirectory(ctx, "/test")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.GetRootDirectory(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The failed load is not kept.
	dir, err := s.GetDirectory(context.Background(), "/test")
	require.NoError(t, err)
	require.NotNil(t, dir)
	assert.Equal(t, "/test", dir.Path)
}
