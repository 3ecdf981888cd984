package ls

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_DirectChildren(t *testing.T) {
	ctx := context.Background()
	m := newTestNamespace()

	loc, err := Resolve(ctx, m, "/a/b", "/")
	require.NoError(t, err)

	listing, err := List(ctx, m, loc)
	require.NoError(t, err)
	assert.Equal(t, Names{
		Directories: []string{"c", "d"},
		Tables:      []string{"t1"},
	}, listing.Names())
}

func TestList_Pattern(t *testing.T) {
	ctx := context.Background()
	m := newTestNamespace()

	loc, err := Resolve(ctx, m, "x*", "/test")
	require.NoError(t, err)
	require.Equal(t, "x*", loc.Pattern)

	listing, err := List(ctx, m, loc)
	require.NoError(t, err)
	assert.Equal(t, Names{
		Directories: []string{"x1"},
		Tables:      []string{"xtable"},
	}, listing.Names())
}

func TestList_PatternWithoutMatches(t *testing.T) {
	ctx := context.Background()
	m := newTestNamespace()

	loc, err := Resolve(ctx, m, "/a/b/zz?", "/")
	require.NoError(t, err)
	require.True(t, loc.Found())

	listing, err := List(ctx, m, loc)
	require.NoError(t, err)
	assert.Empty(t, listing.Directories)
	assert.Empty(t, listing.Tables)
}

func TestList_NotFound(t *testing.T) {
	ctx := context.Background()
	m := newTestNamespace()

	loc, err := Resolve(ctx, m, "/missing/deeper", "/")
	require.NoError(t, err)
	assert.False(t, loc.Found())

	_, err = List(ctx, m, loc)
	assert.ErrorIs(t, err, ErrNotFound)
}
