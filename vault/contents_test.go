package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertNormalizesService(t *testing.T) {
	c := Contents{}
	c.Upsert("GitHub", Entry{Username: "octocat", Password: "pw"})

	e, err := c.Get("github")
	require.NoError(t, err)
	assert.Equal(t, "octocat", e.Username)

	e, err = c.Get("  GITHUB  ")
	require.NoError(t, err)
	assert.Equal(t, "octocat", e.Username)
}

func TestUpsertReplaces(t *testing.T) {
	c := Contents{}
	c.Upsert("github", Entry{Username: "old", Password: "old"})
	c.Upsert("GitHub", Entry{Username: "new", Password: "new"})

	require.Len(t, c, 1)
	e, err := c.Get("github")
	require.NoError(t, err)
	assert.Equal(t, "new", e.Username)
}

func TestGetMiss(t *testing.T) {
	c := Contents{}
	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRemove(t *testing.T) {
	c := Contents{}
	c.Upsert("github", Entry{Username: "octocat"})

	require.NoError(t, c.Remove("GITHUB"))
	assert.False(t, c.Has("github"))
}

func TestRemoveMissLeavesContentsUntouched(t *testing.T) {
	c := Contents{}
	c.Upsert("github", Entry{Username: "octocat"})

	assert.ErrorIs(t, c.Remove("gitlab"), ErrEntryNotFound)
	assert.Len(t, c, 1)
}

func TestListSortedWithoutPasswords(t *testing.T) {
	c := Contents{}
	c.Upsert("zebra", Entry{Username: "z", Password: "zp"})
	c.Upsert("Apple", Entry{Username: "a", Password: "ap"})
	c.Upsert("mango", Entry{Username: "m", Password: "mp"})

	items := c.List()
	require.Len(t, items, 3)
	assert.Equal(t, []ListItem{
		{Service: "apple", Username: "a"},
		{Service: "mango", Username: "m"},
		{Service: "zebra", Username: "z"},
	}, items)
}

func TestListEmpty(t *testing.T) {
	assert.Empty(t, Contents{}.List())
}
