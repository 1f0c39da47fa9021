package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_CreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore("bullethell", 4)
	require.NoError(t, err)

	high, err := store.HighScore("bullethell")
	require.NoError(t, err)
	assert.Equal(t, 4, high)
}

func TestStore_SaveAndTopScores(t *testing.T) {
	store := openTemp(t)

	for _, s := range []int{3, 7, 5, 7} {
		_, err := store.SaveScore("bullethell", s)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("other", 100)
	require.NoError(t, err)

	scores, err := store.TopScores("bullethell", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 7, scores[0].Score)
	assert.Equal(t, 7, scores[1].Score)
	assert.Less(t, scores[0].ID, scores[1].ID, "ties keep save order")
	assert.Equal(t, 5, scores[2].Score)
	assert.Equal(t, "bullethell", scores[0].GameID)
	assert.False(t, scores[0].CreatedAt.IsZero())
}

func TestStore_TopScoresDefaultLimit(t *testing.T) {
	store := openTemp(t)
	for i := range 12 {
		_, err := store.SaveScore("g", i)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("g", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10)
	assert.Equal(t, 11, scores[0].Score)
}

func TestStore_HighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("bullethell")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "no scores yet")

	_, err = store.SaveScore("bullethell", 9)
	require.NoError(t, err)
	_, err = store.SaveScore("bullethell", 2)
	require.NoError(t, err)

	high, err = store.HighScore("bullethell")
	require.NoError(t, err)
	assert.Equal(t, 9, high)
}

func TestStore_ClearScores(t *testing.T) {
	store := openTemp(t)
	_, err := store.SaveScore("a", 1)
	require.NoError(t, err)
	_, err = store.SaveScore("b", 2)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("a"))

	scores, err := store.TopScores("a", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	high, err := store.HighScore("b")
	require.NoError(t, err)
	assert.Equal(t, 2, high)
}

func TestStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("g", 42)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("g")
	require.NoError(t, err)
	assert.Equal(t, 42, high)
}

func TestStore_Closed(t *testing.T) {
	store := openTemp(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.SaveScore("g", 1)
	assert.True(t, errors.Is(err, ErrClosed))
	_, err = store.TopScores("g", 1)
	assert.True(t, errors.Is(err, ErrClosed))
	_, err = store.HighScore("g")
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.engine2d/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".engine2d", "scores.db"), got)

	got, err = expandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)

	got, err = expandHome("~user/x.db")
	require.NoError(t, err)
	assert.Equal(t, "~user/x.db", got)
}
