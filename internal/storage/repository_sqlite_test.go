package storage

import (
	"path/filepath"
	"testing"

	"github.com/ericogr/tournament-arena/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUnits = []game.Unit{
	{Name: "France", Health: 120, Attack: 30},
	{Name: "Spain", Health: 90, Attack: 45},
}

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "arena.db")
	db, err := OpenDB(dbPath, testUnits)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewSQLiteRepository(db, testUnits)
}

func TestOpenDB_SeedsCatalogOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arena.db")
	db, err := OpenDB(dbPath, testUnits)
	require.NoError(t, err)
	require.NoError(t, seedUnits(db, testUnits))

	var count int64
	require.NoError(t, db.Model(&game.Unit{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestGetUnits_OverlaysConfigStats(t *testing.T) {
	repo := newTestRepo(t)

	units, err := repo.GetUnits()
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "France", units[0].Name)
	assert.Equal(t, 120, units[0].Health)
	assert.Equal(t, 45, units[1].Attack)

	found, err := repo.GetUnitsByNames([]string{"spain", "Atlantis"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Spain", found[0].Name)
	assert.Equal(t, 90, found[0].Health)
}

func TestMatchRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	m := &game.Match{
		PublicID: "7c1f3a52-0000-4000-8000-000000000001",
		Player1:  "Ann",
		Player2:  "Bob",
		Winner:   "Ann",
		Turns:    3,
		Seed:     11,
		Status:   game.StatusFinished,
		Entries: []game.MatchEntry{
			{Side: 2, Slot: 0, Name: "Spain", Owner: "Bob", StartHealth: 90, Attack: 45, Dead: true},
			{Side: 1, Slot: 0, Name: "France", Owner: "Ann", StartHealth: 120, FinalHealth: 75, Attack: 30},
		},
	}
	m.SetLog([]string{"Turn 1: a", "Turn 2: b", "Turn 3: c"})
	require.NoError(t, repo.CreateMatch(m))

	got, err := repo.GetMatchByPublicID(m.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Winner)
	assert.Equal(t, []string{"Turn 1: a", "Turn 2: b", "Turn 3: c"}, got.LogLines())
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "France", got.Entries[0].Name, "entries are ordered by side")

	_, err = repo.GetMatchByPublicID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	recent, err := repo.GetRecentMatches(5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Empty(t, recent[0].Entries)
}

func TestUpdateStatsOnMatchEnd(t *testing.T) {
	repo := newTestRepo(t)

	win := &game.Match{PublicID: "m1", Player1: "Ann", Player2: "Bob", Winner: "Ann", Status: game.StatusFinished}
	require.NoError(t, repo.CreateMatch(win))
	require.NoError(t, repo.UpdateStatsOnMatchEnd(win))
	assert.True(t, win.StatsCounted)
	// counted once only
	require.NoError(t, repo.UpdateStatsOnMatchEnd(win))

	draw := &game.Match{PublicID: "m2", Player1: "Bob", Player2: "Cid", Status: game.StatusStalemate}
	require.NoError(t, repo.CreateMatch(draw))
	require.NoError(t, repo.UpdateStatsOnMatchEnd(draw))

	top, err := repo.GetTopPlayers(10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Ann", top[0].Name)
	assert.Equal(t, 1, top[0].Wins)
	assert.Equal(t, 1, top[0].MatchesPlayed)

	byName := map[string]game.PlayerRecord{}
	for _, p := range top {
		byName[p.Name] = p
	}
	assert.Equal(t, 2, byName["Bob"].MatchesPlayed)
	assert.Equal(t, 1, byName["Bob"].Losses)
	assert.Equal(t, 1, byName["Bob"].Stalemates)
	assert.Equal(t, 1, byName["Cid"].Stalemates)
}
