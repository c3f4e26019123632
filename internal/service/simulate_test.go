package service

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ericogr/tournament-arena/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultSettings = Settings{MaxTurns: 10000, MaxRosterSize: 10}

func TestSimulateMatch_RecordsResult(t *testing.T) {
	repo := newMockRepo()
	req := MatchRequest{
		Player1: roster("Ann", "France", "Italy"),
		Player2: roster("Bob", "Spain"),
		Seed:    17,
	}

	m, _, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.Equal(t, 1, repo.statsCalled)
	assert.True(t, m.StatsCounted)
	assert.NotEmpty(t, m.PublicID)
	assert.Equal(t, "Ann", m.Player1)
	assert.Equal(t, "Bob", m.Player2)
	assert.EqualValues(t, 17, m.Seed)
	assert.Equal(t, game.StatusFinished, m.Status)
	assert.Contains(t, []string{"Ann", "Bob"}, m.Winner)
	assert.Len(t, m.LogLines(), m.Turns)

	require.Len(t, m.Entries, 3)
	assert.Equal(t, 1, m.Entries[0].Side)
	assert.Equal(t, 120, m.Entries[0].StartHealth)
	assert.Equal(t, 2, m.Entries[2].Side)
	assert.Equal(t, "Spain", m.Entries[2].Name)

	loserDead := true
	for _, e := range m.Entries {
		if e.Owner == m.Loser() && !e.Dead {
			loserDead = false
		}
	}
	assert.True(t, loserDead, "every unit of the loser must be dead")
}

func TestSimulateMatch_SameSeedSameBattle(t *testing.T) {
	repo := newMockRepo()
	req := MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Spain"), Seed: 99}

	m1, _, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)
	m2, _, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)

	assert.Equal(t, m1.Log, m2.Log)
	assert.Equal(t, m1.Winner, m2.Winner)
	assert.NotEqual(t, m1.PublicID, m2.PublicID, "sequential requests are separate matches")
}

func TestSimulateMatch_DifferentNamesAreNotShared(t *testing.T) {
	repo := newMockRepo()
	repo.hold = make(chan struct{})
	repo.entered = make(chan struct{})
	release := sync.OnceFunc(func() { close(repo.hold) })
	defer release()

	type outcome struct {
		m      *game.Match
		shared bool
		err    error
	}
	run := func(player string) <-chan outcome {
		ch := make(chan outcome, 1)
		go func() {
			req := MatchRequest{Player1: roster(player, "France"), Player2: roster("Bob", "Spain"), Seed: 5}
			m, shared, err := SimulateMatch(repo, req, defaultSettings)
			ch <- outcome{m, shared, err}
		}()
		return ch
	}

	first := run("Ann Lee")
	<-repo.entered

	var second outcome
	select {
	case second = <-run("ann_lee"):
	case <-time.After(5 * time.Second):
		t.Fatal("second request waited on the first one")
	}
	release()
	got := <-first

	require.NoError(t, got.err)
	require.NoError(t, second.err)
	assert.False(t, second.shared)
	assert.Equal(t, "ann_lee", second.m.Player1)
	assert.Equal(t, "Ann Lee", got.m.Player1)
	assert.NotEqual(t, got.m.PublicID, second.m.PublicID)
	for _, line := range second.m.LogLines() {
		assert.NotContains(t, line, "Ann Lee")
	}
	assert.Equal(t, 2, repo.created)
}

func TestSimulateMatch_PicksSeedWhenMissing(t *testing.T) {
	repo := newMockRepo()
	req := MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Spain")}

	m, shared, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)
	assert.False(t, shared)
	assert.NotZero(t, m.Seed)
}

func TestSimulateMatch_Stalemate(t *testing.T) {
	repo := newMockRepo()
	req := MatchRequest{Player1: roster("Ann", "Vatican"), Player2: roster("Bob", "Vatican"), Seed: 3}

	m, _, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)
	assert.Equal(t, game.StatusStalemate, m.Status)
	assert.Equal(t, "", m.Winner)
	assert.Equal(t, 0, m.Turns)
	assert.Len(t, m.LogLines(), 1)
	assert.Equal(t, "", m.Loser())
}

func TestSimulateMatch_Errors(t *testing.T) {
	repo := newMockRepo()

	_, _, err := SimulateMatch(repo, MatchRequest{Player1: roster("Ann", "France"), Player2: roster("ann", "Spain"), Seed: 1}, defaultSettings)
	assert.ErrorIs(t, err, ErrInvalidRoster)

	_, _, err = SimulateMatch(repo, MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Atlantis"), Seed: 1}, defaultSettings)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	big := game.Roster{Player: "Bob", Units: []game.RosterUnit{{Name: "Wall", Health: intp(100000), Attack: intp(1)}}}
	_, _, err = SimulateMatch(repo, MatchRequest{Player1: roster("Ann", "France"), Player2: big, Seed: 1}, Settings{MaxTurns: 5})
	assert.ErrorIs(t, err, ErrSimulationFailed)
	assert.True(t, strings.Contains(err.Error(), "turn limit"))

	assert.Zero(t, repo.created, "failed simulations are not recorded")
}

func TestSimulateMatch_SaveFailure(t *testing.T) {
	repo := newMockRepo()
	repo.createErr = errDiskFull

	_, _, err := SimulateMatch(repo, MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Spain"), Seed: 5}, defaultSettings)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, repo.statsCalled)
}

func TestGetMatch(t *testing.T) {
	repo := newMockRepo()
	m, _, err := SimulateMatch(repo, MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Spain"), Seed: 8}, defaultSettings)
	require.NoError(t, err)

	got, err := GetMatch(repo, m.PublicID)
	require.NoError(t, err)
	assert.Same(t, m, got)

	_, err = GetMatch(repo, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidMatchID)

	_, err = GetMatch(repo, "3f0c2a64-5d2e-4b8e-9f61-0d4f3b2a1c9e")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSimulate_DoesNotRecord(t *testing.T) {
	repo := newMockRepo()
	req := MatchRequest{Player1: roster("Ann", "France"), Player2: roster("Bob", "Spain"), Seed: 21}

	res, seed, err := Simulate(repo, req, defaultSettings)
	require.NoError(t, err)
	assert.EqualValues(t, 21, seed)
	assert.Contains(t, []string{"Ann", "Bob"}, res.Winner)
	assert.NotEmpty(t, res.Log)
	assert.Zero(t, repo.created)

	m, _, err := SimulateMatch(repo, req, defaultSettings)
	require.NoError(t, err)
	assert.Equal(t, res.Log, m.LogLines())
	assert.Equal(t, res.Turns, m.Turns)

	_, _, err = Simulate(repo, MatchRequest{Player1: roster("Ann"), Player2: roster("Bob", "Spain")}, defaultSettings)
	assert.ErrorIs(t, err, ErrInvalidRoster)
}
