package service

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/storage"
)

type mockRepo struct {
	StaticCatalog
	mu          sync.Mutex
	matches     map[string]*game.Match
	created     int
	statsCalled int
	createErr   error

	// When hold is set, the first CreateMatch closes entered and waits for
	// hold to be closed.
	hold    chan struct{}
	entered chan struct{}
	creates atomic.Int32
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		StaticCatalog: NewStaticCatalog([]game.Unit{
			{Name: "France", Health: 120, Attack: 30},
			{Name: "Spain", Health: 90, Attack: 45},
			{Name: "Italy", Health: 100, Attack: 25},
			{Name: "Vatican", Health: 40, Attack: 0},
		}),
		matches: map[string]*game.Match{},
	}
}

func (m *mockRepo) CreateMatch(g *game.Match) error {
	if m.hold != nil && m.creates.Add(1) == 1 {
		close(m.entered)
		<-m.hold
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.created++
	m.matches[g.PublicID] = g
	return nil
}

func (m *mockRepo) UpdateStatsOnMatchEnd(g *game.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsCalled++
	g.StatsCounted = true
	return nil
}

func (m *mockRepo) GetMatchByPublicID(id string) (*game.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.matches[id]; ok {
		return g, nil
	}
	return nil, storage.ErrNotFound
}

var errDiskFull = errors.New("disk full")

func intp(v int) *int { return &v }

func roster(player string, names ...string) game.Roster {
	r := game.Roster{Player: player}
	for _, n := range names {
		r.Units = append(r.Units, game.RosterUnit{Name: n})
	}
	return r
}
