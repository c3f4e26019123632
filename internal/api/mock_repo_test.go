package api

import (
	"sort"
	"sync"

	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/service"
	"github.com/ericogr/tournament-arena/internal/storage"
)

var testUnits = []game.Unit{
	{Name: "France", Health: 120, Attack: 30},
	{Name: "Spain", Health: 90, Attack: 45},
	{Name: "Italy", Health: 100, Attack: 25},
}

type mockRepo struct {
	service.StaticCatalog
	mu      sync.Mutex
	matches []*game.Match
	players map[string]*game.PlayerRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		StaticCatalog: service.NewStaticCatalog(testUnits),
		players:       map[string]*game.PlayerRecord{},
	}
}

func (m *mockRepo) GetUnits() ([]game.Unit, error) {
	return append([]game.Unit(nil), testUnits...), nil
}

func (m *mockRepo) CreateMatch(g *game.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches = append(m.matches, g)
	return nil
}

func (m *mockRepo) GetMatchByPublicID(id string) (*game.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.matches {
		if g.PublicID == id {
			return g, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) GetRecentMatches(limit int) ([]game.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []game.Match{}
	for i := len(m.matches) - 1; i >= 0 && len(out) < limit; i-- {
		g := *m.matches[i]
		g.Entries = nil
		out = append(out, g)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatsOnMatchEnd(g *game.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range []string{g.Player1, g.Player2} {
		rec, ok := m.players[name]
		if !ok {
			rec = &game.PlayerRecord{Name: name}
			m.players[name] = rec
		}
		rec.MatchesPlayed++
		switch g.Winner {
		case "":
			rec.Stalemates++
		case name:
			rec.Wins++
		default:
			rec.Losses++
		}
	}
	g.StatsCounted = true
	return nil
}

func (m *mockRepo) GetTopPlayers(limit int) ([]game.PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]game.PlayerRecord, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRepo) recorded() []*game.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*game.Match(nil), m.matches...)
}
