// Package transcript renders recorded matches as plain text, the form the
// tournament bot attaches to its result messages.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ericogr/tournament-arena/internal/game"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename returns "battle_<winner>_vs_<loser>.txt". Stalemates use the
// players in roster order.
func Filename(m *game.Match) string {
	first, second := m.Player1, m.Player2
	if m.Winner != "" {
		first, second = m.Winner, m.Loser()
	}
	return "battle_" + safe(first) + "_vs_" + safe(second) + ".txt"
}

func safe(s string) string {
	s = unsafeFilename.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// Render writes the header, every log line and the closing summary.
func Render(m *game.Match) string {
	var b strings.Builder
	b.WriteString(m.Player1 + " vs " + m.Player2 + "\n")
	if m.PublicID != "" {
		b.WriteString("Match: " + m.PublicID + "\n")
	}
	b.WriteString("Seed: " + strconv.FormatInt(m.Seed, 10) + "\n")
	b.WriteString(teamLine(m, 1))
	b.WriteString(teamLine(m, 2))
	b.WriteString("\n")
	for _, line := range m.LogLines() {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nTurns: " + strconv.Itoa(m.Turns) + "\n")
	if m.Winner == "" {
		b.WriteString("Winner: none\n")
	} else {
		b.WriteString("Winner: " + m.Winner + "\n")
	}
	return b.String()
}

func teamLine(m *game.Match, side int) string {
	owner := m.Player1
	if side == 2 {
		owner = m.Player2
	}
	names := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Side == side {
			names = append(names, e.Name+" ("+strconv.Itoa(e.StartHealth)+" HP / "+strconv.Itoa(e.Attack)+" ATK)")
		}
	}
	if len(names) == 0 {
		return ""
	}
	return owner + "'s team: " + strings.Join(names, ", ") + "\n"
}
