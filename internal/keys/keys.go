package keys

import (
	"strconv"
	"strings"

	"github.com/ericogr/tournament-arena/internal/game"
)

// field appends s length-prefixed, so separators inside names cannot make
// two different inputs render the same.
func field(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func stat(b *strings.Builder, v *int) {
	if v == nil {
		b.WriteByte('-')
		return
	}
	b.WriteString(strconv.Itoa(*v))
}

// RosterKey renders a roster as a stable string. Names are only trimmed, as
// they are when the battle is built, because they end up verbatim in the log
// and the record. Unit order is kept because it decides pairing.
func RosterKey(r game.Roster) string {
	var b strings.Builder
	field(&b, strings.TrimSpace(r.Player))
	b.WriteString(strconv.Itoa(len(r.Units)))
	for _, u := range r.Units {
		b.WriteByte('[')
		field(&b, strings.TrimSpace(u.Name))
		stat(&b, u.Health)
		b.WriteByte('/')
		stat(&b, u.Attack)
		b.WriteByte(']')
	}
	return b.String()
}

// MatchKey identifies a fully determined match: same seed and rosters in the
// same order always produce the same battle.
func MatchKey(seed int64, first, second game.Roster) string {
	return strconv.FormatInt(seed, 10) + "|" + RosterKey(first) + "|" + RosterKey(second)
}
