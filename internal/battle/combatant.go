package battle

// Combatant is one unit taking part in a battle. A battle owns its
// combatants for the whole resolution; callers must not share them between
// concurrent battles.
type Combatant struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Health int    `json:"health"`
	Attack int    `json:"attack"`
	Dead   bool   `json:"dead"`
}

// displayName renders "<owner>'s <name>", the form used by every log line.
func (c *Combatant) displayName() string {
	return c.Owner + "'s " + c.Name
}

// takeDamage applies dmg and reports whether the hit was lethal. Health is
// floored at zero and a dead combatant never comes back.
func (c *Combatant) takeDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	c.Health -= dmg
	if c.Health <= 0 {
		c.Health = 0
		c.Dead = true
	}
	return c.Dead
}

// living returns the combatants of a side that are still standing, in
// roster order.
func living(side []*Combatant) []*Combatant {
	out := make([]*Combatant, 0, len(side))
	for _, c := range side {
		if !c.Dead {
			out = append(out, c)
		}
	}
	return out
}

// defeated reports whether every combatant of a side is dead.
func defeated(side []*Combatant) bool {
	for _, c := range side {
		if !c.Dead {
			return false
		}
	}
	return true
}

// ownerOf returns the label of the side, taken from its first combatant.
func ownerOf(side []*Combatant) string {
	if len(side) == 0 {
		return ""
	}
	return side[0].Owner
}
