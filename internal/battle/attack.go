package battle

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// missThreshold is compared against an inclusive 0..100 roll; rolls at or
	// below it miss.
	missThreshold = 30
	missRollSpan  = 101

	damageSpreadMin = 0.8
	damageSpreadMax = 1.2
)

// rollMiss draws the miss event for one attack attempt.
func (b *Battle) rollMiss() (bool, error) {
	roll, err := b.src.IntN(missRollSpan)
	if err != nil {
		return false, fmt.Errorf("%w: miss roll: %w", ErrEntropy, err)
	}
	return roll <= missThreshold, nil
}

// rollDamage returns floor(attack * U) with U uniform in [0.8, 1.2].
func (b *Battle) rollDamage(attacker *Combatant) (int, error) {
	f, err := b.src.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: damage roll: %w", ErrEntropy, err)
	}
	mult := damageSpreadMin + (damageSpreadMax-damageSpreadMin)*f
	dmg := int(math.Floor(float64(attacker.Attack) * mult))
	if dmg < 0 {
		// negative attack never heals
		dmg = 0
	}
	return dmg, nil
}

// pickTarget chooses uniformly among the living members of the opposing
// side at the moment of the attack.
func (b *Battle) pickTarget(enemies []*Combatant) (*Combatant, error) {
	alive := living(enemies)
	if len(alive) == 0 {
		return nil, fmt.Errorf("%w: no living target", ErrEntropy)
	}
	idx, err := b.src.IntN(len(alive))
	if err != nil {
		return nil, fmt.Errorf("%w: target roll: %w", ErrEntropy, err)
	}
	if idx < 0 || idx >= len(alive) {
		return nil, fmt.Errorf("%w: target index %d out of range", ErrEntropy, idx)
	}
	return alive[idx], nil
}

// takeTurn runs one attack attempt by actor. counterpart is the combatant
// actor is paired with this round and is only named by miss lines; the real
// target is drawn from enemies. It returns the log line and whether the
// attempt missed.
func (b *Battle) takeTurn(actor, counterpart *Combatant, enemies []*Combatant) (string, bool, error) {
	if b.maxTurns > 0 && b.turns >= b.maxTurns {
		return "", false, fmt.Errorf("%w (%d turns)", ErrNoProgress, b.turns)
	}
	b.turns++
	prefix := "Turn " + strconv.Itoa(b.turns) + ": "

	missed, err := b.rollMiss()
	if err != nil {
		return "", false, err
	}
	if missed {
		return prefix + actor.displayName() + " missed " + counterpart.displayName(), true, nil
	}

	target, err := b.pickTarget(enemies)
	if err != nil {
		return "", false, err
	}
	dmg, err := b.rollDamage(actor)
	if err != nil {
		return "", false, err
	}
	if target.takeDamage(dmg) {
		return prefix + actor.displayName() + " has killed " + target.displayName(), false, nil
	}
	return prefix + actor.displayName() + " has dealt " + strconv.Itoa(dmg) + " damage to " + target.displayName(), false, nil
}
