package skyraid

import (
	"fmt"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// PowerupType names a pickup effect.
type PowerupType string

const (
	PowerupWeapon    PowerupType = "weapon"
	PowerupHealth    PowerupType = "health"
	PowerupShield    PowerupType = "shield"
	PowerupRapidFire PowerupType = "rapidfire"
	PowerupMultiShot PowerupType = "multishot"
)

// PowerupState is the pickup variant payload.
type PowerupState struct {
	Type PowerupType
}

// NewPowerup creates a falling pickup at (x, y).
func NewPowerup(typ PowerupType, x, y float64, pc config.PickupConfig) *Entity {
	e := newEntity(KindPowerup, x, y, pc.Size, pc.Size)
	e.Vel = core.Vec(0, pc.FallSpeed)
	e.MaxAge = pc.MaxAgeMs
	e.Powerup = &PowerupState{Type: typ}
	return e
}

func updatePowerup(e *Entity, dt float64) error {
	e.integrate(dt)
	return nil
}

// rollPowerup picks a pickup type from the weighted table.
func (w *World) rollPowerup() PowerupType {
	total := 0
	for _, wt := range w.cfg.Pickups.Weights {
		total += max(0, wt.Weight)
	}
	if total == 0 {
		return PowerupWeapon
	}

	roll := w.rng.Intn(total)
	for _, wt := range w.cfg.Pickups.Weights {
		roll -= max(0, wt.Weight)
		if roll < 0 {
			return PowerupType(wt.Type)
		}
	}
	return PowerupWeapon
}

// SpawnPickup drops a random pickup at a random horizontal position above
// the field.
func (w *World) SpawnPickup() *Entity {
	size := w.cfg.Pickups.Size
	x := w.rng.Float64() * (w.field.W - size)
	return w.Spawn(NewPowerup(w.rollPowerup(), x, -size, w.cfg.Pickups))
}

// applyPowerup grants the pickup's effect to the player.
func applyPowerup(player *Entity, typ PowerupType, w *World) error {
	p := player.Player
	spec := w.cfg.Powerups[string(typ)]

	switch typ {
	case PowerupWeapon:
		maxLevel := w.cfg.Player.MaxWeaponLevel
		if p.WeaponLevel >= maxLevel {
			w.AddScore(maxWeaponBonus)
			return nil
		}
		p.WeaponLevel = min(maxLevel, p.WeaponLevel+max(1, spec.Amount))
	case PowerupHealth:
		p.Lives = min(p.MaxLives, p.Lives+max(1, spec.Amount))
	case PowerupShield:
		p.Shield = max(p.Shield, spec.DurationMs)
	case PowerupRapidFire:
		p.RapidFire = max(p.RapidFire, spec.DurationMs)
	case PowerupMultiShot:
		p.MultiShot = max(p.MultiShot, spec.DurationMs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPowerup, typ)
	}
	return nil
}
