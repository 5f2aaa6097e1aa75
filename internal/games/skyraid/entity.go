package skyraid

import (
	"fmt"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Kind tags the variant carried by an Entity.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindBullet
	KindParticle
	KindPowerup
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindParticle:
		return "particle"
	case KindPowerup:
		return "powerup"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Entity is any simulated object. The shared fields hold position, motion
// and lifecycle; exactly one payload pointer, matching Kind, holds the
// variant state.
//
// Destruction is two-phase: Destroy marks the entity during update or
// collision resolution and Cleanup removes it at the end of the frame.
type Entity struct {
	ID     uint64
	Kind   Kind
	Pos    core.Vector // Top-left corner
	Vel    core.Vector // Units per second
	W, H   float64
	Active bool
	Marked bool
	Age    float64 // Milliseconds alive
	MaxAge float64 // 0 means unlimited

	Player   *PlayerState
	Enemy    *EnemyState
	Bullet   *BulletState
	Particle *ParticleState
	Powerup  *PowerupState
}

func newEntity(kind Kind, x, y, w, h float64) *Entity {
	return &Entity{
		Kind:   kind,
		Pos:    core.Vec(x, y),
		W:      w,
		H:      h,
		Active: true,
	}
}

// Alive reports whether the entity may still interact with others.
func (e *Entity) Alive() bool {
	return e != nil && e.Active && !e.Marked
}

// Destroy marks the entity for removal. It is idempotent.
func (e *Entity) Destroy() {
	e.Active = false
	e.Marked = true
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.W, e.H)
}

// Center returns the center of the bounding box.
func (e *Entity) Center() core.Vector {
	return core.Vec(e.Pos.X+e.W/2, e.Pos.Y+e.H/2)
}

// integrate advances the position by the velocity over dt milliseconds.
func (e *Entity) integrate(dt float64) {
	e.Pos.Add(e.Vel.Times(dt / 1000))
}

// Update runs one frame of the entity's behavior. Updating an entity that is
// no longer alive does nothing.
func (e *Entity) Update(w *World, dt float64) error {
	if !e.Alive() {
		return nil
	}

	var err error
	switch e.Kind {
	case KindPlayer:
		if e.Player == nil {
			return errMissingPayload(e)
		}
		err = updatePlayer(e, w, dt)
	case KindEnemy:
		if e.Enemy == nil {
			return errMissingPayload(e)
		}
		err = updateEnemy(e, w, dt)
	case KindBullet:
		if e.Bullet == nil {
			return errMissingPayload(e)
		}
		err = updateBullet(e, w, dt)
	case KindParticle:
		if e.Particle == nil {
			return errMissingPayload(e)
		}
		err = updateParticle(e, dt)
	case KindPowerup:
		if e.Powerup == nil {
			return errMissingPayload(e)
		}
		err = updatePowerup(e, dt)
	default:
		return fmt.Errorf("%w: entity %d has unknown kind %v", ErrEntityFault, e.ID, e.Kind)
	}
	if err != nil {
		return err
	}

	e.Age += dt
	if e.MaxAge > 0 && e.Age >= e.MaxAge {
		e.Destroy()
	}
	return nil
}

func errMissingPayload(e *Entity) error {
	return fmt.Errorf("%w: %v entity %d has no state", ErrEntityFault, e.Kind, e.ID)
}
