package skyraid

import (
	"slices"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Owner identifies who fired a bullet.
type Owner uint8

const (
	OwnerPlayer Owner = iota + 1
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// BulletState is the bullet variant payload.
type BulletState struct {
	Owner  Owner
	Damage int
	Pierce int      // Further enemies this bullet may pass through
	Hit    []uint64 // Enemies already damaged by a piercing bullet
}

// HasHit reports whether the bullet already damaged the enemy with id.
func (s *BulletState) HasHit(id uint64) bool {
	return slices.Contains(s.Hit, id)
}

// NewBullet creates a bullet travelling in a straight line at vel.
func NewBullet(owner Owner, x, y float64, vel core.Vector, bc config.BulletConfig, pierce int) *Entity {
	e := newEntity(KindBullet, x, y, bc.Width, bc.Height)
	e.Vel = vel
	e.MaxAge = bc.MaxLifetimeMs
	e.Bullet = &BulletState{
		Owner:  owner,
		Damage: bc.Damage,
		Pierce: pierce,
	}
	return e
}

func updateBullet(e *Entity, w *World, dt float64) error {
	e.integrate(dt)

	m := w.cfg.Playfield.Margin
	f := w.field
	if e.Pos.X < f.Left()-m || e.Pos.X > f.Right()+m || e.Pos.Y < f.Top()-m || e.Pos.Y > f.Bottom()+m {
		e.Destroy()
	}
	return nil
}
