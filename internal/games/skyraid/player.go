package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Weapon tuning not exposed in the config file.
const (
	spreadOffset    = 8.0  // Horizontal gap between parallel barrels
	multiShotAngle  = 0.3  // Radians of the extra multishot barrels
	maxSpreadAngle  = 0.35 // Widest barrel angle for high weapon levels
	maxWeaponBonus  = 100  // Score for a weapon pickup at max level
	pierceAtMaxLv   = 2    // Extra enemies a max-level bullet passes through
	maxSpreadShots  = 7
	rapidFireFactor = 0.5
)

// PlayerState is the player variant payload.
type PlayerState struct {
	Lives        int
	MaxLives     int
	WeaponLevel  int
	FireCooldown float64 // Milliseconds until the next shot
	Invulnerable float64 // Milliseconds of post-hit immunity left
	Shield       float64 // Milliseconds of shield left
	RapidFire    float64
	MultiShot    float64
	ShotsFired   int
}

// NewPlayer creates the player centered near the bottom of the field.
func NewPlayer(pc config.PlayerConfig, field core.Rect) *Entity {
	x := field.W/2 - pc.Width/2
	y := field.H - pc.BottomOffset
	e := newEntity(KindPlayer, x, y, pc.Width, pc.Height)
	e.Player = &PlayerState{
		Lives:       pc.Lives,
		MaxLives:    max(pc.MaxLives, pc.Lives),
		WeaponLevel: 1,
	}
	return e
}

// Protected reports whether hits are currently ignored.
func (p *PlayerState) Protected() bool {
	return p.Shield > 0 || p.Invulnerable > 0
}

func (p *PlayerState) tickTimers(dt float64) {
	p.FireCooldown = max(0, p.FireCooldown-dt)
	p.Invulnerable = max(0, p.Invulnerable-dt)
	p.Shield = max(0, p.Shield-dt)
	p.RapidFire = max(0, p.RapidFire-dt)
	p.MultiShot = max(0, p.MultiShot-dt)
}

func updatePlayer(e *Entity, w *World, dt float64) error {
	p := e.Player
	pc := w.cfg.Player

	var dir core.Vector
	if w.Input.IsPressed(core.KeyLeft) {
		dir.X--
	}
	if w.Input.IsPressed(core.KeyRight) {
		dir.X++
	}
	if w.Input.IsPressed(core.KeyUp) {
		dir.Y--
	}
	if w.Input.IsPressed(core.KeyDown) {
		dir.Y++
	}
	dir.Normalize()

	rate := pc.Deceleration
	if !dir.IsZero() {
		rate = pc.Acceleration
	}
	approach(&e.Vel, dir.Times(pc.Speed), rate*dt/1000)
	e.integrate(dt)
	clampToField(e, w.field)

	p.tickTimers(dt)

	if w.Input.IsPressed(core.KeyFire) && p.FireCooldown <= 0 {
		firePlayer(e, w)
		p.FireCooldown = pc.FireCooldownMs
		if p.RapidFire > 0 {
			p.FireCooldown *= rapidFireFactor
		}
	}
	return nil
}

// approach moves v toward target by at most step.
func approach(v *core.Vector, target core.Vector, step float64) {
	diff := target.Minus(*v)
	if diff.MagSq() <= step*step {
		v.Copy(target)
		return
	}
	v.Add(diff.Normalized().Times(step))
}

// clampToField keeps e inside field and stops motion into the edges.
func clampToField(e *Entity, field core.Rect) {
	x := core.ClampF(e.Pos.X, field.Left(), field.Right()-e.W)
	y := core.ClampF(e.Pos.Y, field.Top(), field.Bottom()-e.H)
	if x != e.Pos.X {
		e.Vel.X = 0
	}
	if y != e.Pos.Y {
		e.Vel.Y = 0
	}
	e.Pos.Set(x, y)
}

// barrel is one bullet of a volley: a horizontal offset from the ship's
// center and an angle off straight up.
type barrel struct {
	dx    float64
	angle float64
}

// weaponPattern returns the volley for a weapon level.
func weaponPattern(level int) []barrel {
	switch {
	case level <= 1:
		return []barrel{{0, 0}}
	case level == 2:
		return []barrel{{-spreadOffset, 0}, {spreadOffset, 0}}
	case level == 3:
		return []barrel{{0, 0}, {-spreadOffset, -0.15}, {spreadOffset, 0.15}}
	case level == 4:
		return []barrel{{-spreadOffset, 0}, {spreadOffset, 0}, {-spreadOffset, -0.25}, {spreadOffset, 0.25}}
	}

	n := min(level, maxSpreadShots)
	out := make([]barrel, n)
	for i := range out {
		t := float64(i)/float64(n-1)*2 - 1
		out[i] = barrel{dx: t * spreadOffset, angle: t * maxSpreadAngle}
	}
	return out
}

func firePlayer(e *Entity, w *World) {
	p := e.Player
	bc := w.cfg.Bullets

	volley := weaponPattern(p.WeaponLevel)
	if p.MultiShot > 0 {
		volley = append(volley, barrel{0, -multiShotAngle}, barrel{0, multiShotAngle})
	}

	pierce := 0
	if p.WeaponLevel >= w.cfg.Player.MaxWeaponLevel {
		pierce = pierceAtMaxLv
	}

	c := e.Center()
	for _, b := range volley {
		vel := core.Up().Rotated(b.angle).Times(bc.PlayerSpeed)
		x := c.X + b.dx - bc.Width/2
		y := e.Pos.Y - bc.Height
		w.Spawn(NewBullet(OwnerPlayer, x, y, vel, bc, pierce))
	}
	p.ShotsFired++
}

// damagePlayer applies damage unless the player is protected. Losing the
// last life destroys the player. It reports whether damage was taken.
func damagePlayer(e *Entity, dmg int, w *World) bool {
	p := e.Player
	if dmg <= 0 || p.Protected() {
		return false
	}

	p.Lives -= dmg
	if p.Lives <= 0 {
		p.Lives = 0
		w.Explode(e.Center(), ExplosionLarge)
		e.Destroy()
		return true
	}
	p.Invulnerable = w.cfg.Player.InvulnerableMs
	return true
}
