package skyraid

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Movement patterns understood by enemies.
const (
	PatternStraight = "straight"
	PatternZigzag   = "zigzag"
	PatternSine     = "sine"
	PatternPatrol   = "patrol"
)

const (
	zigzagIntervalMs    = 500.0
	zigzagDrift         = 0.75 // Horizontal speed relative to descent speed
	sineAmplitude       = 100.0
	sineFrequency       = 2.0 // Radians per second
	patrolEntryY        = 50.0
	patrolSpeedFactor   = 2.0
	enemySpread         = 0.3 // Radians between bullets of one volley
	hitFlashMs          = 100.0
	bossHealthThreshold = 10
	shieldIntervalMs    = 5000.0
	shieldDurationMs    = 2000.0
)

// EnemyState is the enemy variant payload.
type EnemyState struct {
	Type       string
	Pattern    string
	Health     int
	MaxHealth  int
	Points     int
	Damage     int
	Speed      float64
	FireRate   float64
	Shots      int
	DropChance float64

	ShootRange  float64 // 0 fires from any distance
	BulletSpeed float64
	HasShield   bool

	Dir          float64 // Horizontal direction, -1 or 1
	BaseX        float64 // Sine pattern axis
	FireTimer    float64
	PatternTimer float64
	HitFlash     float64
	ShieldTimer  float64
	Shielded     float64 // Remaining invulnerability
}

// NewEnemy creates an enemy of the configured type at (x, y). Its speed is
// scaled by the world's current difficulty.
func NewEnemy(w *World, typ string, x, y float64) (*Entity, error) {
	ec, ok := w.cfg.Enemies[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, typ)
	}

	dir := 1.0
	if w.rng.Chance(0.5) {
		dir = -1
	}

	e := newEntity(KindEnemy, x, y, ec.Width, ec.Height)
	e.Enemy = &EnemyState{
		Type:       typ,
		Pattern:    ec.Pattern,
		Health:     ec.Health,
		MaxHealth:  ec.Health,
		Points:     ec.Points,
		Damage:     ec.Damage,
		Speed:      w.difficulty.Speed(ec.Speed, w.Score, w.Frames),
		FireRate:   ec.FireRate,
		Shots:      ec.Shots,
		DropChance: ec.DropChance,
		Dir:        dir,
		BaseX:      x,

		ShootRange:  ec.ShootRange,
		BulletSpeed: ec.BulletSpeed,
		HasShield:   slices.Contains(ec.Abilities, config.AbilityShield),
	}
	if e.Enemy.BulletSpeed <= 0 {
		e.Enemy.BulletSpeed = w.cfg.Bullets.EnemySpeed
	}
	return e, nil
}

// TakeDamage subtracts n health and destroys the enemy when none is left.
// It reports whether the enemy died. A shielded enemy takes no damage.
func (s *EnemyState) TakeDamage(e *Entity, n int) bool {
	if s.Shielded > 0 {
		return false
	}
	s.Health -= n
	s.HitFlash = hitFlashMs
	if s.Health <= 0 {
		e.Destroy()
		return true
	}
	return false
}

func updateEnemy(e *Entity, w *World, dt float64) error {
	s := e.Enemy
	s.HitFlash = max(0, s.HitFlash-dt)
	s.updateShield(dt)

	switch s.Pattern {
	case PatternStraight:
		e.Vel.Set(0, s.Speed)
		e.integrate(dt)

	case PatternZigzag:
		s.PatternTimer += dt
		if s.PatternTimer >= zigzagIntervalMs {
			s.PatternTimer = 0
			s.Dir = -s.Dir
		}
		e.Vel.Set(s.Dir*s.Speed*zigzagDrift, s.Speed)
		e.integrate(dt)
		patrolBounce(e, w.field.Left(), w.field.Right())

	case PatternSine:
		e.Vel.Set(0, s.Speed)
		e.integrate(dt)
		t := (e.Age + dt) / 1000
		e.Pos.X = core.ClampF(s.BaseX+math.Sin(t*sineFrequency)*sineAmplitude, w.field.Left(), w.field.Right()-e.W)

	case PatternPatrol:
		if e.Pos.Y < patrolEntryY {
			e.Vel.Set(0, s.Speed)
		} else {
			e.Vel.Set(s.Dir*s.Speed*patrolSpeedFactor, 0)
		}
		e.integrate(dt)
		patrolBounce(e, w.field.Left(), w.field.Right())

	default:
		return fmt.Errorf("enemy %d: unknown movement pattern %q", e.ID, s.Pattern)
	}

	enemyFire(e, w, dt)
	return nil
}

// updateShield raises the shield every shieldIntervalMs for shieldDurationMs.
func (s *EnemyState) updateShield(dt float64) {
	if !s.HasShield {
		return
	}
	s.Shielded = max(0, s.Shielded-dt)
	s.ShieldTimer += dt
	if s.ShieldTimer >= shieldIntervalMs {
		s.ShieldTimer = 0
		s.Shielded = shieldDurationMs
	}
}

// patrolBounce reverses horizontal motion once e crosses minX or maxX and
// puts it back inside the bounds.
func patrolBounce(e *Entity, minX, maxX float64) {
	s := e.Enemy
	switch {
	case e.Pos.X < minX:
		e.Pos.X = minX
		e.Vel.X = math.Abs(e.Vel.X)
		s.Dir = 1
	case e.Pos.X+e.W > maxX:
		e.Pos.X = maxX - e.W
		e.Vel.X = -math.Abs(e.Vel.X)
		s.Dir = -1
	}
}

// enemyFire shoots a volley aimed at the player once the fire timer is due
// and the player is within range. Enemies still above the field hold fire.
func enemyFire(e *Entity, w *World, dt float64) {
	s := e.Enemy
	if s.FireRate <= 0 || e.Pos.Y < 0 {
		return
	}
	player := w.Player()
	if player == nil {
		return
	}

	s.FireTimer += dt
	if s.FireTimer < 1000/s.FireRate {
		return
	}
	c := e.Center()
	if s.ShootRange > 0 && c.Dist(player.Center()) > s.ShootRange {
		return
	}
	s.FireTimer = 0

	bc := w.cfg.Bullets
	aim := c.AngleTo(player.Center())
	shots := max(1, s.Shots)
	for i := 0; i < shots; i++ {
		offset := (float64(i) - float64(shots-1)/2) * enemySpread
		vel := core.FromAngle(aim+offset, s.BulletSpeed)
		w.Spawn(NewBullet(OwnerEnemy, c.X-bc.Width/2, e.Pos.Y+e.H, vel, bc, 0))
	}
}
