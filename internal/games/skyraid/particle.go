package skyraid

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// ExplosionSize selects particle count and spread of an explosion.
type ExplosionSize int

const (
	ExplosionSmall ExplosionSize = iota
	ExplosionNormal
	ExplosionLarge
)

const (
	minParticleSpeed = 50.0
	sparkleCount     = 8
	sparkleJitter    = 0.2
)

var explosionColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightWhite,
}

// ParticleState is the particle variant payload. Particles never collide.
type ParticleState struct {
	Gravity       float64
	Friction      float64
	AirResistance float64
	Color         core.Color
}

// NewParticle creates a particle that lives for pc.LifespanMs.
func NewParticle(x, y float64, vel core.Vector, pc config.ParticleConfig, color core.Color) *Entity {
	e := newEntity(KindParticle, x, y, pc.Size, pc.Size)
	e.Vel = vel
	e.MaxAge = pc.LifespanMs
	e.Particle = &ParticleState{
		Gravity:       pc.Gravity,
		Friction:      pc.Friction,
		AirResistance: pc.AirResistance,
		Color:         color,
	}
	return e
}

// Fade returns the remaining opacity of e in [0, 1].
func (e *Entity) Fade() float64 {
	if e.MaxAge <= 0 {
		return 1
	}
	return core.ClampF(1-e.Age/e.MaxAge, 0, 1)
}

func updateParticle(e *Entity, dt float64) error {
	s := e.Particle
	e.Vel.Y += s.Gravity * dt / 1000
	e.Vel.Scale(s.Friction * s.AirResistance)
	e.integrate(dt)
	return nil
}

// Explode scatters particles evenly around at.
func (w *World) Explode(at core.Vector, size ExplosionSize) {
	pc := w.cfg.Particles
	count, maxSpeed := pc.Normal, pc.Speed*2
	switch size {
	case ExplosionSmall:
		count, maxSpeed = pc.Small, pc.Speed
	case ExplosionLarge:
		count, maxSpeed = pc.Large, pc.Speed*3
	}

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := w.rng.Range(minParticleSpeed, math.Max(minParticleSpeed, maxSpeed))
		color := explosionColors[i%len(explosionColors)]
		w.Spawn(NewParticle(at.X, at.Y, core.FromAngle(angle, speed), pc, color))
	}
}

// Sparkle plays the pickup collection effect at at.
func (w *World) Sparkle(at core.Vector) {
	pc := w.cfg.Particles
	for i := 0; i < sparkleCount; i++ {
		angle := 2*math.Pi*float64(i)/sparkleCount + w.rng.Range(-sparkleJitter, sparkleJitter)
		w.Spawn(NewParticle(at.X, at.Y, core.FromAngle(angle, pc.Speed), pc, core.ColorBrightYellow))
	}
}
