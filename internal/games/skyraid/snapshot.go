package skyraid

import (
	"math"
	"slices"

	"github.com/vovakirdan/skyraid/internal/core"
)

// EntityView is the render-facing copy of one entity.
type EntityView struct {
	ID      uint64
	Kind    Kind
	X, Y    float64
	W, H    float64
	Variant string // Enemy type, powerup type or bullet owner
	Flash   bool   // Recently hit or blinking while invulnerable
	Shield  bool   // Enemy shield is up
	Fade    float64
	Color   core.Color
}

// Snapshot is an immutable copy of everything a renderer needs for one frame.
// Uses plain values only so it can be hashed for determinism tests.
type Snapshot struct {
	Frame        int
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool
	Lives        int
	Level        int
	Kills        int
	RunID        string

	WeaponLevel   int
	Shield        float64
	RapidFire     float64
	MultiShot     float64
	SpawnInterval float64
	Checks        int
	Hits          int
	Faults        int

	HasPlayer bool
	Player    EntityView
	Enemies   []EntityView
	Bullets   []EntityView
	Particles []EntityView
	Powerups  []EntityView

	RNGState uint64
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        g.phase,
		HighScore:    g.highScore,
		NewHighScore: g.newHigh,
		RunID:        g.runID,
		Checks:       g.collisions.Checks,
		Hits:         g.collisions.Hits,
	}
	if g.enemies != nil {
		snap.SpawnInterval = g.enemies.Interval
	}

	w := g.world
	if w == nil {
		return snap
	}
	snap.Frame = w.Frames
	snap.Score = w.Score
	snap.Level = w.Level()
	snap.Kills = w.Kills
	snap.Faults = w.Faults
	snap.RNGState = w.rng.State()

	if p := w.Player(); p != nil {
		snap.HasPlayer = true
		snap.Player = viewOf(p, w.Frames)
		snap.Lives = p.Player.Lives
		snap.WeaponLevel = p.Player.WeaponLevel
		snap.Shield = p.Player.Shield
		snap.RapidFire = p.Player.RapidFire
		snap.MultiShot = p.Player.MultiShot
	}

	snap.Enemies = viewsOf(w.Entities.Enemies, w.Frames)
	snap.Bullets = viewsOf(w.Entities.Bullets, w.Frames)
	snap.Particles = viewsOf(w.Entities.Particles, w.Frames)
	snap.Powerups = viewsOf(w.Entities.Powerups, w.Frames)
	return snap
}

// viewsOf copies the alive entities of list. Destroyed entities are left out
// even before cleanup removes them.
func viewsOf(list []*Entity, frame int) []EntityView {
	out := make([]EntityView, 0, len(list))
	for _, e := range list {
		if e.Alive() {
			out = append(out, viewOf(e, frame))
		}
	}
	return out
}

func viewOf(e *Entity, frame int) EntityView {
	v := EntityView{
		ID:   e.ID,
		Kind: e.Kind,
		X:    e.Pos.X,
		Y:    e.Pos.Y,
		W:    e.W,
		H:    e.H,
		Fade: 1,
	}
	switch {
	case e.Player != nil:
		v.Flash = e.Player.Invulnerable > 0 && frame/4%2 == 0
		if e.Player.Shield > 0 {
			v.Variant = "shield"
		}
	case e.Enemy != nil:
		v.Variant = e.Enemy.Type
		v.Flash = e.Enemy.HitFlash > 0
		v.Shield = e.Enemy.Shielded > 0
	case e.Bullet != nil:
		v.Variant = e.Bullet.Owner.String()
	case e.Particle != nil:
		v.Fade = e.Fade()
		v.Color = e.Particle.Color
	case e.Powerup != nil:
		v.Variant = string(e.Powerup.Type)
	}
	return v
}

// Views returns every entity view in draw order: particles first, the player
// last.
func (snap *Snapshot) Views() []EntityView {
	out := slices.Concat(snap.Particles, snap.Powerups, snap.Enemies, snap.Bullets)
	if snap.HasPlayer {
		out = append(out, snap.Player)
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WeaponLevel)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.SpawnInterval)
	h = h*31 + uint64(len(snap.Enemies))   //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Bullets))   //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Particles)) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Powerups))  //#nosec G115 -- hash computation

	for _, v := range snap.Views() {
		h = h*31 + v.ID
		h = h*31 + uint64(v.Kind)
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
	}

	h = h*31 + snap.RNGState

	return h
}
