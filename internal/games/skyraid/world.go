package skyraid

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// World is the simulation context of one run. It is passed explicitly to
// every subsystem that needs shared state: entity updates, the collision
// manager and the spawners.
type World struct {
	cfg        config.SkyraidConfig
	field      core.Rect
	rng        *RNG
	log        *log.Logger
	difficulty *config.DifficultyManager

	Entities Collections
	pending  []*Entity
	nextID   uint64

	Input     core.InputFrame
	Score     int
	Kills     int
	Frames    int
	ElapsedMs float64
	Faults    int // Isolated entity and pair failures
}

// NewWorld creates an empty world. A nil logger discards output.
func NewWorld(cfg config.SkyraidConfig, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		cfg:        cfg,
		field:      core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
		rng:        NewRNG(seed),
		log:        logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Config returns the run configuration.
func (w *World) Config() *config.SkyraidConfig {
	return &w.cfg
}

// Field returns the playfield rectangle.
func (w *World) Field() core.Rect {
	return w.field
}

// RNG returns the run's random source.
func (w *World) RNG() *RNG {
	return w.rng
}

// Player returns the player if it is alive.
func (w *World) Player() *Entity {
	if p := w.Entities.Player; p.Alive() {
		return p
	}
	return nil
}

// Level returns the current difficulty tier.
func (w *World) Level() int {
	return w.difficulty.Tier(w.Score)
}

// AddScore adds points to the run score.
func (w *World) AddScore(points int) {
	w.Score += points
}

// Spawn assigns an ID to e and queues it. Queued entities join their
// collection on the next Flush, never while a collection is being iterated.
func (w *World) Spawn(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	w.pending = append(w.pending, e)
	return e
}

// Pending returns the number of queued entities.
func (w *World) Pending() int {
	return len(w.pending)
}

// Flush moves queued entities into their collections in spawn order.
func (w *World) Flush() {
	for _, e := range w.pending {
		w.Entities.add(e)
	}
	clear(w.pending)
	w.pending = w.pending[:0]
}

// updateAll runs one guarded update for every entity. The player goes
// first so enemies aim at its new position.
func (w *World) updateAll(dt float64) {
	w.Entities.Each(func(e *Entity) {
		if !e.Alive() {
			return
		}
		w.Guard("update", e, func() error {
			return e.Update(w, dt)
		})
	})
}

// killEnemy awards the enemy's points and plays its death effects.
func (w *World) killEnemy(e *Entity) {
	s := e.Enemy
	w.AddScore(s.Points)
	w.Kills++

	size := ExplosionNormal
	if s.MaxHealth >= bossHealthThreshold {
		size = ExplosionLarge
	}
	w.Explode(e.Center(), size)

	if w.rng.Chance(s.DropChance) {
		c := e.Center()
		half := w.cfg.Pickups.Size / 2
		w.Spawn(NewPowerup(w.rollPowerup(), c.X-half, c.Y-half, w.cfg.Pickups))
	}
}
