package skyraid

import "fmt"

// SpawnDirector paces a spawner. After each spawn the interval shrinks by
// Decrement down to Floor, so after n spawns it is max(Floor, start-n*Decrement).
type SpawnDirector struct {
	Timer     float64
	Interval  float64
	Decrement float64
	Floor     float64
	Count     int
}

// NewSpawnDirector creates a director that first fires after start ms.
func NewSpawnDirector(start, decrement, floor float64) SpawnDirector {
	return SpawnDirector{
		Interval:  start,
		Decrement: decrement,
		Floor:     floor,
	}
}

// Tick adds dt and reports whether a spawn is due.
func (d *SpawnDirector) Tick(dt float64) bool {
	d.Timer += dt
	return d.Timer >= d.Interval
}

// Advance records a spawn and tightens the interval.
func (d *SpawnDirector) Advance() {
	d.Timer = 0
	d.Count++
	d.Interval = max(d.Floor, d.Interval-d.Decrement)
}

// EnemySpawner drops enemies from above the field on the director's pace.
type EnemySpawner struct {
	SpawnDirector
}

// NewEnemySpawner creates a spawner from the world's spawn settings.
func NewEnemySpawner(w *World) *EnemySpawner {
	sc := w.cfg.Spawn
	return &EnemySpawner{NewSpawnDirector(sc.StartIntervalMs, sc.DecrementMs, sc.FloorIntervalMs)}
}

// Update spawns at most one enemy when the timer is due. It fails only when
// even the fallback type cannot be built.
func (s *EnemySpawner) Update(w *World, dt float64) error {
	if !s.Tick(dt) {
		return nil
	}
	s.Advance()
	_, err := w.SpawnEnemy(w.pickEnemyType())
	return err
}

// PickupSpawner drops a random pickup at a fixed interval.
type PickupSpawner struct {
	SpawnDirector
}

// NewPickupSpawner creates a spawner from the world's pickup settings.
func NewPickupSpawner(w *World) *PickupSpawner {
	iv := w.cfg.Pickups.IntervalMs
	return &PickupSpawner{NewSpawnDirector(iv, 0, iv)}
}

// Update drops a pickup when the timer is due.
func (s *PickupSpawner) Update(w *World, dt float64) {
	if !s.Tick(dt) {
		return
	}
	w.SpawnPickup()
	s.Advance()
}

// pickEnemyType chooses among the types unlocked at the current level.
// Entries with a chance below 1 join the pool only when their roll succeeds.
func (w *World) pickEnemyType() string {
	level := w.Level()

	var pool []string
	for _, tier := range w.cfg.Spawn.Table {
		if tier.MinLevel > level {
			continue
		}
		if tier.Chance < 1 && !w.rng.Chance(tier.Chance) {
			continue
		}
		pool = append(pool, tier.Type)
	}
	if len(pool) == 0 {
		return w.cfg.Spawn.FallbackType
	}
	return pool[w.rng.Intn(len(pool))]
}

// SpawnEnemy queues an enemy of type typ at a random position just above the
// field. An unknown type is logged and replaced by the fallback type.
func (w *World) SpawnEnemy(typ string) (*Entity, error) {
	e, err := NewEnemy(w, typ, 0, 0)
	if err != nil {
		fallback := w.cfg.Spawn.FallbackType
		w.log.Warn("enemy factory failed, using fallback", "type", typ, "fallback", fallback, "err", err)
		e, err = NewEnemy(w, fallback, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("spawn fallback enemy: %w", err)
		}
	}

	x := w.rng.Float64() * (w.field.W - e.W)
	e.Pos.Set(x, -e.H)
	e.Enemy.BaseX = x
	return w.Spawn(e), nil
}
