package skyraid

import "github.com/vovakirdan/skyraid/internal/core"

// Collections holds every entity of a run: one optional player slot and four
// ordered lists. Order is spawn order and stays stable within a frame.
type Collections struct {
	Player    *Entity
	Enemies   []*Entity
	Bullets   []*Entity
	Particles []*Entity
	Powerups  []*Entity
}

// Len returns the number of entities, the player included.
func (c *Collections) Len() int {
	n := len(c.Enemies) + len(c.Bullets) + len(c.Particles) + len(c.Powerups)
	if c.Player != nil {
		n++
	}
	return n
}

// Each calls fn for the player and then every list in a fixed order.
func (c *Collections) Each(fn func(*Entity)) {
	if c.Player != nil {
		fn(c.Player)
	}
	for _, list := range [...][]*Entity{c.Enemies, c.Bullets, c.Particles, c.Powerups} {
		for _, e := range list {
			fn(e)
		}
	}
}

// Clear destroys and drops every entity so stale
// references held elsewhere stop interacting.
func (c *Collections) Clear() {
	c.Each(func(e *Entity) {
		if e != nil {
			e.Destroy()
		}
	})
	c.Player = nil
	c.Enemies = nil
	c.Bullets = nil
	c.Particles = nil
	c.Powerups = nil
}

func (c *Collections) add(e *Entity) {
	switch e.Kind {
	case KindPlayer:
		c.Player = e
	case KindEnemy:
		c.Enemies = append(c.Enemies, e)
	case KindBullet:
		c.Bullets = append(c.Bullets, e)
	case KindParticle:
		c.Particles = append(c.Particles, e)
	case KindPowerup:
		c.Powerups = append(c.Powerups, e)
	}
}

// Cleanup removes dead entities and entities that left the playfield by more
// than margin: enemies and powerups past the bottom, bullets past the top or
// the bottom. Lists are filtered in place. It returns the number of removed
// entities.
func Cleanup(c *Collections, field core.Rect, margin float64) int {
	bottom := field.Bottom() + margin
	top := field.Top() - margin

	removed := 0
	var n int

	c.Enemies, n = sweep(c.Enemies, func(e *Entity) bool { return e.Pos.Y < bottom })
	removed += n
	c.Bullets, n = sweep(c.Bullets, func(e *Entity) bool { return e.Pos.Y > top && e.Pos.Y < bottom })
	removed += n
	c.Particles, n = sweep(c.Particles, nil)
	removed += n
	c.Powerups, n = sweep(c.Powerups, func(e *Entity) bool { return e.Pos.Y < bottom })
	removed += n

	if c.Player != nil && !c.Player.Alive() {
		c.Player = nil
		removed++
	}
	return removed
}

// sweep keeps alive entities accepted by keep, reusing the backing array.
// The vacated tail is zeroed so removed entities can be collected.
func sweep(list []*Entity, keep func(*Entity) bool) ([]*Entity, int) {
	kept := list[:0]
	for _, e := range list {
		if !e.Alive() {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	return kept, len(list) - len(kept)
}
