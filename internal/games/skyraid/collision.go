package skyraid

import "github.com/vovakirdan/skyraid/internal/core"

// CollisionManager resolves the fixed set of interacting pairs once per
// frame. Every pair is tested at most once, in slice order, and an entity
// destroyed by an earlier pair takes no part in later ones.
type CollisionManager struct {
	Checks int // Overlap tests in the last Resolve
	Hits   int // Overlaps handled in the last Resolve
}

// Resolve runs all pair checks against the world's collections.
func (m *CollisionManager) Resolve(w *World) {
	m.Checks = 0
	m.Hits = 0

	m.playerEnemies(w)
	m.playerEnemyBullets(w)
	m.bulletsEnemies(w)
	m.playerPowerups(w)
}

func (m *CollisionManager) overlap(a, b *Entity) bool {
	m.Checks++
	return core.AABBOverlap(a.Bounds(), b.Bounds())
}

func (m *CollisionManager) playerEnemies(w *World) {
	for _, enemy := range w.Entities.Enemies {
		player := w.Player()
		if player == nil {
			return
		}
		if !enemy.Alive() || !m.overlap(player, enemy) {
			continue
		}
		m.Hits++
		w.GuardPair("player-enemy", player, enemy, func() error {
			damagePlayer(player, enemy.Enemy.Damage, w)
			enemy.Destroy()
			w.Explode(enemy.Center(), ExplosionNormal)
			return nil
		})
	}
}

func (m *CollisionManager) playerEnemyBullets(w *World) {
	for _, bullet := range w.Entities.Bullets {
		player := w.Player()
		if player == nil {
			return
		}
		if !bullet.Alive() || bullet.Bullet.Owner != OwnerEnemy || !m.overlap(player, bullet) {
			continue
		}
		m.Hits++
		w.GuardPair("player-bullet", player, bullet, func() error {
			damagePlayer(player, bullet.Bullet.Damage, w)
			bullet.Destroy()
			return nil
		})
	}
}

func (m *CollisionManager) bulletsEnemies(w *World) {
	for _, bullet := range w.Entities.Bullets {
		if bullet.Bullet == nil || bullet.Bullet.Owner != OwnerPlayer {
			continue
		}
		for _, enemy := range w.Entities.Enemies {
			if !bullet.Alive() {
				break
			}
			if !enemy.Alive() || bullet.Bullet.HasHit(enemy.ID) || !m.overlap(bullet, enemy) {
				continue
			}
			m.Hits++
			w.GuardPair("bullet-enemy", bullet, enemy, func() error {
				return bulletHitsEnemy(bullet, enemy, w)
			})
		}
	}
}

func bulletHitsEnemy(bullet, enemy *Entity, w *World) error {
	b := bullet.Bullet
	if enemy.Enemy.TakeDamage(enemy, b.Damage) {
		w.killEnemy(enemy)
	} else {
		w.Explode(bullet.Center(), ExplosionSmall)
	}

	if b.Pierce > 0 {
		b.Pierce--
		b.Hit = append(b.Hit, enemy.ID)
		return nil
	}
	bullet.Destroy()
	return nil
}

func (m *CollisionManager) playerPowerups(w *World) {
	for _, pickup := range w.Entities.Powerups {
		player := w.Player()
		if player == nil {
			return
		}
		if !pickup.Alive() || !m.overlap(player, pickup) {
			continue
		}
		m.Hits++
		w.GuardPair("player-powerup", player, pickup, func() error {
			pickup.Destroy()
			if err := applyPowerup(player, pickup.Powerup.Type, w); err != nil {
				return err
			}
			w.Sparkle(pickup.Center())
			return nil
		})
	}
}
