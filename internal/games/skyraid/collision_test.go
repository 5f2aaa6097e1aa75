package skyraid

import (
	"testing"

	"github.com/vovakirdan/skyraid/internal/core"
)

func TestBulletKillsEnemy(t *testing.T) {
	w := newTestWorld()
	enemy := mustEnemy(t, w, "basic", 100, 100)
	bullet := addEntity(w, NewBullet(OwnerPlayer, 110, 110, core.Zero(), w.cfg.Bullets, 0))

	var m CollisionManager
	m.Resolve(w)

	if enemy.Alive() || bullet.Alive() {
		t.Errorf("enemy alive %v, bullet alive %v, expected both destroyed", enemy.Alive(), bullet.Alive())
	}
	if w.Score != 10 || w.Kills != 1 {
		t.Errorf("Score = %d, Kills = %d, expected 10 and 1", w.Score, w.Kills)
	}
	if m.Hits != 1 {
		t.Errorf("Hits = %d, expected 1", m.Hits)
	}
}

func TestPiercingBullet(t *testing.T) {
	w := newTestWorld()
	first := mustEnemy(t, w, "basic", 100, 100)
	second := mustEnemy(t, w, "basic", 100, 100)
	third := mustEnemy(t, w, "basic", 100, 100)
	bullet := addEntity(w, NewBullet(OwnerPlayer, 110, 110, core.Zero(), w.cfg.Bullets, 1))

	var m CollisionManager
	m.Resolve(w)

	if first.Alive() || second.Alive() {
		t.Errorf("a bullet with pierce 1 should hit two enemies")
	}
	if !third.Alive() {
		t.Errorf("third enemy should survive")
	}
	if bullet.Alive() {
		t.Errorf("bullet should be spent")
	}
}

func TestPiercingBulletHitsEachEnemyOnce(t *testing.T) {
	w := newTestWorld()
	a := mustEnemy(t, w, "boss", 100, 100)
	b := mustEnemy(t, w, "boss", 100, 100)
	bullet := addEntity(w, NewBullet(OwnerPlayer, 120, 120, core.Zero(), w.cfg.Bullets, 2))

	var m CollisionManager
	for range 2 {
		m.Resolve(w)
	}

	if a.Enemy.Health != 19 || b.Enemy.Health != 19 {
		t.Errorf("health A = %d, B = %d, expected 19 each", a.Enemy.Health, b.Enemy.Health)
	}
	if !bullet.Alive() || bullet.Bullet.Pierce != 0 {
		t.Errorf("bullet alive %v, Pierce = %d, expected alive with 0", bullet.Alive(), bullet.Bullet.Pierce)
	}
}

func TestShieldedEnemyAbsorbsBullet(t *testing.T) {
	w := newTestWorld()
	boss := mustEnemy(t, w, "boss", 100, 100)
	boss.Enemy.Shielded = 1000
	bullet := addEntity(w, NewBullet(OwnerPlayer, 120, 120, core.Zero(), w.cfg.Bullets, 0))

	var m CollisionManager
	m.Resolve(w)

	if boss.Enemy.Health != boss.Enemy.MaxHealth {
		t.Errorf("Health = %d, expected %d while shielded", boss.Enemy.Health, boss.Enemy.MaxHealth)
	}
	if bullet.Alive() {
		t.Errorf("bullet should be spent on the shield")
	}
}

func TestHeavyEnemySurvivesOneHit(t *testing.T) {
	w := newTestWorld()
	enemy := mustEnemy(t, w, "heavy", 100, 100)
	addEntity(w, NewBullet(OwnerPlayer, 110, 110, core.Zero(), w.cfg.Bullets, 0))

	var m CollisionManager
	m.Resolve(w)

	if !enemy.Alive() {
		t.Fatalf("heavy enemy died from one hit")
	}
	if enemy.Enemy.Health != 2 || enemy.Enemy.HitFlash <= 0 {
		t.Errorf("Health = %d, HitFlash = %v", enemy.Enemy.Health, enemy.Enemy.HitFlash)
	}
	if w.Score != 0 {
		t.Errorf("Score = %d, expected 0", w.Score)
	}
}

func TestEnemyRamsPlayer(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	enemy := mustEnemy(t, w, "heavy", player.Pos.X, player.Pos.Y)

	var m CollisionManager
	m.Resolve(w)

	if enemy.Alive() {
		t.Errorf("enemy should be destroyed on impact")
	}
	if player.Player.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", player.Player.Lives)
	}
	if player.Player.Invulnerable <= 0 {
		t.Errorf("player should be invulnerable after a hit")
	}

	// A second impact inside the invulnerability window is ignored.
	mustEnemy(t, w, "basic", player.Pos.X, player.Pos.Y)
	m.Resolve(w)
	if player.Player.Lives != 1 {
		t.Errorf("Lives after protected hit = %d, expected 1", player.Player.Lives)
	}
}

func TestEnemyBulletKillsPlayer(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	player.Player.Lives = 1
	c := player.Center()
	bullet := addEntity(w, NewBullet(OwnerEnemy, c.X, c.Y, core.Zero(), w.cfg.Bullets, 0))
	ownShot := addEntity(w, NewBullet(OwnerPlayer, c.X, c.Y, core.Zero(), w.cfg.Bullets, 0))

	var m CollisionManager
	m.Resolve(w)

	if player.Alive() {
		t.Errorf("player should die on the last life")
	}
	if bullet.Alive() {
		t.Errorf("enemy bullet should be consumed")
	}
	if !ownShot.Alive() {
		t.Errorf("player bullets must not hit the player")
	}
}

func TestPowerupPairFailureIsIsolated(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	bogus := addEntity(w, NewPowerup("teleport", player.Pos.X, player.Pos.Y, w.cfg.Pickups))
	health := addEntity(w, NewPowerup(PowerupHealth, player.Pos.X, player.Pos.Y, w.cfg.Pickups))

	var m CollisionManager
	m.Resolve(w)

	if bogus.Alive() || health.Alive() {
		t.Errorf("both pickups should be consumed")
	}
	if !player.Alive() {
		t.Fatalf("player should survive a failed pickup")
	}
	if player.Player.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", player.Player.Lives)
	}
	if w.Faults != 1 {
		t.Errorf("Faults = %d, expected 1", w.Faults)
	}
}

func TestApplyPowerup(t *testing.T) {
	tests := []struct {
		typ   PowerupType
		check func(p *PlayerState, w *World) bool
	}{
		{PowerupWeapon, func(p *PlayerState, _ *World) bool { return p.WeaponLevel == 2 }},
		{PowerupHealth, func(p *PlayerState, _ *World) bool { return p.Lives == 4 }},
		{PowerupShield, func(p *PlayerState, _ *World) bool { return p.Shield == 5000 && p.Protected() }},
		{PowerupRapidFire, func(p *PlayerState, _ *World) bool { return p.RapidFire == 8000 }},
		{PowerupMultiShot, func(p *PlayerState, _ *World) bool { return p.MultiShot == 10000 }},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			w := newTestWorld()
			player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
			if err := applyPowerup(player, tt.typ, w); err != nil {
				t.Fatalf("applyPowerup() error: %v", err)
			}
			if !tt.check(player.Player, w) {
				t.Errorf("applyPowerup(%s) state = %+v", tt.typ, *player.Player)
			}
		})
	}
}

func TestPowerupCaps(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	p := player.Player

	p.Lives = p.MaxLives
	_ = applyPowerup(player, PowerupHealth, w)
	if p.Lives != p.MaxLives {
		t.Errorf("Lives = %d, expected cap %d", p.Lives, p.MaxLives)
	}

	p.WeaponLevel = w.cfg.Player.MaxWeaponLevel
	_ = applyPowerup(player, PowerupWeapon, w)
	if p.WeaponLevel != w.cfg.Player.MaxWeaponLevel {
		t.Errorf("WeaponLevel = %d, expected cap", p.WeaponLevel)
	}
	if w.Score != maxWeaponBonus {
		t.Errorf("Score = %d, expected %d bonus", w.Score, maxWeaponBonus)
	}
}
