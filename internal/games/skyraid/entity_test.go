package skyraid

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/skyraid/internal/core"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPlayer, "player"},
		{KindEnemy, "enemy"},
		{KindBullet, "bullet"},
		{KindParticle, "particle"},
		{KindPowerup, "powerup"},
		{Kind(42), "kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.expected)
		}
	}
}

func TestPlayerMovesAndStaysInField(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	startX := player.Pos.X

	w.Input = core.NewInputFrame([]core.Key{core.KeyRight})
	for range 10 {
		if err := player.Update(w, 16); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}
	if player.Pos.X <= startX {
		t.Errorf("player X = %v, expected to move right of %v", player.Pos.X, startX)
	}
	if player.Vel.X > w.cfg.Player.Speed {
		t.Errorf("Vel.X = %v exceeds top speed", player.Vel.X)
	}

	for range 500 {
		_ = player.Update(w, 16)
	}
	if got, limit := player.Pos.X+player.W, w.Field().Right(); got > limit {
		t.Errorf("player right edge = %v, expected <= %v", got, limit)
	}

	w.Input = core.NewInputFrame(nil)
	for range 100 {
		_ = player.Update(w, 16)
	}
	if !player.Vel.IsZero() {
		t.Errorf("Vel = %v, expected the player to coast to a stop", player.Vel)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	w.Input = core.NewInputFrame([]core.Key{core.KeyFire})

	_ = player.Update(w, 16)
	_ = player.Update(w, 16)
	if w.Pending() != 1 {
		t.Fatalf("bullets after two frames = %d, expected 1", w.Pending())
	}

	for range 12 {
		_ = player.Update(w, 16)
	}
	if w.Pending() != 2 {
		t.Errorf("bullets after cooldown = %d, expected 2", w.Pending())
	}
	if player.Player.ShotsFired != 2 {
		t.Errorf("ShotsFired = %d, expected 2", player.Player.ShotsFired)
	}

	w.Flush()
	if b := w.Entities.Bullets[0]; b.Vel.Y >= 0 || b.Bullet.Owner != OwnerPlayer {
		t.Errorf("player bullet Vel = %v, Owner = %v", b.Vel, b.Bullet.Owner)
	}
}

func TestWeaponPattern(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 4},
		{5, 5},
		{7, 7},
		{10, 7},
	}

	for _, tt := range tests {
		got := weaponPattern(tt.level)
		if len(got) != tt.expected {
			t.Errorf("weaponPattern(%d) = %d barrels, expected %d", tt.level, len(got), tt.expected)
		}
		for _, b := range got {
			if math.Abs(b.angle) > maxSpreadAngle {
				t.Errorf("weaponPattern(%d) angle %v exceeds %v", tt.level, b.angle, maxSpreadAngle)
			}
		}
	}
}

func TestPatrolBounce(t *testing.T) {
	w := newTestWorld()
	boss := mustEnemy(t, w, "boss", 0, 60)
	boss.Enemy.Dir = 1
	boss.Pos.X = w.Field().Right() - boss.W - 1

	for range 5 {
		if err := boss.Update(w, 16); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}

	if boss.Enemy.Dir != -1 || boss.Vel.X >= 0 {
		t.Errorf("Dir = %v, Vel.X = %v, expected reversal", boss.Enemy.Dir, boss.Vel.X)
	}
	if boss.Pos.X+boss.W > w.Field().Right() {
		t.Errorf("boss right edge = %v, expected inside the field", boss.Pos.X+boss.W)
	}
	if boss.Pos.Y != 60 {
		t.Errorf("patrolling boss Y = %v, expected 60", boss.Pos.Y)
	}
}

func TestBossEntersBeforePatrolling(t *testing.T) {
	w := newTestWorld()
	boss := mustEnemy(t, w, "boss", 300, -64)

	_ = boss.Update(w, 16)
	if boss.Vel.X != 0 || boss.Vel.Y <= 0 {
		t.Errorf("entering boss Vel = %v, expected straight down", boss.Vel)
	}
}

func TestZigzagFlips(t *testing.T) {
	w := newTestWorld()
	e := mustEnemy(t, w, "fast", 400, 100)
	dir := e.Enemy.Dir

	for range 32 { // 32 * 16ms passes the 500ms flip interval once
		_ = e.Update(w, 16)
	}
	if e.Enemy.Dir != -dir {
		t.Errorf("Dir = %v, expected %v after one interval", e.Enemy.Dir, -dir)
	}
}

func TestShooterAimsAtPlayer(t *testing.T) {
	w := newTestWorld()
	player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
	shooter := mustEnemy(t, w, "shooter", player.Pos.X, player.Pos.Y-200)

	for range 70 {
		_ = shooter.Update(w, 16)
	}
	w.Flush()

	if len(w.Entities.Bullets) == 0 {
		t.Fatalf("shooter never fired")
	}
	b := w.Entities.Bullets[0]
	if b.Bullet.Owner != OwnerEnemy {
		t.Errorf("Owner = %v, expected enemy", b.Bullet.Owner)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("enemy bullet Vel = %v, expected it to head down toward the player", b.Vel)
	}
	if speed := b.Vel.Mag(); math.Abs(speed-250) > 1e-6 {
		t.Errorf("shooter bullet speed = %v, expected 250", speed)
	}
}

func TestEnemyHoldsFireOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		dy       float64
		expected bool
	}{
		{"inside range", 250, true},
		{"outside range", 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			player := addEntity(w, NewPlayer(w.cfg.Player, w.Field()))
			shooter := mustEnemy(t, w, "shooter", player.Pos.X, player.Pos.Y-tt.dy)
			shooter.Enemy.Speed = 0

			for range 70 {
				_ = shooter.Update(w, 16)
			}
			w.Flush()

			if fired := len(w.Entities.Bullets) > 0; fired != tt.expected {
				t.Errorf("fired = %v, expected %v", fired, tt.expected)
			}
		})
	}
}

func TestEnemyBulletSpeed(t *testing.T) {
	tests := []struct {
		typ      string
		expected float64
	}{
		{"heavy", 250}, // bullets.enemy_speed
		{"shooter", 250},
		{"boss", 300},
	}

	w := newTestWorld()
	for _, tt := range tests {
		e := mustEnemy(t, w, tt.typ, 100, 100)
		if e.Enemy.BulletSpeed != tt.expected {
			t.Errorf("%s BulletSpeed = %v, expected %v", tt.typ, e.Enemy.BulletSpeed, tt.expected)
		}
	}
}

func TestBossShieldCycle(t *testing.T) {
	w := newTestWorld()
	boss := mustEnemy(t, w, "boss", 300, 60)
	if !boss.Enemy.HasShield {
		t.Fatal("boss should have the shield ability")
	}
	if basic := mustEnemy(t, w, "basic", 100, 100); basic.Enemy.HasShield {
		t.Error("basic enemy should not have a shield")
	}

	for range 300 { // 4.8s
		_ = boss.Update(w, 16)
	}
	if boss.Enemy.Shielded > 0 {
		t.Fatalf("shield raised before the interval")
	}
	for range 20 {
		_ = boss.Update(w, 16)
	}
	if boss.Enemy.Shielded <= 0 {
		t.Fatalf("shield not raised after the interval")
	}

	health := boss.Enemy.Health
	if boss.Enemy.TakeDamage(boss, 100) || boss.Enemy.Health != health || !boss.Alive() {
		t.Errorf("shielded boss took damage: health %d, expected %d", boss.Enemy.Health, health)
	}

	for range 130 { // 2.08s
		_ = boss.Update(w, 16)
	}
	if boss.Enemy.Shielded > 0 {
		t.Fatalf("Shielded = %v, expected the shield to drop after 2s", boss.Enemy.Shielded)
	}
	boss.Enemy.TakeDamage(boss, 1)
	if boss.Enemy.Health != health-1 {
		t.Errorf("Health = %d, expected %d once the shield dropped", boss.Enemy.Health, health-1)
	}
}

func TestBulletLeavesField(t *testing.T) {
	w := newTestWorld()
	b := addEntity(w, NewBullet(OwnerPlayer, 100, -40, core.Vec(0, -500), w.cfg.Bullets, 0))

	_ = b.Update(w, 16)
	if !b.Alive() {
		t.Fatalf("bullet destroyed inside the margin")
	}
	for range 5 {
		_ = b.Update(w, 16)
	}
	if b.Alive() {
		t.Errorf("bullet at Y=%v should be destroyed past the margin", b.Pos.Y)
	}
}

func TestParticleLifecycle(t *testing.T) {
	w := newTestWorld()
	w.Explode(core.Vec(100, 100), ExplosionLarge)
	if w.Pending() != w.cfg.Particles.Large {
		t.Fatalf("large explosion = %d particles, expected %d", w.Pending(), w.cfg.Particles.Large)
	}
	w.Flush()

	p := w.Entities.Particles[0]
	speed := p.Vel.Mag()
	_ = p.Update(w, 16)
	if p.Vel.Mag() >= speed+w.cfg.Particles.Gravity {
		t.Errorf("particle speed grew from %v to %v", speed, p.Vel.Mag())
	}
	if p.Fade() >= 1 {
		t.Errorf("Fade() = %v, expected below 1 after aging", p.Fade())
	}

	for range 40 {
		_ = p.Update(w, 16)
	}
	if p.Alive() {
		t.Errorf("particle should expire after its lifespan")
	}
}

func TestPowerupExpires(t *testing.T) {
	w := newTestWorld()
	p := addEntity(w, NewPowerup(PowerupShield, 100, 0, w.cfg.Pickups))

	_ = p.Update(w, 1000)
	if p.Pos.Y != w.cfg.Pickups.FallSpeed {
		t.Errorf("powerup Y after 1s = %v, expected %v", p.Pos.Y, w.cfg.Pickups.FallSpeed)
	}
	for range 9 {
		_ = p.Update(w, 1000)
	}
	if p.Alive() {
		t.Errorf("powerup should expire after %v ms", w.cfg.Pickups.MaxAgeMs)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(16.67, 100)
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name     string
		now      time.Time
		expected float64
	}{
		{"first frame", t0, 16.67},
		{"normal", t0.Add(10 * time.Millisecond), 10},
		{"stall", t0.Add(5010 * time.Millisecond), 16.67},
		{"same instant", t0.Add(5010 * time.Millisecond), 16.67},
		{"clock went back", t0, 16.67},
		{"max delta", t0.Add(100 * time.Millisecond), 100},
	}

	for _, tt := range tests {
		if got := c.Delta(tt.now); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%s: Delta() = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	if got := clampDelta(math.NaN(), 16.67, 100); got != 16.67 {
		t.Errorf("clampDelta(NaN) = %v, expected 16.67", got)
	}
}

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for range 100 {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("same seed produced different sequences")
		}
	}
	for range 1000 {
		if f := a.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, expected [0, 1)", f)
		}
	}
	if NewRNG(0).State() != 1 {
		t.Errorf("seed 0 should be remapped to 1")
	}
}
