// Package skyraid implements a vertical scrolling shooter. The player ship
// holds the bottom of the field while waves of enemies descend from the top.
//
// The simulation runs in world units on a fixed playfield and is driven by
// host frame callbacks. Every per-entity operation is isolated: one failing
// entity is logged and removed while the frame continues for the others. A
// failure that escapes the frame pipeline resets the game to its menu.
package skyraid

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

func init() {
	registry.Register("skyraid", func(env registry.Env) registry.Game {
		return New(envOptions(env)...)
	})
	registry.Register("skyraid_hard", func(env registry.Env) registry.Game {
		opts := append(envOptions(env), WithPreset(config.DifficultyHard))
		return New(append(opts, withIdentity("skyraid_hard", "Skyraid (Hard)"))...)
	})
}

func envOptions(env registry.Env) []Option {
	return []Option{
		WithLogger(env.Logger),
		WithPrefs(env.Prefs),
		WithConfigPath(env.ConfigPath),
		WithPreset(env.Preset),
		WithGameOver(env.OnGameOver),
	}
}

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPrefs sets where the high score is kept.
func WithPrefs(p core.Prefs) Option {
	return func(g *Game) { g.prefs = p }
}

// WithConfig uses cfg instead of loading a config file.
func WithConfig(cfg config.SkyraidConfig) Option {
	return func(g *Game) { g.override = &cfg }
}

// WithConfigPath loads the config from path on Reset.
func WithConfigPath(path string) Option {
	return func(g *Game) { g.configPath = path }
}

// WithPreset applies a difficulty preset on top of the loaded config.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) {
		if p != "" {
			g.preset = p
		}
	}
}

// WithGameOver registers fn to receive every finished run.
func WithGameOver(fn func(core.RunResult)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

func withIdentity(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// Game drives one skyraid session: the phase machine, the world of the
// current run and the spawners.
type Game struct {
	id         string
	title      string
	log        *log.Logger
	prefs      core.Prefs
	override   *config.SkyraidConfig
	configPath string
	preset     config.DifficultyPreset
	onGameOver func(core.RunResult)

	runtime    core.RuntimeConfig
	cfg        config.SkyraidConfig
	world      *World
	clock      *FrameClock
	collisions CollisionManager
	enemies    *EnemySpawner
	pickups    *PickupSpawner

	phase     Phase
	runID     string
	seed      int64
	runs      int
	highScore int
	newHigh   bool

	stopped atomic.Bool

	qmu        sync.Mutex
	quarantine []uint64
}

// New creates a game. Call Reset before the first frame.
func New(opts ...Option) *Game {
	g := &Game{
		id:    "skyraid",
		title: "Skyraid",
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// World returns the world of the current run.
func (g *Game) World() *World {
	return g.world
}

// RunID returns the identifier of the current or last run.
func (g *Game) RunID() string {
	return g.runID
}

// Reset loads the configuration and returns to the menu with an empty world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.clock = NewFrameClock(g.cfg.Timing.NominalFrameMs, g.cfg.Timing.MaxFrameDeltaMs)
	g.highScore = core.LoadOr(g.prefs, g.highScoreKey(), 0)
	g.runs = 0
	g.toMenu()
}

func (g *Game) loadConfig() config.SkyraidConfig {
	var cfg config.SkyraidConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			g.log.Warn("config load failed, using defaults", "path", g.configPath, "err", err)
			loaded = config.Embedded()
		}
		cfg = loaded
	}
	config.ApplyPreset(&cfg, g.preset)
	return cfg
}

func (g *Game) highScoreKey() string {
	return g.id + ".highscore"
}

// toMenu drops the current run and shows the menu.
func (g *Game) toMenu() {
	if g.world != nil {
		g.world.Entities.Clear()
	}
	g.world = NewWorld(g.cfg, g.runSeed(), g.log)
	g.collisions = CollisionManager{}
	g.enemies = nil
	g.pickups = nil
	g.newHigh = false
	g.clearQuarantine()
	g.phase = PhaseMenu
}

// runSeed derives the seed of the next run so restarts differ while a
// given runtime seed still replays the same sequence of runs.
func (g *Game) runSeed() int64 {
	return g.runtime.Seed + int64(g.runs)*7919
}

// startRun creates a fresh world with the player and starts playing.
func (g *Game) startRun() {
	if g.world != nil {
		g.world.Entities.Clear()
	}
	g.seed = g.runSeed()
	w := NewWorld(g.cfg, g.seed, g.log)
	w.Spawn(NewPlayer(g.cfg.Player, w.Field()))
	w.Flush()

	g.world = w
	g.runs++
	g.runID = uuid.NewString()
	g.collisions = CollisionManager{}
	g.enemies = NewEnemySpawner(w)
	g.pickups = NewPickupSpawner(w)
	g.newHigh = false
	g.clearQuarantine()
	g.phase = PhasePlaying
	g.log.Info("run started", "game", g.id, "run", g.runID)
}

// Frame advances the game to wall-clock time now.
func (g *Game) Frame(now time.Time, in core.InputFrame) core.StepResult {
	if g.Stopped() {
		return core.StepResult{State: g.State()}
	}
	if g.clock == nil {
		g.Reset(g.runtime)
	}
	return g.Advance(g.clock.Delta(now), in)
}

// Advance runs one frame of dtMs milliseconds. Deltas outside
// (0, max_frame_delta_ms] are replaced by the nominal frame time.
func (g *Game) Advance(dtMs float64, in core.InputFrame) (res core.StepResult) {
	if g.Stopped() {
		return core.StepResult{State: g.State()}
	}
	if g.world == nil {
		g.Reset(g.runtime)
	}

	dt := clampDelta(dtMs, g.cfg.Timing.NominalFrameMs, g.cfg.Timing.MaxFrameDeltaMs)

	defer func() {
		if r := recover(); r != nil {
			g.frameFailed(fmt.Errorf("%w: panic: %v", ErrFrameFault, r))
			res = core.StepResult{State: g.State(), DtMs: dt}
		}
	}()

	if err := g.step(dt, in); err != nil {
		g.frameFailed(err)
	}
	return core.StepResult{State: g.State(), DtMs: dt}
}

func (g *Game) frameFailed(err error) {
	g.log.Error("frame failed, resetting to menu", "phase", g.phase.String(), "run", g.runID, "err", err)
	g.toMenu()
}

func (g *Game) step(dt float64, in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		g.Stop()
		return nil
	}

	g.purgeQuarantine()
	g.world.Input = in

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionStart) {
			g.startRun()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			return nil
		}
		return g.playFrame(dt)

	case PhasePaused:
		switch {
		case in.Has(core.ActionPause):
			g.phase = PhasePlaying
		case in.Has(core.ActionMenu):
			g.toMenu()
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.startRun()
		case in.Has(core.ActionMenu), in.Has(core.ActionStart):
			g.toMenu()
		}
	}
	return nil
}

// playFrame is the Playing pipeline: update, spawn, collide, clean up.
func (g *Game) playFrame(dt float64) error {
	w := g.world
	w.Frames++
	w.ElapsedMs += dt

	w.updateAll(dt)
	w.Flush()

	if err := g.enemies.Update(w, dt); err != nil {
		return err
	}
	g.pickups.Update(w, dt)
	w.Flush()

	g.collisions.Resolve(w)
	w.Flush()

	Cleanup(&w.Entities, w.Field(), g.cfg.Playfield.Margin)

	if w.Player() == nil {
		g.gameOver()
	}
	return nil
}

// gameOver ends the run, saves the high score and notifies the observer.
func (g *Game) gameOver() {
	w := g.world
	w.Entities.Clear()
	clear(w.pending)
	w.pending = w.pending[:0]
	g.phase = PhaseGameOver

	if w.Score > g.highScore {
		g.highScore = w.Score
		g.newHigh = true
		if g.prefs != nil && !g.prefs.Save(g.highScoreKey(), g.highScore) {
			g.log.Warn("high score not saved", "game", g.id)
		}
	}

	result := core.RunResult{
		RunID:        g.runID,
		GameID:       g.id,
		Seed:         g.seed,
		Score:        w.Score,
		Level:        w.Level(),
		Kills:        w.Kills,
		DurationMs:   w.ElapsedMs,
		NewHighScore: g.newHigh,
	}
	g.log.Info("run over", "run", g.runID, "score", w.Score, "kills", w.Kills, "level", result.Level)

	if g.onGameOver != nil {
		g.notify(result)
	}
}

// notify keeps observer failures out of the frame.
func (g *Game) notify(result core.RunResult) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("game over observer failed", "run", result.RunID, "err", r)
		}
	}()
	g.onGameOver(result)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		InMenu:   g.phase == PhaseMenu,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Stopped:  g.Stopped(),
	}
	if g.world != nil {
		st.Score = g.world.Score
		if p := g.world.Player(); p != nil {
			st.Lives = p.Player.Lives
		}
	}
	return st
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Stop ends the session. It is safe to call from any goroutine.
func (g *Game) Stop() {
	if g.stopped.CompareAndSwap(false, true) {
		g.log.Debug("game stopped", "game", g.id)
	}
}

// Stopped reports whether Stop was called.
func (g *Game) Stopped() bool {
	return g.stopped.Load()
}

// Quarantine marks an entity for removal at the start of the next frame.
func (g *Game) Quarantine(id uint64) {
	g.qmu.Lock()
	g.quarantine = append(g.quarantine, id)
	g.qmu.Unlock()
}

func (g *Game) clearQuarantine() {
	g.qmu.Lock()
	g.quarantine = nil
	g.qmu.Unlock()
}

func (g *Game) purgeQuarantine() {
	g.qmu.Lock()
	ids := g.quarantine
	g.quarantine = nil
	g.qmu.Unlock()

	if len(ids) == 0 {
		return
	}
	bad := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		bad[id] = struct{}{}
	}
	g.world.Entities.Each(func(e *Entity) {
		if e == nil {
			return
		}
		if _, ok := bad[e.ID]; ok {
			e.Destroy()
		}
	})
}
