package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// SessionOptions selects the game and the services a session wires into it.
type SessionOptions struct {
	GameID     string
	Store      *storage.Store // Optional; without it nothing is persisted
	Logger     *log.Logger
	ConfigPath string
	Preset     config.DifficultyPreset
}

// NewGame creates a game whose preferences and finished runs go to the store.
func NewGame(opts SessionOptions) (registry.Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	env := registry.Env{
		Logger:     logger,
		Prefs:      storage.Prefs(opts.Store, logger),
		ConfigPath: opts.ConfigPath,
		Preset:     opts.Preset,
		OnGameOver: recordRun(opts.Store, logger),
	}
	return registry.Create(opts.GameID, env)
}

// recordRun returns the game-over observer that persists finished runs.
func recordRun(store *storage.Store, logger *log.Logger) func(core.RunResult) {
	return func(res core.RunResult) {
		if store == nil || res.Score <= 0 {
			return
		}
		if err := store.RecordRun(res); err != nil {
			logger.Error("save run failed", "run", res.RunID, "game", res.GameID, "err", err)
			return
		}
		logger.Info("run saved", "run", res.RunID, "game", res.GameID, "score", res.Score)
	}
}

// Sessions tracks the games of connected SSH sessions.
// Safe for concurrent use.
type Sessions struct {
	mu    sync.RWMutex
	games map[string]registry.Game
}

// NewSessions creates an empty session table.
func NewSessions() *Sessions {
	return &Sessions{games: make(map[string]registry.Game)}
}

// Add registers the game played by session id.
func (s *Sessions) Add(id string, g registry.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[id] = g
}

// Remove stops and forgets the game of session id.
func (s *Sessions) Remove(id string) {
	s.mu.Lock()
	g, ok := s.games[id]
	delete(s.games, id)
	s.mu.Unlock()
	if ok {
		g.Stop()
	}
}

// Count returns the number of active sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// StopAll stops every active game and empties the table.
func (s *Sessions) StopAll() int {
	s.mu.Lock()
	games := s.games
	s.games = make(map[string]registry.Game)
	s.mu.Unlock()

	for _, g := range games {
		g.Stop()
	}
	return len(games)
}
