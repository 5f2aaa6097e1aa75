package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Run is one finished play-through.
type Run struct {
	RunID      string
	GameID     string
	Seed       int64
	Score      int
	Level      int
	Kills      int
	DurationMs int64
	EndedAt    time.Time
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun records a finished run. A missing RunID is generated.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	}
	if err := insertRun(s.db, r); err != nil {
		return "", err
	}
	return r.RunID, nil
}

func insertRun(db execer, r Run) error {
	_, err := db.Exec(
		`INSERT INTO runs (run_id, game_id, seed, score, level, kills, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Seed, r.Score, r.Level, r.Kills, r.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run %s: %w", r.RunID, err)
	}
	return nil
}

// RecordRun stores a finished run and its score in one transaction.
func (s *Store) RecordRun(res core.RunResult) error {
	run := Run{
		RunID:      res.RunID,
		GameID:     res.GameID,
		Seed:       res.Seed,
		Score:      res.Score,
		Level:      res.Level,
		Kills:      res.Kills,
		DurationMs: int64(res.DurationMs),
	}
	if run.RunID == "" {
		run.RunID = NewRunID()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := insertRun(tx, run); err != nil {
		return err
	}
	if _, err := insertScore(tx, ScoreEntry{
		GameID: run.GameID,
		Score:  run.Score,
		RunID:  run.RunID,
		Level:  run.Level,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run %s: %w", run.RunID, err)
	}
	return nil
}

const runColumns = `run_id, game_id, seed, score, level, kills, duration_ms, ended_at`

// RunByID retrieves a run. It returns ErrNotFound for unknown ids.
func (s *Store) RunByID(runID string) (*Run, error) {
	var r Run
	var endedAt any
	err := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	).Scan(&r.RunID, &r.GameID, &r.Seed, &r.Score, &r.Level, &r.Kills, &r.DurationMs, &endedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: run %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.EndedAt = parseTime(endedAt)
	return &r, nil
}

// RecentRuns retrieves the most recent runs of a game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY ended_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt any
		if err := rows.Scan(&r.RunID, &r.GameID, &r.Seed, &r.Score, &r.Level, &r.Kills, &r.DurationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = parseTime(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
