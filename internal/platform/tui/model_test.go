package tui

import (
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/core"
	_ "github.com/vovakirdan/skyraid/internal/games/skyraid"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// fakeGame records the frames it receives.
type fakeGame struct {
	frames  int
	last    core.InputFrame
	resets  int
	stopped atomic.Bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return core.GameState{Stopped: g.stopped.Load()} }
func (g *fakeGame) Stop() { g.stopped.Store(true) }
func (g *fakeGame) Stopped() bool { return g.stopped.Load() }
func (g *fakeGame) Frame(_ time.Time, in core.InputFrame) core.StepResult {
	if g.Stopped() {
		return core.StepResult{State: g.State()}
	}
	g.frames++
	g.last = in
	return core.StepResult{State: g.State(), DtMs: 16.67}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, core.ActionNone},
		{"w", runes("w"), core.KeyUp, core.ActionNone},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, core.ActionNone},
		{"a", runes("a"), core.KeyLeft, core.ActionNone},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyFire, core.ActionNone},
		{"z", runes("z"), core.KeyFire, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone, core.ActionStart},
		{"p", runes("p"), core.KeyNone, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyNone, core.ActionPause},
		{"r", runes("r"), core.KeyNone, core.ActionRestart},
		{"b", runes("b"), core.KeyNone, core.ActionMenu},
		{"q", runes("q"), core.KeyNone, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, core.ActionQuit},
		{"unbound", runes("x"), core.KeyNone, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, a := km.MapKey(tt.msg)
			if k != tt.key || a != tt.action {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), k, a, tt.key, tt.action)
			}
		})
	}
}

func TestApplyFeedsInputState(t *testing.T) {
	km := DefaultKeyMap()
	in := core.NewInputState(0, 0)
	t0 := time.Unix(100, 0)

	km.Apply(tea.KeyMsg{Type: tea.KeyRight}, in, t0)
	km.Apply(runes("p"), in, t0)
	km.Apply(runes("p"), in, t0.Add(30*time.Millisecond)) // auto-repeat

	f := in.Frame(t0.Add(10 * time.Millisecond))
	if !f.IsPressed(core.KeyRight) {
		t.Error("KeyRight not held after a press")
	}
	if n := len(f.Events()); n != 1 || !f.Has(core.ActionPause) {
		t.Errorf("Events() = %v, expected one Pause", f.Events())
	}

	f = in.Frame(t0.Add(time.Second))
	if f.IsPressed(core.KeyRight) || len(f.Events()) != 0 {
		t.Errorf("frame after the hold window = %+v, expected empty", f)
	}

	if !km.Apply(runes("q"), in, t0) {
		t.Error("Apply(q) = false, expected quit")
	}
}

func TestTickDeliversInput(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig())
	m.Init()
	if game.resets != 1 {
		t.Fatalf("Init() resets = %d, expected 1", game.resets)
	}

	now := time.Now()
	m.now = func() time.Time { return now }

	next, _ := m.Update(runes(" "))
	m = next.(Model)
	next, cmd := m.Update(TickMsg(now.Add(16 * time.Millisecond)))
	m = next.(Model)

	if game.frames != 1 {
		t.Fatalf("frames = %d, expected 1", game.frames)
	}
	if !game.last.IsPressed(core.KeyFire) {
		t.Error("frame input missing held Fire")
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("running game should schedule another tick")
	}
}

func TestQuitStopsTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig())

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if !game.Stopped() {
		t.Error("quit key did not stop the game")
	}
	if !isQuit(cmd) {
		t.Error("quit key should return tea.Quit")
	}

	_, cmd = m.Update(TickMsg(time.Now()))
	if game.frames != 0 {
		t.Errorf("frames after quit = %d, expected 0", game.frames)
	}
	if !isQuit(cmd) {
		t.Error("tick after stop should not schedule another frame")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestExternalStopEndsLoop(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig())
	game.Stop()

	_, cmd := m.Update(TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("tick on a stopped game should quit")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig())
	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Errorf("View() missing game output")
	}
	if !strings.Contains(view, "fire") || !strings.Contains(view, "quit") {
		t.Errorf("View() missing help line: %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("View() = %d lines, expected 24", lines)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-helpRows)
	}
	if game.resets != 0 {
		t.Errorf("resize reset the game %d times", game.resets)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColor(0, 0, 'A', core.ColorRed)
	s.SetColor(1, 0, 'B', core.ColorRed)
	s.Set(2, 1, 'C')

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() rows = %d, expected 2", strings.Count(out, "\n")+1)
	}
	if !strings.Contains(out, "AB") || !strings.Contains(out, "C") {
		t.Errorf("RenderScreen() = %q, expected runs AB and C", out)
	}
}

func TestNewGameRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game, err := NewGame(SessionOptions{GameID: "skyraid", Store: store})
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if game.ID() != "skyraid" {
		t.Errorf("ID() = %q, expected skyraid", game.ID())
	}

	recordRun(store, nil)(core.RunResult{}) // zero score is skipped
	rec := recordRun(store, discardLogger())
	rec(core.RunResult{RunID: "r1", GameID: "skyraid", Score: 40, Level: 1})

	scores, err := store.TopScores("skyraid", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].RunID != "r1" {
		t.Errorf("TopScores() = %+v, expected the recorded run", scores)
	}

	if _, err := NewGame(SessionOptions{GameID: "nope"}); err == nil {
		t.Error("NewGame() with an unknown id succeeded")
	}
}
