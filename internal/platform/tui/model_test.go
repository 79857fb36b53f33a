package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
	_ "github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// stubGame ends the run after a fixed number of steps.
type stubGame struct {
	steps     int
	endAfter  int
	resets    int
	highScore int
	lastInput core.InputFrame
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "stub") }
func (g *stubGame) SetHighScore(score int) { g.highScore = score }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.steps = 0; g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in.Clone()
	if g.steps < g.endAfter {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.steps * 10,
		Coins:    g.steps,
		Distance: float64(g.steps) * 2.5,
		Phase:    1,
		Elapsed:  float64(g.steps) / 30,
		GameOver: g.steps >= g.endAfter,
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 7}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestModelSavesRunOnceOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{endAfter: 3}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 saved run, got %d", len(runs))
	}
	run := runs[0]
	if run.Score != 30 || run.Coins != 3 || run.Seed != 7 {
		t.Errorf("saved run = %+v, want score 30, coins 3, seed 7", run)
	}
	if run.Distance != 7.5 {
		t.Errorf("saved distance = %v, want 7.5", run.Distance)
	}
}

func TestModelSeedsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{Mode: "stub", Score: 420}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	game := &stubGame{endAfter: 100}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()

	if game.highScore != 420 {
		t.Errorf("high score = %d, want 420", game.highScore)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{endAfter: 2}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()

	// Restart is ignored mid-run
	m = press(t, m, runeKey("r"))
	m = tick(t, m)
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = press(t, m, runeKey("r"))
	m = tick(t, m)
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2 after restart", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestModelForwardsSteering(t *testing.T) {
	game := &stubGame{endAfter: 100}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()

	m = press(t, m, runeKey("a"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, runeKey("d"))
	tick(t, m)

	if got := game.lastInput.Count(core.ActionLeft); got != 2 {
		t.Errorf("left presses = %d, want 2", got)
	}
	if got := game.lastInput.Count(core.ActionRight); got != 1 {
		t.Errorf("right presses = %d, want 1", got)
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &stubGame{endAfter: 1}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()
	m = tick(t, m)

	if m = press(t, m, runeKey("b")); m.BackToMenu() {
		t.Error("standalone play should not go back to a menu")
	}

	m.canGoBack = true
	if m = press(t, m, runeKey("b")); !m.BackToMenu() {
		t.Error("session play should go back after game over")
	}
}

func TestRunRecord(t *testing.T) {
	st := core.GameState{Score: 12, Coins: 4, Distance: 8.2, Phase: 3, Elapsed: 61.5}
	run := RunRecord("runner", 99, st)

	if run.Mode != "runner" || run.Score != 12 || run.Coins != 4 || run.Phase != 3 {
		t.Errorf("RunRecord() = %+v", run)
	}
	if run.DurationSecs != 61.5 || run.Seed != 99 || run.Distance != 8.2 {
		t.Errorf("RunRecord() = %+v", run)
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{
		{Score: 300, Coins: 12, Phase: 4, DurationSecs: 125},
		{Score: 100, Coins: 2, Phase: 1, DurationSecs: 9.6},
	})

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	want := []string{"#1", "300", "12", "4", "2:05"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], w)
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "0:10" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, testConfig(), registry.Options{})

	update := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, want SessionModel", next)
		}
		s = sm
		return cmd
	}

	if !strings.Contains(s.View(), "Lane Runner") {
		t.Fatalf("menu should list the runner modes:\n%s", s.View())
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("selecting a mode should start a run")
	}

	// Pause, then back to the menu
	update(runeKey("p"))
	update(TickMsg{})
	if !s.gameModel.State().Paused {
		t.Fatal("expected paused run")
	}
	update(runeKey("b"))
	if s.gameModel != nil {
		t.Fatal("back should return to the menu")
	}

	// Tab opens the run history inside the session
	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "RUN HISTORY") {
		t.Errorf("scoreboard view missing title:\n%s", s.View())
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
	if s.quitting {
		t.Error("session should still be running")
	}
}
