package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same autopilot decisions must give identical runs
	run := func() *Game {
		g := New(registry.Options{})
		g.Reset(testRuntime(12345))
		for i := 0; i < 1200; i++ {
			if g.Step(Autopilot(g)).State.GameOver {
				break
			}
		}
		return g
	}

	g1 := run()
	g2 := run()

	if g1.State() != g2.State() {
		t.Errorf("Determinism failed: states differ.\nRun1=%+v\nRun2=%+v", g1.State(), g2.State())
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
	for _, kind := range []spawn.Family{spawn.FamilyObstacle, spawn.FamilyCoin} {
		if a, b := g1.World().Spawned(kind), g2.World().Spawned(kind); a != b {
			t.Errorf("Determinism failed: %s spawn counts differ. Run1=%d, Run2=%d", kind, a, b)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := NewZen(registry.Options{})
	g.Reset(testRuntime(42))

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Distance == 0 {
		t.Fatal("expected distance score after 2 seconds")
	}

	g.Reset(testRuntime(42))
	st := g.State()
	if st.Score != 0 || st.Distance != 0 || st.Elapsed != 0 || st.GameOver {
		t.Errorf("Reset did not clear state: %+v", st)
	}
	if len(g.World().Entities()) != 0 {
		t.Errorf("Reset left %d entities", len(g.World().Entities()))
	}
}

func TestGamePauseFreezesClock(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.State().Elapsed
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Elapsed != before {
		t.Errorf("clock advanced while paused: %v -> %v", before, g.State().Elapsed)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameObstacleEndsRun(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime(7))

	ahead := g.Player().Position().Add(g.frame.Forward.Scale(0.2))
	g.World().Spawn(spawn.Request{Position: ahead, Family: spawn.FamilyObstacle, Multiplier: 1})

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver {
		t.Fatal("expected game over after hitting an obstacle")
	}
	if !g.Crashed() {
		t.Error("expected crash flag")
	}
	if !g.Camera().IsShaking() {
		t.Error("expected camera shake on crash")
	}

	// Further steps are frozen
	elapsed := st.Elapsed
	g.Step(core.NewInputFrame())
	if g.State().Elapsed != elapsed {
		t.Error("clock advanced after game over")
	}
}

func TestGameZenSurvivesObstacle(t *testing.T) {
	g := NewZen(registry.Options{})
	g.Reset(testRuntime(7))

	ahead := g.Player().Position().Add(g.frame.Forward.Scale(0.2))
	g.World().Spawn(spawn.Request{Position: ahead, Family: spawn.FamilyObstacle, Multiplier: 1})

	if g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("zen mode must not end on obstacles")
	}
}

func TestGameCoinPickup(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime(3))

	ahead := g.Player().Position().Add(g.frame.Forward.Scale(0.2))
	g.World().Spawn(spawn.Request{Position: ahead, Family: spawn.FamilyCoin, Multiplier: 3})

	st := g.Step(core.NewInputFrame()).State
	if st.Coins != 3 {
		t.Errorf("Coins = %d, want 3", st.Coins)
	}
	if g.Scoreboard().Coins() != 1 {
		t.Errorf("picked up %d coins, want 1", g.Scoreboard().Coins())
	}
	if st.Score < 3 {
		t.Errorf("Score = %d, want at least the coin value", st.Score)
	}
}

func TestGameZenSpawnsOnlyCoins(t *testing.T) {
	g := NewZen(registry.Options{})
	g.Reset(testRuntime(99))

	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame())
	}

	if n := g.World().Spawned(spawn.FamilyObstacle); n != 0 {
		t.Errorf("zen spawned %d obstacles", n)
	}
	if n := g.World().Spawned(spawn.FamilyCoin); n == 0 {
		t.Error("zen spawned no coins")
	}
}

func TestGamePhaseAdvances(t *testing.T) {
	g := NewZen(registry.Options{})
	rt := testRuntime(5)
	rt.TickRate = 8 // exact tick delta
	g.Reset(rt)

	for i := 0; i < 8*61; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.State().Phase; got != 2 {
		t.Errorf("Phase = %d, want 2 after a minute", got)
	}
	for _, s := range g.Director().Schedulers() {
		if s.Phase() != 2 {
			t.Errorf("scheduler %s phase = %d, want 2", s.Name(), s.Phase())
		}
	}
}

func TestGamePresetStartsLater(t *testing.T) {
	g := New(registry.Options{Preset: "hard"})
	g.Reset(testRuntime(1))
	if got := g.State().Phase; got != 3 {
		t.Errorf("Phase = %d, want 3 for hard preset", got)
	}
}

func TestGameRender(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime(11))
	for i := 0; i < 90; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not rendered")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("HUD not rendered")
	}
	if !strings.ContainsRune(out, RoadEdgeChar) {
		t.Error("road not rendered")
	}

	// Tiny screens must not panic
	g.Render(core.NewScreen(5, 2))
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeClassic, ModeZen} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id, registry.Options{})
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}
