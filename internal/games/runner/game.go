// Package runner implements the lane runner: the player runs forward along a
// multi-lane road, steers between lanes, collects coins and avoids
// obstacles placed by the spawn engine.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Mode IDs.
const (
	ModeClassic = "runner"
	ModeZen     = "runner_zen"
)

// Scheduler names.
const (
	obstacleScheduler = "obstacles"
	coinScheduler     = "coins"
)

// Game implements the lane runner game logic.
type Game struct {
	id     string
	title  string
	zen    bool // Coins only, obstacles never end the run
	opts   registry.Options
	logger *log.Logger

	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	director   *spawn.Director
	road       spawn.RoadDescriptor
	frame      spawn.Frame

	player *Player
	camera *Camera
	world  *World
	score  *Scoreboard

	clock     float64 // Game clock in seconds, frozen while paused or over
	tickCount int
	gameOver  bool
	paused    bool
	crashed   bool // Run ended by an obstacle rather than by stopping
}

// New creates a classic lane runner.
func New(opts registry.Options) *Game {
	return newGame(ModeClassic, "Lane Runner", false, opts)
}

// NewZen creates the coins-only variant.
func NewZen(opts registry.Options) *Game {
	return newGame(ModeZen, "Zen Run", true, opts)
}

func newGame(id, title string, zen bool, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		id:     id,
		title:  title,
		zen:    zen,
		opts:   opts,
		logger: logger.WithPrefix(id),
		score:  NewScoreboard(0),
	}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// SetHighScore seeds the high score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.score.highScore = max(g.score.highScore, score)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	forward, right := core.YawAxes(g.cfg.Road.Heading)
	g.road = spawn.RoadDescriptor{
		Center:  core.Vec3Zero,
		Forward: forward,
		Right:   right,
		Width:   g.cfg.Road.Width,
	}
	g.frame = spawn.Resolve(&g.road, spawn.AgentSnapshot{}, spawn.DefaultRoadWidth)

	g.score.Reset()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.director = spawn.NewDirector(g.score, g.logger, g.schedulers(runtime.Seed)...)
	g.director.SetRoad(&g.road)
	g.director.OnPhaseChange(g.difficulty.Phase())

	g.player = NewPlayer(g.cfg.Player, g.frame, g.cfg.Road.Lanes, g.cfg.Road.LaneWidth)
	g.camera = NewCamera(g.cfg.Camera, g.frame, g.player.Position())
	g.world = NewWorld(g.cfg, g.frame)

	g.clock = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.crashed = false

	g.logger.Debug("run started", "seed", runtime.Seed, "phase", g.difficulty.Phase(), "lanes", g.cfg.Road.Lanes)
}

func (g *Game) loadConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(g.opts.Preset))
	if err := cfg.Validate(); err != nil {
		g.logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultRunnerConfig()
		config.ApplyPreset(&cfg, config.ParsePreset(g.opts.Preset))
	}
	if g.zen {
		cfg.Obstacles.Enabled = false
	}
	return cfg
}

// schedulers builds one scheduler per enabled spawner. Each gets its own
// random source derived from seed.
func (g *Game) schedulers(seed int64) []*spawn.Scheduler {
	var out []*spawn.Scheduler
	if g.cfg.Obstacles.Enabled {
		trait := spawn.ObstacleTrait{SizeMultiplier: g.cfg.Obstacles.SizeMultiplier}
		out = append(out, spawn.NewScheduler(obstacleScheduler, g.spawnConfig(g.cfg.Obstacles), trait, spawn.NewRand(seed)))
	}
	if g.cfg.Coins.Enabled {
		trait := spawn.CoinTrait{BaseValue: g.cfg.Coins.BaseValue, ValueMultiplier: g.cfg.Coins.ValueMultiplier}
		out = append(out, spawn.NewScheduler(coinScheduler, g.spawnConfig(g.cfg.Coins), trait, spawn.NewRand(seed+1)))
	}
	return out
}

func (g *Game) spawnConfig(s config.SpawnerConfig) spawn.Config {
	return spawn.Config{
		Lanes:                g.cfg.Road.Lanes,
		LaneWidth:            g.cfg.Road.LaneWidth,
		DefaultRoadWidth:     spawn.DefaultRoadWidth,
		MinSpawnRate:         s.MinSpawnRate,
		MaxSpawnRate:         s.MaxSpawnRate,
		RateIncreasePerPhase: s.RateIncreasePerPhase,
		MinSpawnDistance:     s.MinSpawnDistance,
		MaxSpawnDistance:     s.MaxSpawnDistance,
		PatternChance:        s.PatternChance,
		MinPatternCount:      s.MinPatternCount,
		MaxPatternCount:      s.MaxPatternCount,
		PatternSpacing:       s.PatternSpacing,
		SpawnHeight:          s.SpawnHeight,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickDelta()
	g.tickCount++
	g.clock += dt

	for i := 0; i < in.Count(core.ActionLeft); i++ {
		g.player.SteerLeft()
	}
	for i := 0; i < in.Count(core.ActionRight); i++ {
		g.player.SteerRight()
	}

	if phase, changed := g.difficulty.Update(dt); changed {
		g.director.OnPhaseChange(phase)
	}

	distance, stopped := g.player.Update(dt, g.director.Phase())
	g.score.AddDistance(distance)
	g.camera.Follow(g.player.Position(), dt)

	agent := g.player.Snapshot()
	for _, req := range g.director.Tick(g.clock, &agent) {
		g.world.Spawn(req)
	}

	for _, e := range g.world.Collide(g.player.Footprint()) {
		switch e.Kind {
		case spawn.FamilyCoin:
			g.director.ValueCollected(e.Value)
		case spawn.FamilyObstacle:
			g.camera.Shake(g.cfg.Camera.ShakeDuration, g.cfg.Camera.ShakeMagnitude)
			if !g.zen {
				g.crashed = true
				g.endRun("obstacle")
			}
		}
	}

	g.world.Despawn(g.player.Along())

	if stopped && !g.gameOver {
		g.endRun("stopped")
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) endRun(reason string) {
	g.gameOver = true
	g.logger.Debug("run over",
		"reason", reason,
		"score", g.score.Score(),
		"coins", g.score.Coins(),
		"phase", g.director.Phase(),
		"elapsed", g.clock,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score.Score(),
		Coins:    int(g.score.CoinScore()),
		Distance: g.score.DistanceScore(),
		Phase:    g.score.Phase(),
		Elapsed:  g.clock,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.player != nil {
		st.Speed = g.player.Speed()
	}
	return st
}

// Player returns the controlled agent.
func (g *Game) Player() *Player { return g.player }

// World returns the live entities.
func (g *Game) World() *World { return g.world }

// Scoreboard returns the run's score keeper.
func (g *Game) Scoreboard() *Scoreboard { return g.score }

// Director returns the spawn director.
func (g *Game) Director() *spawn.Director { return g.director }

// Camera returns the follow camera.
func (g *Game) Camera() *Camera { return g.camera }

// Config returns the effective configuration.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// Crashed reports whether the run ended on an obstacle.
func (g *Game) Crashed() bool { return g.crashed }

// Register the modes with the registry
func init() {
	registry.Register(ModeClassic, func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register(ModeZen, func(opts registry.Options) registry.Game {
		return NewZen(opts)
	})
}
