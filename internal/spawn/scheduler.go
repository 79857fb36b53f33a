package spawn

import "github.com/vovakirdan/lane-runner/internal/core"

// MinSpawnInterval is the floor applied to a non-positive MinSpawnRate so
// that a fired spawn always moves the next spawn time into the future.
const MinSpawnInterval = 0.05

// PatternSingle names an emission that is not a pattern.
const PatternSingle = "single"

// Config tunes one scheduler instance. Rates are intervals in seconds.
type Config struct {
	Lanes            int
	LaneWidth        float64
	DefaultRoadWidth float64

	MinSpawnRate         float64
	MaxSpawnRate         float64
	RateIncreasePerPhase float64

	MinSpawnDistance float64
	MaxSpawnDistance float64

	PatternChance   float64
	MinPatternCount int
	MaxPatternCount int
	PatternSpacing  float64
	SpawnHeight     float64
}

// normalized returns a copy that the scheduler can run without further checks.
func (c Config) normalized() Config {
	if c.Lanes < 1 {
		c.Lanes = 1
	}
	if c.DefaultRoadWidth <= 0 {
		c.DefaultRoadWidth = DefaultRoadWidth
	}
	if c.MaxSpawnRate < c.MinSpawnRate {
		c.MinSpawnRate, c.MaxSpawnRate = c.MaxSpawnRate, c.MinSpawnRate
	}
	if c.MinSpawnRate <= 0 {
		c.MinSpawnRate = MinSpawnInterval
		if c.MaxSpawnRate < c.MinSpawnRate {
			c.MaxSpawnRate = c.MinSpawnRate
		}
	}
	if c.MaxSpawnDistance < c.MinSpawnDistance {
		c.MinSpawnDistance, c.MaxSpawnDistance = c.MaxSpawnDistance, c.MinSpawnDistance
	}
	if c.MaxPatternCount < c.MinPatternCount {
		c.MinPatternCount, c.MaxPatternCount = c.MaxPatternCount, c.MinPatternCount
	}
	return c
}

// Request asks the host to instantiate one item.
type Request struct {
	Position   core.Vec3
	Lane       int
	Multiplier float64 // Obstacle scale or coin value
	Family     Family
	Pattern    string
}

// Cadence is the scheduler's timing state.
type Cadence struct {
	NextSpawnTime float64
	RateCeiling   float64
}

// Scheduler decides when to spawn and what, for one item family.
//
// Each Tick it refreshes the difficulty curve; once the clock reaches
// NextSpawnTime it emits a single item or a phase pattern and draws the next
// spawn time from [MinSpawnRate, ceiling].
type Scheduler struct {
	name    string
	cfg     Config
	trait   ItemTrait
	rng     Rand
	curve   *Curve
	road    *RoadDescriptor
	cadence Cadence
}

// NewScheduler creates an idle scheduler that fires on its first tick.
func NewScheduler(name string, cfg Config, trait ItemTrait, rng Rand) *Scheduler {
	if rng == nil {
		rng = NewRand(1)
	}
	return &Scheduler{
		name:  name,
		cfg:   cfg.normalized(),
		trait: trait,
		rng:   rng,
		curve: NewCurve(),
	}
}

// Name returns the scheduler's name.
func (s *Scheduler) Name() string {
	return s.name
}

// Family returns the item family this scheduler emits.
func (s *Scheduler) Family() Family {
	return s.trait.Family()
}

// Config returns the normalized configuration.
func (s *Scheduler) Config() Config {
	return s.cfg
}

// SetRoad replaces the road descriptor. nil falls back to the agent's axes.
func (s *Scheduler) SetRoad(road *RoadDescriptor) {
	if road == nil {
		s.road = nil
		return
	}
	r := *road
	s.road = &r
}

// OnPhaseChange adopts a new difficulty phase.
func (s *Scheduler) OnPhaseChange(phase int) {
	s.curve.OnPhaseChange(phase)
}

// Phase returns the phase the scheduler currently spawns for.
func (s *Scheduler) Phase() int {
	return s.curve.Phase()
}

// Difficulty returns the current difficulty state.
func (s *Scheduler) Difficulty() DifficultyState {
	return s.curve.State()
}

// Cadence returns the timing state.
func (s *Scheduler) Cadence() Cadence {
	return s.cadence
}

// Reset returns the scheduler to its initial state. A non-nil rng replaces
// the current source.
func (s *Scheduler) Reset(rng Rand) {
	if rng != nil {
		s.rng = rng
	}
	s.curve = NewCurve()
	s.cadence = Cadence{}
}

// Tick advances the scheduler to now. It returns nil while waiting and at
// least one request when a spawn fires. A nil agent makes the tick a no-op.
func (s *Scheduler) Tick(now float64, agent *AgentSnapshot) []Request {
	if agent == nil {
		return nil
	}

	s.curve.Update(now, *agent)
	minRate, ceiling := s.curve.SpawnRateBounds(s.cfg.MinSpawnRate, s.cfg.MaxSpawnRate, s.cfg.RateIncreasePerPhase)
	if ceiling < minRate {
		ceiling = minRate
	}
	s.cadence.RateCeiling = ceiling

	if now < s.cadence.NextSpawnTime {
		return nil
	}

	requests := s.emit(*agent)
	s.cadence.NextSpawnTime = now + rangeF(s.rng, minRate, ceiling)
	return requests
}

// emit resolves a pattern (or a single lane) into world-space requests.
func (s *Scheduler) emit(agent AgentSnapshot) []Request {
	phase := s.curve.Phase()
	family := s.trait.Family()

	var placements []Placement
	pattern := PatternSingle
	if s.rng.Float64() < s.cfg.PatternChance {
		placements = Generate(family, phase, s.cfg.Lanes, s.cfg.MinPatternCount, s.cfg.MaxPatternCount, s.rng)
		pattern = PatternName(family, phase)
	}
	if len(placements) == 0 {
		placements = []Placement{{Lane: s.rng.Intn(s.cfg.Lanes)}}
		pattern = PatternSingle
	}

	frame := Resolve(s.road, agent, s.cfg.DefaultRoadWidth)
	distance := rangeF(s.rng, s.cfg.MinSpawnDistance, s.cfg.MaxSpawnDistance)
	origin := agent.Position.Add(agent.Forward.Scale(distance))
	multiplier := s.trait.Multiplier(phase)

	requests := make([]Request, 0, len(placements))
	for _, p := range placements {
		offset := LaneOffset(p.Lane, s.cfg.Lanes, s.cfg.LaneWidth, frame.Width)
		pos := frame.Project(origin, offset)
		// Pattern steps follow the agent heading, not the road axis.
		pos = pos.Add(agent.Forward.Scale(float64(p.Step) * s.cfg.PatternSpacing))
		pos.Y = s.cfg.SpawnHeight

		requests = append(requests, Request{
			Position:   pos,
			Lane:       p.Lane,
			Multiplier: multiplier,
			Family:     family,
			Pattern:    pattern,
		})
	}
	return requests
}
