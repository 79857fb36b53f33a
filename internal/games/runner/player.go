package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Player is the controlled agent. It always runs forward along the road and
// steers between lane centers. Position is kept in road-local coordinates.
type Player struct {
	cfg   config.PlayerConfig
	frame spawn.Frame
	lanes int
	laneW float64

	lane       int
	lateral    float64 // Offset from the road center along Right
	lateralVel float64
	along      float64 // Distance from the road center along Forward

	speed         float64
	gameTime      float64
	nextSpeedStep float64
	stoppedFor    float64
}

// NewPlayer places the player at the center lane of the road origin.
func NewPlayer(cfg config.PlayerConfig, frame spawn.Frame, lanes int, laneWidth float64) *Player {
	p := &Player{
		cfg:   cfg,
		frame: frame,
		lanes: max(1, lanes),
		laneW: laneWidth,
	}
	p.lane = (p.lanes - 1) / 2
	p.lateral = p.laneOffset(p.lane)
	p.speed = cfg.InitialSpeed
	p.nextSpeedStep = cfg.SpeedIncreaseInterval
	return p
}

// SteerLeft targets the next lane to the left, if any.
func (p *Player) SteerLeft() {
	p.lane = core.Clamp(p.lane-1, 0, p.lanes-1)
}

// SteerRight targets the next lane to the right, if any.
func (p *Player) SteerRight() {
	p.lane = core.Clamp(p.lane+1, 0, p.lanes-1)
}

// Lane returns the lane the player is steering towards.
func (p *Player) Lane() int { return p.lane }

// Lateral returns the current lateral offset.
func (p *Player) Lateral() float64 { return p.lateral }

// Along returns the distance travelled along the road.
func (p *Player) Along() float64 { return p.along }

// Speed returns the forward speed.
func (p *Player) Speed() float64 { return p.speed }

// Position returns the world position.
func (p *Player) Position() core.Vec3 {
	return p.frame.Center.
		Add(p.frame.Forward.Scale(p.along)).
		Add(p.frame.Right.Scale(p.lateral))
}

// Footprint returns the player's collision box on the road plane.
func (p *Player) Footprint() core.Footprint {
	return core.Footprint{
		Lateral: p.lateral,
		Along:   p.along,
		Width:   p.cfg.Width,
		Depth:   p.cfg.Depth,
	}
}

// Snapshot returns the read-only view handed to the spawn engine.
func (p *Player) Snapshot() spawn.AgentSnapshot {
	return spawn.AgentSnapshot{
		Position:     p.Position(),
		Forward:      p.frame.Forward,
		Right:        p.frame.Right,
		CurrentSpeed: p.speed,
		MaxSpeed:     p.cfg.MaxSpeed,
	}
}

// Update advances the player by dt seconds. It returns the distance score
// earned this tick and whether the player has been stopped long enough to
// end the run.
func (p *Player) Update(dt float64, phase int) (distanceScore float64, stopped bool) {
	if dt <= 0 {
		return 0, false
	}
	p.gameTime += dt

	// Speed steps up at fixed intervals until the cap
	if p.cfg.SpeedIncreaseInterval > 0 && p.gameTime >= p.nextSpeedStep && p.speed < p.cfg.MaxSpeed {
		p.speed = core.ClampF(p.speed+p.cfg.SpeedIncreaseAmount, 0, p.cfg.MaxSpeed)
		p.nextSpeedStep = p.gameTime + p.cfg.SpeedIncreaseInterval
	}

	before := p.Position()

	target := p.laneOffset(p.lane)
	p.lateral = core.SmoothDamp(p.lateral, target, &p.lateralVel, p.cfg.SteerSmoothTime, p.cfg.MaxLateralSpeed, dt)
	p.along += p.speed * dt

	moved := core.Distance(before, p.Position())
	if moved/dt < p.cfg.StopSpeed {
		p.stoppedFor += dt
	} else {
		p.stoppedFor = 0
	}

	multiplier := 1 + float64(phase)*0.1
	return p.speed * multiplier * dt, p.stoppedFor >= p.cfg.StopTime
}

func (p *Player) laneOffset(lane int) float64 {
	return spawn.LaneOffset(lane, p.lanes, p.laneW, p.frame.Width)
}
