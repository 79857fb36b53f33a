package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Autopilot steering weights.
const (
	obstacleWeight = 100.0
	coinWeight     = 1.0
	laneMoveWeight = 0.1
	minLookahead   = 15.0
)

// Autopilot returns the input a simple bot would press this tick: it steers
// one lane at a time towards the lane with the fewest obstacles and the most
// coins ahead. Used by headless simulation and demo play.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.player == nil || g.gameOver || g.paused {
		return in
	}

	cur := g.player.Lane()
	best := cur
	bestCost := math.Inf(1)
	for lane := 0; lane < g.cfg.Road.Lanes; lane++ {
		cost := g.laneCost(lane) + laneMoveWeight*float64(core.Abs(lane-cur))
		// Lanes in between must be crossed as well
		for l := core.Min(lane, cur) + 1; l < core.Max(lane, cur); l++ {
			cost += g.laneCost(l) / 2
		}
		if cost < bestCost {
			best, bestCost = lane, cost
		}
	}

	switch {
	case best < cur:
		in.Set(core.ActionLeft)
	case best > cur:
		in.Set(core.ActionRight)
	}
	return in
}

// laneCost scores what lies ahead in a lane; lower is better.
func (g *Game) laneCost(lane int) float64 {
	p := g.player
	center := spawn.LaneOffset(lane, g.cfg.Road.Lanes, g.cfg.Road.LaneWidth, g.frame.Width)
	lookahead := math.Max(minLookahead, p.Speed()*1.5)

	cost := 0.0
	for _, e := range g.world.Entities() {
		dist := e.Along - p.Along()
		if dist < -1 || dist > lookahead {
			continue
		}
		if math.Abs(e.Lateral-center)*2 >= e.Width+g.cfg.Player.Width {
			continue
		}
		closeness := 1 / (math.Max(dist, 0) + 1)
		switch e.Kind {
		case spawn.FamilyObstacle:
			cost += obstacleWeight * closeness
		case spawn.FamilyCoin:
			cost -= coinWeight * float64(e.Value) * closeness
		}
	}
	return cost
}
