package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Entity is an instantiated spawn request.
type Entity struct {
	ID       int
	Kind     spawn.Family
	Position core.Vec3
	Lane     int
	Lateral  float64 // Road-local coordinates of Position
	Along    float64
	Width    float64
	Depth    float64
	Scale    float64 // Obstacles
	Value    int     // Coins
}

// Footprint returns the entity's collision box on the road plane.
func (e Entity) Footprint() core.Footprint {
	return core.Footprint{Lateral: e.Lateral, Along: e.Along, Width: e.Width, Depth: e.Depth}
}

// World holds the live entities of a run.
type World struct {
	frame     spawn.Frame
	obstacles config.SpawnerConfig
	coins     config.SpawnerConfig
	despawn   float64

	entities []Entity
	nextID   int
	spawned  map[spawn.Family]int
}

// NewWorld creates an empty world on the given road frame.
func NewWorld(cfg config.RunnerConfig, frame spawn.Frame) *World {
	return &World{
		frame:     frame,
		obstacles: cfg.Obstacles,
		coins:     cfg.Coins,
		despawn:   cfg.World.DespawnBehind,
		entities:  make([]Entity, 0, 32),
		spawned:   make(map[spawn.Family]int),
	}
}

// Spawn instantiates a request and returns the new entity.
func (w *World) Spawn(req spawn.Request) Entity {
	w.nextID++
	lateral, along := w.frame.Local(req.Position)
	e := Entity{
		ID:       w.nextID,
		Kind:     req.Family,
		Position: req.Position,
		Lane:     req.Lane,
		Lateral:  lateral,
		Along:    along,
	}

	switch req.Family {
	case spawn.FamilyObstacle:
		e.Scale = req.Multiplier
		e.Width = w.obstacles.ItemWidth * req.Multiplier
		e.Depth = w.obstacles.ItemDepth * req.Multiplier
	default:
		e.Scale = 1
		e.Value = int(math.Round(req.Multiplier))
		e.Width = w.coins.ItemWidth
		e.Depth = w.coins.ItemDepth
	}

	w.entities = append(w.entities, e)
	w.spawned[req.Family]++
	return e
}

// Collide removes and returns every entity overlapping fp.
func (w *World) Collide(fp core.Footprint) []Entity {
	var hits []Entity
	kept := w.entities[:0]
	for _, e := range w.entities {
		if fp.Overlaps(e.Footprint()) {
			hits = append(hits, e)
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
	return hits
}

// Despawn removes entities left more than the configured distance behind
// along, and returns how many were removed.
func (w *World) Despawn(along float64) int {
	limit := along - w.despawn
	removed := 0
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Along < limit {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
	return removed
}

// Entities returns the live entities. The slice must not be modified.
func (w *World) Entities() []Entity {
	return w.entities
}

// Spawned returns how many entities of kind have been instantiated.
func (w *World) Spawned(kind spawn.Family) int {
	return w.spawned[kind]
}

// Clear removes all entities and resets the counters.
func (w *World) Clear() {
	w.entities = w.entities[:0]
	w.nextID = 0
	for k := range w.spawned {
		delete(w.spawned, k)
	}
}
