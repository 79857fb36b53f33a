package spawn

import (
	"io"

	"github.com/charmbracelet/log"
)

// EventSink receives gameplay notifications from the spawn layer.
type EventSink interface {
	ValueCollected(value int)
	PhaseChanged(phase int)
}

// Director owns the live schedulers of a level. It broadcasts phase changes
// synchronously to all of them and forwards events to the sink.
type Director struct {
	schedulers []*Scheduler
	sink       EventSink
	logger     *log.Logger
	phase      int
}

// NewDirector creates a director in phase 1. sink and logger may be nil.
func NewDirector(sink EventSink, logger *log.Logger, schedulers ...*Scheduler) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Director{
		sink:   sink,
		logger: logger,
		phase:  1,
	}
	for _, s := range schedulers {
		d.Add(s)
	}
	return d
}

// Add registers a scheduler and brings it to the current phase.
func (d *Director) Add(s *Scheduler) {
	if s == nil {
		return
	}
	s.OnPhaseChange(d.phase)
	d.schedulers = append(d.schedulers, s)
}

// Schedulers returns the registered schedulers in registration order.
func (d *Director) Schedulers() []*Scheduler {
	return d.schedulers
}

// Scheduler returns the scheduler with the given name, or nil.
func (d *Director) Scheduler(name string) *Scheduler {
	for _, s := range d.schedulers {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Phase returns the last broadcast phase.
func (d *Director) Phase() int {
	return d.phase
}

// OnPhaseChange pushes phase to every scheduler. The sink only hears about
// actual changes.
func (d *Director) OnPhaseChange(phase int) {
	for _, s := range d.schedulers {
		s.OnPhaseChange(phase)
	}
	if phase == d.phase {
		return
	}
	d.logger.Debug("difficulty phase changed", "from", d.phase, "to", phase)
	d.phase = phase
	if d.sink != nil {
		d.sink.PhaseChanged(phase)
	}
}

// SetRoad re-resolves the road for every scheduler.
func (d *Director) SetRoad(road *RoadDescriptor) {
	for _, s := range d.schedulers {
		s.SetRoad(road)
	}
}

// ValueCollected forwards a collected value to the sink.
func (d *Director) ValueCollected(value int) {
	if d.sink != nil {
		d.sink.ValueCollected(value)
	}
}

// Tick runs every scheduler in registration order and concatenates their
// requests.
func (d *Director) Tick(now float64, agent *AgentSnapshot) []Request {
	var out []Request
	for _, s := range d.schedulers {
		reqs := s.Tick(now, agent)
		if len(reqs) == 0 {
			continue
		}
		d.logger.Debug("spawn",
			"scheduler", s.Name(),
			"pattern", reqs[0].Pattern,
			"count", len(reqs),
			"phase", s.Phase(),
			"at", now,
		)
		out = append(out, reqs...)
	}
	return out
}

// Reset returns every scheduler and the director to phase 1.
func (d *Director) Reset() {
	d.phase = 1
	for _, s := range d.schedulers {
		s.Reset(nil)
	}
}
