package game

import (
	"fmt"

	"floatme/internal/engine"

	"github.com/charmbracelet/log"
)

// GameState gates which systems run.
type GameState int

const (
	StateAssetLoading GameState = iota
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateAssetLoading:
		return "asset_loading"
	case StatePlaying:
		return "playing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Phase orders systems within a frame.
type Phase int

const (
	PhasePreUpdate Phase = iota
	PhaseUpdate
	PhasePostUpdate
	phaseCount
)

// System is a per-frame step over the scene.
type System interface {
	Update(scene *engine.Scene, deltaTime float32)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(scene *engine.Scene, deltaTime float32)

func (f SystemFunc) Update(scene *engine.Scene, deltaTime float32) {
	f(scene, deltaTime)
}

// EnterHook runs once each time its state is entered.
type EnterHook func(scene *engine.Scene) error

type scheduled struct {
	state  GameState
	system System
}

// Scheduler runs systems phase by phase for the current state. State changes
// requested with SetState take effect at the start of the next frame, where
// the new state's enter hooks fire before any of its systems.
type Scheduler struct {
	state   GameState
	next    GameState
	pending bool
	entered bool
	systems [phaseCount][]scheduled
	onEnter map[GameState][]EnterHook
}

func NewScheduler(initial GameState) *Scheduler {
	return &Scheduler{
		state:   initial,
		onEnter: make(map[GameState][]EnterHook),
	}
}

func (s *Scheduler) State() GameState {
	return s.state
}

// Add registers sys to run in phase while state is current. Systems in a
// phase run in registration order.
func (s *Scheduler) Add(phase Phase, state GameState, sys System) {
	s.systems[phase] = append(s.systems[phase], scheduled{state: state, system: sys})
}

func (s *Scheduler) OnEnter(state GameState, hook EnterHook) {
	s.onEnter[state] = append(s.onEnter[state], hook)
}

// SetState requests a transition. Requesting the current state is a no-op.
func (s *Scheduler) SetState(next GameState) {
	if next == s.state && s.entered {
		s.pending = false
		return
	}
	s.next = next
	s.pending = true
}

// Run executes one frame: pending transition and enter hooks, then every
// phase in order. A failing enter hook aborts the frame.
func (s *Scheduler) Run(scene *engine.Scene, deltaTime float32) error {
	if err := s.transition(scene); err != nil {
		return err
	}
	for phase := range phaseCount {
		for _, sc := range s.systems[phase] {
			if sc.state == s.state {
				sc.system.Update(scene, deltaTime)
			}
		}
	}
	return nil
}

func (s *Scheduler) transition(scene *engine.Scene) error {
	if s.pending {
		log.Info("state: transition", "from", s.state, "to", s.next)
		s.state = s.next
		s.pending = false
		s.entered = false
	}
	if s.entered {
		return nil
	}
	s.entered = true
	for _, hook := range s.onEnter[s.state] {
		if err := hook(scene); err != nil {
			return fmt.Errorf("game: enter %s: %w", s.state, err)
		}
	}
	return nil
}
