// Package states implements the viewer's preview mode machine.
package states

import (
	"errors"
	"fmt"
)

// Mode is the viewer's interaction mode.
type Mode int

const (
	// Browsing lets page scroll drive the camera.
	Browsing Mode = iota
	// EnteringPreview is the handoff from scroll control to the enter tween.
	EnteringPreview
	// PreviewActive shows the orbit controls, swatches and hotspot overlay.
	PreviewActive
	// ExitingPreview returns the camera to the scroll-driven pose.
	ExitingPreview
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case EnteringPreview:
		return "entering_preview"
	case PreviewActive:
		return "preview_active"
	case ExitingPreview:
		return "exiting_preview"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrInvalidTransition is returned for a transition not in the table.
var ErrInvalidTransition = errors.New("invalid mode transition")

var transitions = map[Mode][]Mode{
	Browsing:        {EnteringPreview},
	EnteringPreview: {PreviewActive},
	PreviewActive:   {ExitingPreview},
	ExitingPreview:  {Browsing},
}

// Listener is notified after every successful transition.
type Listener func(from, to Mode)

// Machine holds the current mode and enforces legal transitions.
type Machine struct {
	current   Mode
	listeners []Listener
}

// NewMachine creates a machine in Browsing mode.
func NewMachine() *Machine {
	return &Machine{current: Browsing}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Is reports whether the machine is in mode.
func (m *Machine) Is(mode Mode) bool {
	return m.current == mode
}

// CanTransition reports whether moving to next is legal from the current mode.
func (m *Machine) CanTransition(next Mode) bool {
	for _, to := range transitions[m.current] {
		if to == next {
			return true
		}
	}
	return false
}

// Transition moves to next, or returns ErrInvalidTransition.
func (m *Machine) Transition(next Mode) error {
	if !m.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	from := m.current
	m.current = next
	for _, l := range m.listeners {
		l(from, next)
	}
	return nil
}

// OnTransition registers a listener.
func (m *Machine) OnTransition(l Listener) {
	m.listeners = append(m.listeners, l)
}
