package components

import (
	"fmt"

	"github.com/yohamta/donburi/features/events"
)

// ActionPhase tags an ActionEvent
type ActionPhase int

const (
	PhaseActive   ActionPhase = iota // Present this frame
	PhaseBegin                       // Present this frame, absent last frame
	PhaseProgress                    // Present this frame and last frame
	PhaseEnd                         // Absent this frame, present last frame
)

func (p ActionPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseBegin:
		return "begin"
	case PhaseProgress:
		return "progress"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// ActionEvent is one phase of one action in one frame.
// Strength is zero for PhaseEnd.
type ActionEvent struct {
	Phase    ActionPhase
	Action   string
	Strength float64
}

// String renders "begin jump 0.70"; end events carry no strength.
func (e ActionEvent) String() string {
	if e.Phase == PhaseEnd {
		return fmt.Sprintf("%s %s", e.Phase, e.Action)
	}
	return fmt.Sprintf("%s %s %.2f", e.Phase, e.Action, e.Strength)
}

type ActionActiveEvent struct {
	Action   string
	Strength float64
}

type ActionBeginEvent struct {
	Action   string
	Strength float64
}

type ActionProgressEvent struct {
	Action   string
	Strength float64
}

type ActionEndEvent struct {
	Action string
}

var (
	ActionActive   = events.NewEventType[ActionActiveEvent]()
	ActionBegin    = events.NewEventType[ActionBeginEvent]()
	ActionProgress = events.NewEventType[ActionProgressEvent]()
	ActionEnd      = events.NewEventType[ActionEndEvent]()
)
