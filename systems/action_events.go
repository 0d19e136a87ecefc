package systems

import (
	"log"
	"slices"

	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/yohamta/donburi/ecs"
)

// ProducePhaseEvents appends to dst one event per true phase predicate for
// every action present in either snapshot. Actions are visited by name so the
// output is deterministic.
func ProducePhaseEvents(a *components.ActionStateData, dst []components.ActionEvent) []components.ActionEvent {
	// Merge keys, required for End to fire since released actions are not
	// part of Current
	names := make([]string, 0, len(a.Current)+len(a.Previous))
	for name := range a.Current {
		names = append(names, name)
	}
	for name := range a.Previous {
		if _, ok := a.Current[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		strength := a.Current[name]
		if a.IsActionActive(name) {
			dst = append(dst, components.ActionEvent{Phase: components.PhaseActive, Action: name, Strength: strength})
		}
		if a.DidActionJustBegin(name) {
			dst = append(dst, components.ActionEvent{Phase: components.PhaseBegin, Action: name, Strength: strength})
		}
		if a.IsActionInProgress(name) {
			dst = append(dst, components.ActionEvent{Phase: components.PhaseProgress, Action: name, Strength: strength})
		}
		if a.DidActionJustEnd(name) {
			dst = append(dst, components.ActionEvent{Phase: components.PhaseEnd, Action: name})
		}
	}
	return dst
}

// UpdateActionEvents publishes this frame's action events and delivers them
// to every subscriber. Must run AFTER all samplers.
func UpdateActionEvents(e *ecs.ECS) {
	im := GetInputMap(e)
	im.LastEvents = ProducePhaseEvents(&im.Actions, im.LastEvents[:0])

	for _, ev := range im.LastEvents {
		if cfg.Debug.LogEvents {
			log.Printf("InputMap: %s", ev)
		}
		switch ev.Phase {
		case components.PhaseActive:
			components.ActionActive.Publish(e.World, components.ActionActiveEvent{Action: ev.Action, Strength: ev.Strength})
		case components.PhaseBegin:
			components.ActionBegin.Publish(e.World, components.ActionBeginEvent{Action: ev.Action, Strength: ev.Strength})
		case components.PhaseProgress:
			components.ActionProgress.Publish(e.World, components.ActionProgressEvent{Action: ev.Action, Strength: ev.Strength})
		case components.PhaseEnd:
			components.ActionEnd.Publish(e.World, components.ActionEndEvent{Action: ev.Action})
		}
	}

	components.ActionActive.ProcessEvents(e.World)
	components.ActionBegin.ProcessEvents(e.World)
	components.ActionProgress.ProcessEvents(e.World)
	components.ActionEnd.ProcessEvents(e.World)
}
