package system

import (
	"github.com/milk9111/cardwalk/character"
	"github.com/milk9111/cardwalk/ecs"
	"github.com/milk9111/cardwalk/ecs/component"
)

// CharacterSystem ticks every character's state machine by a fixed delta and
// reports action starts and completions as world events.
type CharacterSystem struct {
	delta float64
}

func NewCharacterSystem(delta float64) *CharacterSystem {
	return &CharacterSystem{delta: delta}
}

func (c *CharacterSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.Machine == nil {
			return
		}
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			ch.Machine.SetIntent(input.Intent)
		}

		before := ch.Machine.Snapshot().Action()
		ch.Machine.Update(c.delta)
		after := ch.Machine.Snapshot().Action()

		for _, evt := range actionEvents(e, before, after) {
			w.Events().Push(ecs.Event{Type: characterEventType, Data: evt})
		}
	})
}

const characterEventType = "character"

func actionEvents(e ecs.Entity, before, after string) []ecs.CharacterEvent {
	if before == after {
		return nil
	}
	var out []ecs.CharacterEvent
	if before != character.ActionNormal {
		out = append(out, ecs.CharacterEvent{Entity: e, Kind: ecs.CharacterEventActionCompleted, Action: before})
	}
	if after != character.ActionNormal {
		out = append(out, ecs.CharacterEvent{Entity: e, Kind: ecs.CharacterEventActionStarted, Action: after})
	}
	return out
}

// CharacterEvents returns this tick's character events.
func CharacterEvents(w *ecs.World) []ecs.CharacterEvent {
	var out []ecs.CharacterEvent
	for _, evt := range w.Events().Peek() {
		if evt.Type != characterEventType {
			continue
		}
		if ce, ok := evt.Data.(ecs.CharacterEvent); ok {
			out = append(out, ce)
		}
	}
	return out
}
