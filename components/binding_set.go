package components

import "github.com/hajimehoshi/ebiten/v2"

type KeyBinding struct {
	Key    ebiten.Key
	Action string
}

type MouseButtonBinding struct {
	Button ebiten.MouseButton
	Action string
}

type MouseAxisBinding struct {
	Axis   MouseAxis
	Action string
}

type GamepadButtonBinding struct {
	Player int
	Button ebiten.StandardGamepadButton
	Action string
}

type GamepadAxisBinding struct {
	Player int
	Axis   GamepadAxis
	Action string
}

// Bindings is a detached copy of a registry, in bind order. It is what gets
// saved to and loaded from disk.
type Bindings struct {
	Keys           []KeyBinding
	MouseButtons   []MouseButtonBinding
	MouseAxes      []MouseAxisBinding
	GamepadButtons []GamepadButtonBinding
	GamepadAxes    []GamepadAxisBinding
	DeadZones      map[string]float64
}

// Snapshot copies the registry.
func (b *BindingsData) Snapshot() Bindings {
	var out Bindings
	b.keys.each(func(k ebiten.Key, a string) {
		out.Keys = append(out.Keys, KeyBinding{Key: k, Action: a})
	})
	b.mouseButtons.each(func(k ebiten.MouseButton, a string) {
		out.MouseButtons = append(out.MouseButtons, MouseButtonBinding{Button: k, Action: a})
	})
	b.mouseAxes.each(func(k MouseAxis, a string) {
		out.MouseAxes = append(out.MouseAxes, MouseAxisBinding{Axis: k, Action: a})
	})
	b.gamepadButtons.each(func(k PlayerButton, a string) {
		out.GamepadButtons = append(out.GamepadButtons, GamepadButtonBinding{Player: k.Player, Button: k.Button, Action: a})
	})
	b.gamepadAxes.each(func(k PlayerAxis, a string) {
		out.GamepadAxes = append(out.GamepadAxes, GamepadAxisBinding{Player: k.Player, Axis: k.Axis, Action: a})
	})
	if len(b.deadZones) > 0 {
		out.DeadZones = make(map[string]float64, len(b.deadZones))
		for a, v := range b.deadZones {
			out.DeadZones[a] = v
		}
	}
	return out
}

// Apply replaces the whole registry with bs.
func (b *BindingsData) Apply(bs Bindings) {
	b.Clear()
	for _, kb := range bs.Keys {
		b.BindKey(kb.Key, kb.Action)
	}
	for _, mb := range bs.MouseButtons {
		b.BindMouseButton(mb.Button, mb.Action)
	}
	for _, ma := range bs.MouseAxes {
		b.BindMouseAxis(ma.Axis, ma.Action)
	}
	for _, gb := range bs.GamepadButtons {
		b.BindGamepadButtonForPlayer(gb.Player, gb.Button, gb.Action)
	}
	for _, ga := range bs.GamepadAxes {
		b.BindGamepadAxisForPlayer(ga.Player, ga.Axis, ga.Action)
	}
	for a, v := range bs.DeadZones {
		b.SetDeadZone(a, v)
	}
}
