package bindingdata

import (
	"fmt"

	"github.com/automoto/actionmap/components"
)

// Entry binds one named input to an action. Player is only read for gamepad
// entries.
type Entry struct {
	Player int    `yaml:"player,omitempty" json:"player,omitempty" toml:"player,omitempty"`
	Input  string `yaml:"input" json:"input" toml:"input"`
	Action string `yaml:"action" json:"action" toml:"action"`
}

// File is the on-disk binding format. Entries keep their order, which decides
// which binding wins when two feed the same action in one frame.
type File struct {
	Keyboard       []Entry            `yaml:"keyboard,omitempty" json:"keyboard,omitempty" toml:"keyboard,omitempty"`
	MouseButtons   []Entry            `yaml:"mouse_buttons,omitempty" json:"mouse_buttons,omitempty" toml:"mouse_buttons,omitempty"`
	MouseAxes      []Entry            `yaml:"mouse_axes,omitempty" json:"mouse_axes,omitempty" toml:"mouse_axes,omitempty"`
	GamepadButtons []Entry            `yaml:"gamepad_buttons,omitempty" json:"gamepad_buttons,omitempty" toml:"gamepad_buttons,omitempty"`
	GamepadAxes    []Entry            `yaml:"gamepad_axes,omitempty" json:"gamepad_axes,omitempty" toml:"gamepad_axes,omitempty"`
	DeadZones      map[string]float64 `yaml:"dead_zones,omitempty" json:"dead_zones,omitempty" toml:"dead_zones,omitempty"`
}

// FromBindings names every binding in b.
func FromBindings(b components.Bindings) (File, error) {
	var f File
	for _, kb := range b.Keys {
		name, err := KeyName(kb.Key)
		if err != nil {
			return File{}, err
		}
		f.Keyboard = append(f.Keyboard, Entry{Input: name, Action: kb.Action})
	}
	for _, mb := range b.MouseButtons {
		name, err := MouseButtonName(mb.Button)
		if err != nil {
			return File{}, err
		}
		f.MouseButtons = append(f.MouseButtons, Entry{Input: name, Action: mb.Action})
	}
	for _, ma := range b.MouseAxes {
		name, err := MouseAxisName(ma.Axis)
		if err != nil {
			return File{}, err
		}
		f.MouseAxes = append(f.MouseAxes, Entry{Input: name, Action: ma.Action})
	}
	for _, gb := range b.GamepadButtons {
		name, err := GamepadButtonName(gb.Button)
		if err != nil {
			return File{}, err
		}
		f.GamepadButtons = append(f.GamepadButtons, Entry{Player: gb.Player, Input: name, Action: gb.Action})
	}
	for _, ga := range b.GamepadAxes {
		name, err := GamepadAxisName(ga.Axis)
		if err != nil {
			return File{}, err
		}
		f.GamepadAxes = append(f.GamepadAxes, Entry{Player: ga.Player, Input: name, Action: ga.Action})
	}
	if len(b.DeadZones) > 0 {
		f.DeadZones = make(map[string]float64, len(b.DeadZones))
		for a, v := range b.DeadZones {
			f.DeadZones[a] = v
		}
	}
	return f, nil
}

// Bindings resolves every name in f. The first bad entry aborts the
// conversion.
func (f File) Bindings() (components.Bindings, error) {
	var b components.Bindings
	for i, e := range f.Keyboard {
		k, err := ParseKey(e.Input)
		if err != nil {
			return components.Bindings{}, entryError("keyboard", i, err)
		}
		b.Keys = append(b.Keys, components.KeyBinding{Key: k, Action: e.Action})
	}
	for i, e := range f.MouseButtons {
		mb, err := ParseMouseButton(e.Input)
		if err != nil {
			return components.Bindings{}, entryError("mouse_buttons", i, err)
		}
		b.MouseButtons = append(b.MouseButtons, components.MouseButtonBinding{Button: mb, Action: e.Action})
	}
	for i, e := range f.MouseAxes {
		ma, err := ParseMouseAxis(e.Input)
		if err != nil {
			return components.Bindings{}, entryError("mouse_axes", i, err)
		}
		b.MouseAxes = append(b.MouseAxes, components.MouseAxisBinding{Axis: ma, Action: e.Action})
	}
	for i, e := range f.GamepadButtons {
		gb, err := ParseGamepadButton(e.Input)
		if err != nil {
			return components.Bindings{}, entryError("gamepad_buttons", i, err)
		}
		b.GamepadButtons = append(b.GamepadButtons, components.GamepadButtonBinding{Player: e.Player, Button: gb, Action: e.Action})
	}
	for i, e := range f.GamepadAxes {
		ga, err := ParseGamepadAxis(e.Input)
		if err != nil {
			return components.Bindings{}, entryError("gamepad_axes", i, err)
		}
		b.GamepadAxes = append(b.GamepadAxes, components.GamepadAxisBinding{Player: e.Player, Axis: ga, Action: e.Action})
	}
	if len(f.DeadZones) > 0 {
		b.DeadZones = make(map[string]float64, len(f.DeadZones))
		for a, v := range f.DeadZones {
			b.DeadZones[a] = v
		}
	}
	return b, nil
}

func entryError(section string, i int, err error) error {
	return fmt.Errorf("%s[%d]: %w", section, i, err)
}
