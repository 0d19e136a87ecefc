package components

import "github.com/hajimehoshi/ebiten/v2"

// PlayerButton scopes a gamepad button to a player handle
type PlayerButton struct {
	Player int
	Button ebiten.StandardGamepadButton
}

// PlayerAxis scopes a gamepad axis to a player handle
type PlayerAxis struct {
	Player int
	Axis   GamepadAxis
}

// bindingMap maps physical keys to action names and remembers bind order.
// Rebinding a key keeps its original position.
type bindingMap[K comparable] struct {
	order   []K
	actions map[K]string
}

func (b *bindingMap[K]) set(k K, action string) {
	if b.actions == nil {
		b.actions = make(map[K]string)
	}
	if _, ok := b.actions[k]; !ok {
		b.order = append(b.order, k)
	}
	b.actions[k] = action
}

func (b *bindingMap[K]) remove(k K) {
	if _, ok := b.actions[k]; !ok {
		return
	}
	delete(b.actions, k)
	for i, o := range b.order {
		if o == k {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *bindingMap[K]) get(k K) (string, bool) {
	a, ok := b.actions[k]
	return a, ok
}

func (b *bindingMap[K]) each(fn func(k K, action string)) {
	for _, k := range b.order {
		fn(k, b.actions[k])
	}
}

func (b *bindingMap[K]) len() int {
	return len(b.order)
}

func (b *bindingMap[K]) clear() {
	b.order = nil
	b.actions = nil
}

// BindingsData is the binding registry: physical inputs to action names.
// Several inputs may feed one action; one input feeds at most one action.
// Keyboard and mouse bindings are shared by all players.
type BindingsData struct {
	keys           bindingMap[ebiten.Key]
	mouseButtons   bindingMap[ebiten.MouseButton]
	mouseAxes      bindingMap[MouseAxis]
	gamepadButtons bindingMap[PlayerButton]
	gamepadAxes    bindingMap[PlayerAxis]
	deadZones      map[string]float64

	// DefaultPlayer is the player the single-player helpers bind for
	DefaultPlayer int
}

// keyboard

func (b *BindingsData) BindKey(key ebiten.Key, action string) *BindingsData {
	b.keys.set(key, action)
	return b
}

func (b *BindingsData) UnbindKey(key ebiten.Key) *BindingsData {
	b.keys.remove(key)
	return b
}

func (b *BindingsData) KeyAction(key ebiten.Key) (string, bool) {
	return b.keys.get(key)
}

// EachKey calls fn for every keyboard binding in bind order.
func (b *BindingsData) EachKey(fn func(key ebiten.Key, action string)) {
	b.keys.each(fn)
}

// mouse

func (b *BindingsData) BindMouseButton(button ebiten.MouseButton, action string) *BindingsData {
	b.mouseButtons.set(button, action)
	return b
}

func (b *BindingsData) UnbindMouseButton(button ebiten.MouseButton) *BindingsData {
	b.mouseButtons.remove(button)
	return b
}

func (b *BindingsData) MouseButtonAction(button ebiten.MouseButton) (string, bool) {
	return b.mouseButtons.get(button)
}

func (b *BindingsData) EachMouseButton(fn func(button ebiten.MouseButton, action string)) {
	b.mouseButtons.each(fn)
}

func (b *BindingsData) BindMouseAxis(axis MouseAxis, action string) *BindingsData {
	b.mouseAxes.set(axis, action)
	return b
}

func (b *BindingsData) UnbindMouseAxis(axis MouseAxis) *BindingsData {
	b.mouseAxes.remove(axis)
	return b
}

func (b *BindingsData) MouseAxisAction(axis MouseAxis) (string, bool) {
	return b.mouseAxes.get(axis)
}

func (b *BindingsData) EachMouseAxis(fn func(axis MouseAxis, action string)) {
	b.mouseAxes.each(fn)
}

// gamepad buttons

func (b *BindingsData) BindGamepadButton(button ebiten.StandardGamepadButton, action string) *BindingsData {
	return b.BindGamepadButtonForPlayer(b.DefaultPlayer, button, action)
}

func (b *BindingsData) BindGamepadButtonForPlayer(player int, button ebiten.StandardGamepadButton, action string) *BindingsData {
	b.gamepadButtons.set(PlayerButton{Player: player, Button: button}, action)
	return b
}

func (b *BindingsData) UnbindGamepadButton(button ebiten.StandardGamepadButton) *BindingsData {
	return b.UnbindGamepadButtonForPlayer(b.DefaultPlayer, button)
}

func (b *BindingsData) UnbindGamepadButtonForPlayer(player int, button ebiten.StandardGamepadButton) *BindingsData {
	b.gamepadButtons.remove(PlayerButton{Player: player, Button: button})
	return b
}

func (b *BindingsData) GamepadButtonAction(player int, button ebiten.StandardGamepadButton) (string, bool) {
	return b.gamepadButtons.get(PlayerButton{Player: player, Button: button})
}

func (b *BindingsData) EachGamepadButton(fn func(pb PlayerButton, action string)) {
	b.gamepadButtons.each(fn)
}

// gamepad axes

func (b *BindingsData) BindGamepadAxis(axis GamepadAxis, action string) *BindingsData {
	return b.BindGamepadAxisForPlayer(b.DefaultPlayer, axis, action)
}

func (b *BindingsData) BindGamepadAxisForPlayer(player int, axis GamepadAxis, action string) *BindingsData {
	b.gamepadAxes.set(PlayerAxis{Player: player, Axis: axis}, action)
	return b
}

func (b *BindingsData) UnbindGamepadAxis(axis GamepadAxis) *BindingsData {
	return b.UnbindGamepadAxisForPlayer(b.DefaultPlayer, axis)
}

func (b *BindingsData) UnbindGamepadAxisForPlayer(player int, axis GamepadAxis) *BindingsData {
	b.gamepadAxes.remove(PlayerAxis{Player: player, Axis: axis})
	return b
}

func (b *BindingsData) GamepadAxisAction(player int, axis GamepadAxis) (string, bool) {
	return b.gamepadAxes.get(PlayerAxis{Player: player, Axis: axis})
}

func (b *BindingsData) EachGamepadAxis(fn func(pa PlayerAxis, action string)) {
	b.gamepadAxes.each(fn)
}

// dead zones

// SetDeadZone suppresses contributions to action weaker than v.
func (b *BindingsData) SetDeadZone(action string, v float64) *BindingsData {
	if b.deadZones == nil {
		b.deadZones = make(map[string]float64)
	}
	b.deadZones[action] = v
	return b
}

func (b *BindingsData) ClearDeadZone(action string) *BindingsData {
	delete(b.deadZones, action)
	return b
}

// DeadZone returns the dead zone of action, 0 when none is set.
func (b *BindingsData) DeadZone(action string) float64 {
	return b.deadZones[action]
}

// Len returns the number of bindings across all device classes.
func (b *BindingsData) Len() int {
	return b.keys.len() + b.mouseButtons.len() + b.mouseAxes.len() +
		b.gamepadButtons.len() + b.gamepadAxes.len()
}

// Clear removes every binding and dead zone.
func (b *BindingsData) Clear() {
	b.keys.clear()
	b.mouseButtons.clear()
	b.mouseAxes.clear()
	b.gamepadButtons.clear()
	b.gamepadAxes.clear()
	b.deadZones = nil
}
