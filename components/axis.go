package components

import "github.com/hajimehoshi/ebiten/v2"

// AxisDirection selects which half of an axis a binding reacts to
type AxisDirection int

const (
	AxisBoth     AxisDirection = iota // Either sign
	AxisPositive                      // Right / down on screen, wheel up
	AxisNegative                      // Left / up on screen, wheel down
)

// Matches reports whether a non-zero reading v falls on this direction.
func (d AxisDirection) Matches(v float64) bool {
	switch d {
	case AxisPositive:
		return v > 0
	case AxisNegative:
		return v < 0
	default:
		return v != 0
	}
}

// GamepadAxis identifies one direction of a standard-layout analog axis
type GamepadAxis struct {
	Axis      ebiten.StandardGamepadAxis
	Direction AxisDirection
}

// MouseAxisKind identifies a relative mouse axis
type MouseAxisKind int

const (
	MouseMotionX MouseAxisKind = iota
	MouseMotionY
	MouseWheelX
	MouseWheelY
)

// MouseAxis identifies one direction of a relative mouse axis
type MouseAxis struct {
	Axis      MouseAxisKind
	Direction AxisDirection
}

type latchKey struct {
	player int
	axis   ebiten.StandardGamepadAxis
}

// GamepadAxisMemory keeps the last reported value of every gamepad axis per
// player so event-driven axes keep contributing on frames without events.
type GamepadAxisMemory struct {
	latched map[latchKey]float64
}

// Latch records value for the axis. Readings within deadzone clear it.
func (m *GamepadAxisMemory) Latch(player int, axis ebiten.StandardGamepadAxis, value, deadzone float64) {
	k := latchKey{player: player, axis: axis}
	if value <= deadzone && value >= -deadzone {
		delete(m.latched, k)
		return
	}
	if m.latched == nil {
		m.latched = make(map[latchKey]float64)
	}
	m.latched[k] = value
}

// Value returns the latched signed value for the axis.
func (m *GamepadAxisMemory) Value(player int, axis ebiten.StandardGamepadAxis) (float64, bool) {
	v, ok := m.latched[latchKey{player: player, axis: axis}]
	return v, ok
}

// ForgetPlayer drops every latched axis of player.
func (m *GamepadAxisMemory) ForgetPlayer(player int) {
	for k := range m.latched {
		if k.player == player {
			delete(m.latched, k)
		}
	}
}
