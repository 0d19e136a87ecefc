package systems

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardState answers whether a key is held.
type KeyboardState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// MouseState answers mouse button and relative axis queries. MouseMotion and
// MouseWheel return the movement since the previous frame and are called once
// per frame.
type MouseState interface {
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	MouseMotion() (dx, dy float64)
	MouseWheel() (dx, dy float64)
}

// GamepadEventKind identifies a GamepadEvent
type GamepadEventKind int

const (
	GamepadConnected GamepadEventKind = iota
	GamepadDisconnected
	GamepadAxisChanged
)

// GamepadEvent is a discrete gamepad notification. Axis and Value are only
// meaningful for GamepadAxisChanged.
type GamepadEvent struct {
	Kind  GamepadEventKind
	ID    ebiten.GamepadID
	Axis  ebiten.StandardGamepadAxis
	Value float64
}

// GamepadState delivers connection and axis events and answers button
// queries. GamepadEvents drains the events raised since the last call.
type GamepadState interface {
	GamepadEvents() []GamepadEvent
	IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

// Devices is everything the samplers read.
type Devices interface {
	KeyboardState
	MouseState
	GamepadState
}
