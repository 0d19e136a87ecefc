package systems

import (
	"log"
	"math"
	"slices"

	cfg "github.com/automoto/actionmap/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Axis changes smaller than this are not reported as events
const axisChangeThreshold = 0.01

// GamepadPoller is the slice of ebiten's gamepad API EbitenDevices polls.
type GamepadPoller interface {
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	GamepadName(id ebiten.GamepadID) string
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
}

type ebitenGamepads struct{}

func (ebitenGamepads) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenGamepads) GamepadName(id ebiten.GamepadID) string {
	return ebiten.GamepadName(id)
}

func (ebitenGamepads) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (ebitenGamepads) StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (ebitenGamepads) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

// EbitenDevices reads the physical devices through ebiten. Gamepad axes are
// polled and turned into change events so they go through the same latching
// path as event-driven backends.
type EbitenDevices struct {
	pads GamepadPoller

	// Reusable slices to avoid allocations
	gamepadIDs []ebiten.GamepadID
	events     []GamepadEvent
	gone       []ebiten.GamepadID

	// Last reported axis values per connected gamepad
	known map[ebiten.GamepadID]*[ebiten.StandardGamepadAxisMax + 1]float64

	cursorX, cursorY int
	cursorSeen       bool
}

func NewEbitenDevices() *EbitenDevices {
	return NewEbitenDevicesWithGamepads(ebitenGamepads{})
}

// NewEbitenDevicesWithGamepads polls gamepads through pads instead of ebiten.
func NewEbitenDevicesWithGamepads(pads GamepadPoller) *EbitenDevices {
	return &EbitenDevices{
		pads:  pads,
		known: make(map[ebiten.GamepadID]*[ebiten.StandardGamepadAxisMax + 1]float64),
	}
}

func (d *EbitenDevices) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (d *EbitenDevices) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (d *EbitenDevices) MouseMotion() (dx, dy float64) {
	x, y := ebiten.CursorPosition()
	if !d.cursorSeen {
		d.cursorX, d.cursorY = x, y
		d.cursorSeen = true
		return 0, 0
	}
	dx, dy = float64(x-d.cursorX), float64(y-d.cursorY)
	d.cursorX, d.cursorY = x, y
	return dx, dy
}

func (d *EbitenDevices) MouseWheel() (dx, dy float64) {
	return ebiten.Wheel()
}

func (d *EbitenDevices) IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	if !d.pads.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	return d.pads.IsStandardGamepadButtonPressed(id, button)
}

// GamepadEvents diffs the connected gamepads and their axes against the last
// call. Disconnects come first, then connects and axis changes in id order.
// Readings within cfg.Input.AxisDeadzone are reported as 0, and a return to
// 0 is always reported, so a stick settling inside the dead zone releases.
func (d *EbitenDevices) GamepadEvents() []GamepadEvent {
	d.events = d.events[:0]
	d.gamepadIDs = d.pads.AppendGamepadIDs(d.gamepadIDs[:0])
	slices.Sort(d.gamepadIDs)

	d.gone = d.gone[:0]
	for id := range d.known {
		if !slices.Contains(d.gamepadIDs, id) {
			d.gone = append(d.gone, id)
		}
	}
	slices.Sort(d.gone)
	for _, id := range d.gone {
		delete(d.known, id)
		d.events = append(d.events, GamepadEvent{Kind: GamepadDisconnected, ID: id})
	}

	for _, id := range d.gamepadIDs {
		axes, ok := d.known[id]
		if !ok {
			axes = new([ebiten.StandardGamepadAxisMax + 1]float64)
			d.known[id] = axes
			d.events = append(d.events, GamepadEvent{Kind: GamepadConnected, ID: id})
			if !d.pads.IsStandardGamepadLayoutAvailable(id) {
				log.Printf("InputMap: Gamepad %d (%s) has no standard layout, its inputs are ignored", id, d.pads.GamepadName(id))
			}
		}
		if !d.pads.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for axis := ebiten.StandardGamepadAxis(0); axis <= ebiten.StandardGamepadAxisMax; axis++ {
			v := d.pads.StandardGamepadAxisValue(id, axis)
			if math.Abs(v) <= cfg.Input.AxisDeadzone {
				v = 0
			}
			if v == axes[axis] || (v != 0 && math.Abs(v-axes[axis]) < axisChangeThreshold) {
				continue
			}
			axes[axis] = v
			d.events = append(d.events, GamepadEvent{Kind: GamepadAxisChanged, ID: id, Axis: axis, Value: v})
		}
	}
	return d.events
}
