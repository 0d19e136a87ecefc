package systems

import (
	"math"
	"testing"

	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeDevices is a scripted device backend. Gamepad events are handed out
// once and then cleared, like a real event queue.
type fakeDevices struct {
	keys         map[ebiten.Key]bool
	mouseButtons map[ebiten.MouseButton]bool
	pads         map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool
	events       []GamepadEvent
	motionX      float64
	motionY      float64
	wheelX       float64
	wheelY       float64
}

func newFakeDevices() *fakeDevices {
	return &fakeDevices{
		keys:         map[ebiten.Key]bool{},
		mouseButtons: map[ebiten.MouseButton]bool{},
		pads:         map[ebiten.GamepadID]map[ebiten.StandardGamepadButton]bool{},
	}
}

func (f *fakeDevices) IsKeyPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeDevices) IsMouseButtonPressed(b ebiten.MouseButton) bool { return f.mouseButtons[b] }

func (f *fakeDevices) MouseMotion() (float64, float64) { return f.motionX, f.motionY }

func (f *fakeDevices) MouseWheel() (float64, float64) { return f.wheelX, f.wheelY }

func (f *fakeDevices) IsGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.pads[id][b]
}

func (f *fakeDevices) GamepadEvents() []GamepadEvent {
	ev := f.events
	f.events = nil
	return ev
}

func (f *fakeDevices) press(id ebiten.GamepadID, b ebiten.StandardGamepadButton, down bool) {
	if f.pads[id] == nil {
		f.pads[id] = map[ebiten.StandardGamepadButton]bool{}
	}
	f.pads[id][b] = down
}

func newTestECS(t *testing.T, input cfg.InputConfig) (*ecs.ECS, *fakeDevices) {
	t.Helper()
	prev := cfg.Input
	cfg.Input = input
	t.Cleanup(func() { cfg.Input = prev })

	e := ecs.NewECS(donburi.NewWorld())
	d := newFakeDevices()
	AddInputSystems(e, d)
	return e, d
}

type frameState struct {
	active, begin, progress, end bool
}

func stateOf(im *components.InputMapData, action string) frameState {
	a := &im.Actions
	return frameState{
		active:   a.IsActionActive(action),
		begin:    a.DidActionJustBegin(action),
		progress: a.IsActionInProgress(action),
		end:      a.DidActionJustEnd(action),
	}
}

func TestKeyboardPressHoldRelease(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.BindKey(ebiten.KeySpace, "jump")

	frames := []struct {
		pressed bool
		want    frameState
	}{
		{true, frameState{active: true, begin: true}},
		{true, frameState{active: true, progress: true}},
		{false, frameState{end: true}},
		{false, frameState{}},
	}

	for i, f := range frames {
		d.keys[ebiten.KeySpace] = f.pressed
		e.Update()
		if got := stateOf(im, "jump"); got != f.want {
			t.Fatalf("frame %d: got %+v, want %+v", i+1, got, f.want)
		}
	}
}

func TestGamepadAxisIsLatchedBetweenEvents(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.BindGamepadAxis(components.GamepadAxis{
		Axis:      ebiten.StandardGamepadAxisLeftStickHorizontal,
		Direction: components.AxisBoth,
	}, "steer")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 3},
		{Kind: GamepadAxisChanged, ID: 3, Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Value: -0.6},
	}

	// The stick is held still: no further events, the value keeps applying
	for frame := 1; frame <= 4; frame++ {
		e.Update()
		got, ok := im.Actions.ActionStrength("steer")
		if !ok || math.Abs(got-0.6) > 1e-9 {
			t.Fatalf("frame %d: steer = %v, %v, want 0.6", frame, got, ok)
		}
		if frame == 1 && !im.Actions.DidActionJustBegin("steer") {
			t.Fatalf("steer should begin on frame 1")
		}
		if frame > 1 && !im.Actions.IsActionInProgress("steer") {
			t.Fatalf("frame %d: steer should be in progress", frame)
		}
	}

	// Back to center
	d.events = []GamepadEvent{{Kind: GamepadAxisChanged, ID: 3, Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Value: 0}}
	e.Update()
	if !im.Actions.DidActionJustEnd("steer") {
		t.Fatalf("steer should end once the stick is centered")
	}
}

func TestGamepadAxisDirection(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	axis := ebiten.StandardGamepadAxisLeftStickHorizontal
	im.Bindings.
		BindGamepadAxis(components.GamepadAxis{Axis: axis, Direction: components.AxisNegative}, "left").
		BindGamepadAxis(components.GamepadAxis{Axis: axis, Direction: components.AxisPositive}, "right")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 0},
		{Kind: GamepadAxisChanged, ID: 0, Axis: axis, Value: 0.8},
	}
	e.Update()

	if im.Actions.IsActionActive("left") {
		t.Fatalf("left should not react to a positive reading")
	}
	if got := im.Actions.Strength("right"); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("right = %v, want 0.8", got)
	}
}

func TestDisconnectClearsLatchedAxes(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	axis := ebiten.StandardGamepadAxisRightStickVertical
	im.Bindings.BindGamepadAxis(components.GamepadAxis{Axis: axis}, "aim")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 5},
		{Kind: GamepadAxisChanged, ID: 5, Axis: axis, Value: 1},
	}
	e.Update()
	if !im.Actions.IsActionActive("aim") {
		t.Fatalf("aim should be active")
	}

	d.events = []GamepadEvent{{Kind: GamepadDisconnected, ID: 5}}
	e.Update()
	if !im.Actions.DidActionJustEnd("aim") {
		t.Fatalf("aim should end when its gamepad disconnects")
	}
	if im.Players.InUse(0) {
		t.Fatalf("player 0 should be free again")
	}
}

func TestPoolOfOneIgnoresSecondGamepad(t *testing.T) {
	input := cfg.DefaultInput()
	input.MaxPlayers = 1
	e, d := newTestECS(t, input)
	im := GetInputMap(e)
	im.Bindings.
		BindGamepadButton(ebiten.StandardGamepadButtonRightBottom, "jump").
		BindGamepadButtonForPlayer(1, ebiten.StandardGamepadButtonRightBottom, "p1_jump")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 0},
		{Kind: GamepadConnected, ID: 1},
	}
	d.press(1, ebiten.StandardGamepadButtonRightBottom, true)
	e.Update()
	if im.Actions.IsActionActive("jump") || im.Actions.IsActionActive("p1_jump") {
		t.Fatalf("the unassigned gamepad must not drive actions")
	}

	d.press(0, ebiten.StandardGamepadButtonRightBottom, true)
	e.Update()
	if !im.Actions.DidActionJustBegin("jump") {
		t.Fatalf("player 0 press should begin jump")
	}
}

func TestGamepadButtonsFollowPlayerHandle(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.
		BindGamepadButtonForPlayer(0, ebiten.StandardGamepadButtonRightBottom, "p0_jump").
		BindGamepadButtonForPlayer(1, ebiten.StandardGamepadButtonRightBottom, "p1_jump")

	// Gamepad 7 is connected first and becomes player 0
	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 7},
		{Kind: GamepadConnected, ID: 2},
	}
	d.press(2, ebiten.StandardGamepadButtonRightBottom, true)
	e.Update()

	if im.Actions.IsActionActive("p0_jump") {
		t.Fatalf("gamepad 2 is player 1, not player 0")
	}
	if !im.Actions.IsActionActive("p1_jump") {
		t.Fatalf("gamepad 2 should drive player 1 bindings")
	}
}

func TestFanInLastWriteWins(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	axis := ebiten.StandardGamepadAxisLeftStickHorizontal
	im.Bindings.
		BindGamepadAxis(components.GamepadAxis{Axis: axis, Direction: components.AxisPositive}, "right").
		BindKey(ebiten.KeyD, "right")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 0},
		{Kind: GamepadAxisChanged, ID: 0, Axis: axis, Value: 0.4},
	}
	d.keys[ebiten.KeyD] = true
	e.Update()

	// Keyboard samples after gamepads
	if got := im.Actions.Strength("right"); got != 1 {
		t.Fatalf("right = %v, want 1", got)
	}

	d.keys[ebiten.KeyD] = false
	e.Update()
	if got := im.Actions.Strength("right"); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("right = %v, want 0.4", got)
	}
	if !im.Actions.IsActionInProgress("right") {
		t.Fatalf("right should stay in progress while the stick is held")
	}
}

func TestFanInMaxPolicy(t *testing.T) {
	input := cfg.DefaultInput()
	input.Aggregation = cfg.AggregateMax
	e, d := newTestECS(t, input)
	im := GetInputMap(e)
	axis := ebiten.StandardGamepadAxisLeftStickHorizontal
	im.Bindings.
		BindKey(ebiten.KeyD, "right").
		BindMouseAxis(components.MouseAxis{Axis: components.MouseMotionX, Direction: components.AxisPositive}, "right").
		BindGamepadAxis(components.GamepadAxis{Axis: axis, Direction: components.AxisPositive}, "right")

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 0},
		{Kind: GamepadAxisChanged, ID: 0, Axis: axis, Value: 0.9},
	}
	d.motionX = 2 // 0.2 at the default sensitivity
	e.Update()

	if got := im.Actions.Strength("right"); math.Abs(got-0.9) > 1e-9 {
		t.Fatalf("right = %v, want 0.9", got)
	}
}

func TestDeadZoneSuppressesWeakInput(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	axis := ebiten.StandardGamepadAxisLeftStickVertical
	im.Bindings.
		BindGamepadAxis(components.GamepadAxis{Axis: axis, Direction: components.AxisNegative}, "up").
		SetDeadZone("up", 0.3)

	d.events = []GamepadEvent{
		{Kind: GamepadConnected, ID: 0},
		{Kind: GamepadAxisChanged, ID: 0, Axis: axis, Value: -0.2},
	}
	e.Update()
	if im.Actions.IsActionActive("up") {
		t.Fatalf("reading below the dead zone should not activate up")
	}

	d.events = []GamepadEvent{{Kind: GamepadAxisChanged, ID: 0, Axis: axis, Value: -0.5}}
	e.Update()
	if !im.Actions.DidActionJustBegin("up") {
		t.Fatalf("up should begin past the dead zone")
	}
}

func TestMouseAxes(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.
		BindMouseAxis(components.MouseAxis{Axis: components.MouseMotionX, Direction: components.AxisNegative}, "look_left").
		BindMouseAxis(components.MouseAxis{Axis: components.MouseWheelY, Direction: components.AxisPositive}, "zoom_in").
		BindMouseButton(ebiten.MouseButtonLeft, "attack")

	d.motionX = -25
	d.wheelY = 0.5
	d.mouseButtons[ebiten.MouseButtonLeft] = true
	e.Update()

	if got := im.Actions.Strength("look_left"); got != 1 {
		t.Fatalf("look_left = %v, want 1 (clamped)", got)
	}
	if got := im.Actions.Strength("zoom_in"); got != 0.5 {
		t.Fatalf("zoom_in = %v, want 0.5", got)
	}
	if !im.Actions.IsActionActive("attack") {
		t.Fatalf("attack should be active")
	}

	// A still mouse ends the motion action
	d.motionX, d.wheelY = 0, 0
	e.Update()
	if !im.Actions.DidActionJustEnd("look_left") {
		t.Fatalf("look_left should end when the mouse stops")
	}
}

func TestFanInTwoKeys(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.BindKey(ebiten.KeyA, "fire").BindKey(ebiten.KeyB, "fire")

	d.keys[ebiten.KeyA] = true
	d.keys[ebiten.KeyB] = true
	e.Update()

	if got := im.Actions.Strength("fire"); got != 1 {
		t.Fatalf("fire = %v, want 1 (not summed)", got)
	}
}

func TestFanInFollowsBindOrder(t *testing.T) {
	e, d := newTestECS(t, cfg.DefaultInput())
	im := GetInputMap(e)
	im.Bindings.
		BindMouseAxis(components.MouseAxis{Axis: components.MouseWheelY, Direction: components.AxisPositive}, "fire").
		BindMouseAxis(components.MouseAxis{Axis: components.MouseMotionX, Direction: components.AxisPositive}, "fire")

	d.wheelY = 0.7
	d.motionX = 3 // 0.3 at the default sensitivity
	e.Update()

	if got := im.Actions.Strength("fire"); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("fire = %v, want 0.3 from the later binding", got)
	}
}
