package systems

import (
	"log"
	"math"

	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSystems are the capture-stage systems, bound to the devices they read.
type InputSystems struct {
	devices Devices
}

func NewInputSystems(devices Devices) *InputSystems {
	return &InputSystems{devices: devices}
}

// AddInputSystems registers the whole pipeline on e in the required order:
// reset, then capture (gamepad connections before the samplers), then events.
// It must be added before any system that reads actions.
func AddInputSystems(e *ecs.ECS, devices Devices) *InputSystems {
	s := NewInputSystems(devices)

	// Reset
	e.AddSystem(UpdateActionReset)

	// Input capture
	e.AddSystem(s.UpdateGamepadConnections) // Must run before UpdateGamepadButtons
	e.AddSystem(s.UpdateGamepadButtons)
	e.AddSystem(s.UpdateKeyboard)
	e.AddSystem(s.UpdateMouseButtons)
	e.AddSystem(s.UpdateMouseAxes)

	// Event
	e.AddSystem(UpdateActionEvents)
	return s
}

// GetInputMap returns the singleton input map, creating it from cfg.Input if
// needed.
func GetInputMap(e *ecs.ECS) *components.InputMapData {
	entry, ok := components.InputMap.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.InputMap))
		components.InputMap.SetValue(entry, components.NewInputMapData(cfg.Input.MaxPlayers, cfg.Input.DefaultPlayer))
	}
	return components.InputMap.Get(entry)
}

// UpdateActionReset swaps the strength snapshots.
// Must run BEFORE every sampler in the frame.
func UpdateActionReset(e *ecs.ECS) {
	GetInputMap(e).Actions.Reset()
}

// UpdateGamepadConnections assigns and releases player handles, latches axis
// events, then re-applies every latched axis for this frame.
func (s *InputSystems) UpdateGamepadConnections(e *ecs.ECS) {
	im := GetInputMap(e)
	for _, ev := range s.devices.GamepadEvents() {
		switch ev.Kind {
		case GamepadConnected:
			if player, ok := im.Players.Connect(ev.ID); ok {
				log.Printf("InputMap: Gamepad Connected %d to player %d", ev.ID, player)
			} else {
				log.Printf("InputMap: No free player slot for gamepad %d (max %d)", ev.ID, im.Players.MaxPlayers)
			}
		case GamepadDisconnected:
			if player, ok := im.Players.Disconnect(ev.ID); ok {
				im.Axes.ForgetPlayer(player)
				log.Printf("InputMap: Gamepad Disconnected %d for player %d", ev.ID, player)
			}
		case GamepadAxisChanged:
			player, ok := im.Players.PlayerForGamepad(ev.ID)
			if !ok {
				continue
			}
			im.Axes.Latch(player, ev.Axis, ev.Value, cfg.Input.AxisDeadzone)
		}
	}

	// Converting latched axis events into continuous input
	im.Bindings.EachGamepadAxis(func(pa components.PlayerAxis, action string) {
		v, ok := im.Axes.Value(pa.Player, pa.Axis.Axis)
		if !ok || !pa.Axis.Direction.Matches(v) {
			return
		}
		contribute(im, action, math.Abs(v))
	})
}

func (s *InputSystems) UpdateGamepadButtons(e *ecs.ECS) {
	im := GetInputMap(e)
	im.Bindings.EachGamepadButton(func(pb components.PlayerButton, action string) {
		id, ok := im.Players.GamepadForPlayer(pb.Player)
		if !ok {
			return
		}
		if s.devices.IsGamepadButtonPressed(id, pb.Button) {
			contribute(im, action, 1.0)
		}
	})
}

func (s *InputSystems) UpdateKeyboard(e *ecs.ECS) {
	im := GetInputMap(e)
	im.Bindings.EachKey(func(key ebiten.Key, action string) {
		if s.devices.IsKeyPressed(key) {
			contribute(im, action, 1.0)
		}
	})
}

func (s *InputSystems) UpdateMouseButtons(e *ecs.ECS) {
	im := GetInputMap(e)
	im.Bindings.EachMouseButton(func(button ebiten.MouseButton, action string) {
		if s.devices.IsMouseButtonPressed(button) {
			contribute(im, action, 1.0)
		}
	})
}

// UpdateMouseAxes reads relative motion and wheel once per frame. Unlike
// gamepad axes, a still mouse contributes nothing.
func (s *InputSystems) UpdateMouseAxes(e *ecs.ECS) {
	im := GetInputMap(e)
	mx, my := s.devices.MouseMotion()
	wx, wy := s.devices.MouseWheel()
	im.Bindings.EachMouseAxis(func(axis components.MouseAxis, action string) {
		var v, scale float64
		switch axis.Axis {
		case components.MouseMotionX:
			v, scale = mx, cfg.Input.MouseSensitivity
		case components.MouseMotionY:
			v, scale = my, cfg.Input.MouseSensitivity
		case components.MouseWheelX:
			v, scale = wx, cfg.Input.WheelSensitivity
		case components.MouseWheelY:
			v, scale = wy, cfg.Input.WheelSensitivity
		}
		if !axis.Direction.Matches(v) {
			return
		}
		contribute(im, action, math.Abs(v)*scale)
	})
}

func contribute(im *components.InputMapData, action string, strength float64) {
	im.Actions.Contribute(action, strength, cfg.Input.Aggregation, im.Bindings.DeadZone(action))
}
