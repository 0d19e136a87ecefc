package bindingdata

import "github.com/automoto/actionmap/components"

// Default action names used by the viewer and the default binding file
const (
	ActionMoveLeft  = "move_left"
	ActionMoveRight = "move_right"
	ActionMoveUp    = "move_up"
	ActionCrouch    = "crouch"
	ActionJump      = "jump"
	ActionAttack    = "attack"
	ActionThrow     = "throw"
	ActionPause     = "pause"
	ActionLookLeft  = "look_left"
	ActionLookRight = "look_right"
	ActionZoomIn    = "zoom_in"
	ActionZoomOut   = "zoom_out"
)

// DefaultFile is the binding set used when no binding file exists yet.
func DefaultFile() File {
	return File{
		Keyboard: []Entry{
			{Input: "ArrowLeft", Action: ActionMoveLeft},
			{Input: "A", Action: ActionMoveLeft},
			{Input: "ArrowRight", Action: ActionMoveRight},
			{Input: "D", Action: ActionMoveRight},
			{Input: "ArrowUp", Action: ActionMoveUp},
			{Input: "ArrowDown", Action: ActionCrouch},
			{Input: "S", Action: ActionCrouch},
			{Input: "X", Action: ActionJump},
			{Input: "W", Action: ActionJump},
			{Input: "Z", Action: ActionAttack},
			{Input: "Space", Action: ActionThrow},
			{Input: "Escape", Action: ActionPause},
			{Input: "P", Action: ActionPause},
		},
		MouseButtons: []Entry{
			{Input: "Left", Action: ActionAttack},
			{Input: "Right", Action: ActionThrow},
		},
		MouseAxes: []Entry{
			{Input: "MotionXNegative", Action: ActionLookLeft},
			{Input: "MotionXPositive", Action: ActionLookRight},
			{Input: "WheelYPositive", Action: ActionZoomIn},
			{Input: "WheelYNegative", Action: ActionZoomOut},
		},
		GamepadButtons: []Entry{
			{Input: "DpadLeft", Action: ActionMoveLeft},
			{Input: "DpadRight", Action: ActionMoveRight},
			{Input: "DpadUp", Action: ActionMoveUp},
			{Input: "DpadDown", Action: ActionCrouch},
			{Input: "A", Action: ActionJump},
			{Input: "X", Action: ActionAttack},
			{Input: "B", Action: ActionThrow},
			{Input: "Start", Action: ActionPause},
		},
		GamepadAxes: []Entry{
			{Input: "LeftStickXNegative", Action: ActionMoveLeft},
			{Input: "LeftStickXPositive", Action: ActionMoveRight},
			{Input: "LeftStickYNegative", Action: ActionMoveUp},
			{Input: "LeftStickYPositive", Action: ActionCrouch},
		},
		DeadZones: map[string]float64{
			ActionMoveLeft:  0.25,
			ActionMoveRight: 0.25,
			ActionMoveUp:    0.25,
			ActionCrouch:    0.25,
		},
	}
}

// Default resolves DefaultFile. Every name in it is known, so it cannot fail.
func Default() components.Bindings {
	b, err := DefaultFile().Bindings()
	if err != nil {
		panic("bindingdata: default bindings: " + err.Error())
	}
	return b
}
