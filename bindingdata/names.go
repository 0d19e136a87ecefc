package bindingdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/actionmap/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownName is returned for an input name no table knows.
var ErrUnknownName = errors.New("unknown input name")

// Lookups are case-insensitive; the reverse tables hold the canonical spelling.
var (
	keyByName map[string]ebiten.Key
	keyToName map[ebiten.Key]string
)

var mouseButtonNames = map[string]ebiten.MouseButton{
	"Left":    ebiten.MouseButtonLeft,
	"Right":   ebiten.MouseButtonRight,
	"Middle":  ebiten.MouseButtonMiddle,
	"Back":    ebiten.MouseButton3,
	"Forward": ebiten.MouseButton4,
}

var padNames = map[string]ebiten.StandardGamepadButton{
	"A":         ebiten.StandardGamepadButtonRightBottom,
	"B":         ebiten.StandardGamepadButtonRightRight,
	"X":         ebiten.StandardGamepadButtonRightLeft,
	"Y":         ebiten.StandardGamepadButtonRightTop,
	"L1":        ebiten.StandardGamepadButtonFrontTopLeft,
	"R1":        ebiten.StandardGamepadButtonFrontTopRight,
	"L2":        ebiten.StandardGamepadButtonFrontBottomLeft,
	"R2":        ebiten.StandardGamepadButtonFrontBottomRight,
	"Select":    ebiten.StandardGamepadButtonCenterLeft,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"Home":      ebiten.StandardGamepadButtonCenterCenter,
	"L3":        ebiten.StandardGamepadButtonLeftStick,
	"R3":        ebiten.StandardGamepadButtonRightStick,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
}

var padAxisNames = map[string]ebiten.StandardGamepadAxis{
	"LeftStickX":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"LeftStickY":  ebiten.StandardGamepadAxisLeftStickVertical,
	"RightStickX": ebiten.StandardGamepadAxisRightStickHorizontal,
	"RightStickY": ebiten.StandardGamepadAxisRightStickVertical,
}

var mouseAxisNames = map[string]components.MouseAxisKind{
	"MotionX": components.MouseMotionX,
	"MotionY": components.MouseMotionY,
	"WheelX":  components.MouseWheelX,
	"WheelY":  components.MouseWheelY,
}

var directionSuffixes = []struct {
	suffix string
	dir    components.AxisDirection
}{
	{"Positive", components.AxisPositive},
	{"Negative", components.AxisNegative},
}

func init() {
	keyByName = make(map[string]ebiten.Key)
	keyToName = make(map[ebiten.Key]string)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := k.String()
		if name == "" {
			continue
		}
		keyByName[strings.ToLower(name)] = k
		keyToName[k] = name
	}
}

func lookup[V any](table map[string]V, name string) (V, bool) {
	if v, ok := table[name]; ok {
		return v, true
	}
	for n, v := range table {
		if strings.EqualFold(n, name) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func reverse[V comparable](table map[string]V, v V) (string, bool) {
	for n, tv := range table {
		if tv == v {
			return n, true
		}
	}
	return "", false
}

// ParseKey converts a key name such as "Space" or "ArrowUp" to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, error) {
	if k, ok := keyByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("key %q: %w", name, ErrUnknownName)
}

func KeyName(k ebiten.Key) (string, error) {
	if n, ok := keyToName[k]; ok {
		return n, nil
	}
	return "", fmt.Errorf("key %d: %w", k, ErrUnknownName)
}

func ParseMouseButton(name string) (ebiten.MouseButton, error) {
	if b, ok := lookup(mouseButtonNames, name); ok {
		return b, nil
	}
	return 0, fmt.Errorf("mouse button %q: %w", name, ErrUnknownName)
}

func MouseButtonName(b ebiten.MouseButton) (string, error) {
	if n, ok := reverse(mouseButtonNames, b); ok {
		return n, nil
	}
	return "", fmt.Errorf("mouse button %d: %w", b, ErrUnknownName)
}

func ParseGamepadButton(name string) (ebiten.StandardGamepadButton, error) {
	if b, ok := lookup(padNames, name); ok {
		return b, nil
	}
	return 0, fmt.Errorf("gamepad button %q: %w", name, ErrUnknownName)
}

func GamepadButtonName(b ebiten.StandardGamepadButton) (string, error) {
	if n, ok := reverse(padNames, b); ok {
		return n, nil
	}
	return "", fmt.Errorf("gamepad button %d: %w", b, ErrUnknownName)
}

// splitDirection strips a Positive/Negative suffix.
func splitDirection(name string) (string, components.AxisDirection) {
	for _, d := range directionSuffixes {
		if len(name) > len(d.suffix) && strings.EqualFold(name[len(name)-len(d.suffix):], d.suffix) {
			return name[:len(name)-len(d.suffix)], d.dir
		}
	}
	return name, components.AxisBoth
}

func joinDirection(base string, dir components.AxisDirection) string {
	for _, d := range directionSuffixes {
		if d.dir == dir {
			return base + d.suffix
		}
	}
	return base
}

// ParseGamepadAxis accepts "LeftStickX", "LeftStickXPositive",
// "LeftStickXNegative" and the same for the other stick axes.
func ParseGamepadAxis(name string) (components.GamepadAxis, error) {
	base, dir := splitDirection(name)
	if a, ok := lookup(padAxisNames, base); ok {
		return components.GamepadAxis{Axis: a, Direction: dir}, nil
	}
	return components.GamepadAxis{}, fmt.Errorf("gamepad axis %q: %w", name, ErrUnknownName)
}

func GamepadAxisName(a components.GamepadAxis) (string, error) {
	if n, ok := reverse(padAxisNames, a.Axis); ok {
		return joinDirection(n, a.Direction), nil
	}
	return "", fmt.Errorf("gamepad axis %d: %w", a.Axis, ErrUnknownName)
}

// ParseMouseAxis accepts "MotionX", "WheelY", "MotionXNegative" and so on.
func ParseMouseAxis(name string) (components.MouseAxis, error) {
	base, dir := splitDirection(name)
	if a, ok := lookup(mouseAxisNames, base); ok {
		return components.MouseAxis{Axis: a, Direction: dir}, nil
	}
	return components.MouseAxis{}, fmt.Errorf("mouse axis %q: %w", name, ErrUnknownName)
}

func MouseAxisName(a components.MouseAxis) (string, error) {
	if n, ok := reverse(mouseAxisNames, a.Axis); ok {
		return joinDirection(n, a.Direction), nil
	}
	return "", fmt.Errorf("mouse axis %d: %w", a.Axis, ErrUnknownName)
}
