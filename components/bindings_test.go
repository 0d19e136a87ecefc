package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func keyOrder(b *BindingsData) []ebiten.Key {
	var keys []ebiten.Key
	b.EachKey(func(k ebiten.Key, _ string) {
		keys = append(keys, k)
	})
	return keys
}

func TestBindKeyRebindKeepsOrder(t *testing.T) {
	var b BindingsData
	b.BindKey(ebiten.KeyA, "left").
		BindKey(ebiten.KeyD, "right").
		BindKey(ebiten.KeyA, "jump")

	if a, ok := b.KeyAction(ebiten.KeyA); !ok || a != "jump" {
		t.Fatalf("KeyAction(A) = %q, %v, want jump", a, ok)
	}
	got := keyOrder(&b)
	if len(got) != 2 || got[0] != ebiten.KeyA || got[1] != ebiten.KeyD {
		t.Fatalf("order = %v, want [A D]", got)
	}
}

func TestUnbind(t *testing.T) {
	var b BindingsData
	b.BindKey(ebiten.KeyA, "left").
		BindKey(ebiten.KeyS, "down").
		BindKey(ebiten.KeyD, "right").
		UnbindKey(ebiten.KeyS).
		UnbindKey(ebiten.KeyQ) // never bound

	if _, ok := b.KeyAction(ebiten.KeyS); ok {
		t.Fatalf("S should be unbound")
	}
	got := keyOrder(&b)
	if len(got) != 2 || got[0] != ebiten.KeyA || got[1] != ebiten.KeyD {
		t.Fatalf("order = %v, want [A D]", got)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestGamepadBindingsArePerPlayer(t *testing.T) {
	b := BindingsData{DefaultPlayer: 1}
	b.BindGamepadButton(ebiten.StandardGamepadButtonRightBottom, "jump").
		BindGamepadButtonForPlayer(0, ebiten.StandardGamepadButtonRightBottom, "shoot")

	if a, ok := b.GamepadButtonAction(1, ebiten.StandardGamepadButtonRightBottom); !ok || a != "jump" {
		t.Fatalf("player 1 = %q, %v, want jump", a, ok)
	}
	if a, ok := b.GamepadButtonAction(0, ebiten.StandardGamepadButtonRightBottom); !ok || a != "shoot" {
		t.Fatalf("player 0 = %q, %v, want shoot", a, ok)
	}

	b.UnbindGamepadButton(ebiten.StandardGamepadButtonRightBottom)
	if _, ok := b.GamepadButtonAction(1, ebiten.StandardGamepadButtonRightBottom); ok {
		t.Fatalf("player 1 binding should be gone")
	}
	if _, ok := b.GamepadButtonAction(0, ebiten.StandardGamepadButtonRightBottom); !ok {
		t.Fatalf("player 0 binding should survive")
	}
}

func TestGamepadAxisDirectionsAreDistinct(t *testing.T) {
	var b BindingsData
	left := GamepadAxis{Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Direction: AxisNegative}
	right := GamepadAxis{Axis: ebiten.StandardGamepadAxisLeftStickHorizontal, Direction: AxisPositive}
	b.BindGamepadAxis(left, "left").BindGamepadAxis(right, "right")

	if a, _ := b.GamepadAxisAction(0, left); a != "left" {
		t.Fatalf("negative half = %q, want left", a)
	}
	if a, _ := b.GamepadAxisAction(0, right); a != "right" {
		t.Fatalf("positive half = %q, want right", a)
	}
}

func TestDeadZones(t *testing.T) {
	var b BindingsData
	if dz := b.DeadZone("steer"); dz != 0 {
		t.Fatalf("unset dead zone = %v, want 0", dz)
	}
	b.SetDeadZone("steer", 0.3)
	if dz := b.DeadZone("steer"); dz != 0.3 {
		t.Fatalf("dead zone = %v, want 0.3", dz)
	}
	b.ClearDeadZone("steer")
	if dz := b.DeadZone("steer"); dz != 0 {
		t.Fatalf("cleared dead zone = %v, want 0", dz)
	}
}

func TestSnapshotApply(t *testing.T) {
	var b BindingsData
	b.BindKey(ebiten.KeySpace, "jump").
		BindMouseButton(ebiten.MouseButtonLeft, "attack").
		BindMouseAxis(MouseAxis{Axis: MouseWheelY, Direction: AxisPositive}, "zoom_in").
		BindGamepadButtonForPlayer(2, ebiten.StandardGamepadButtonCenterRight, "pause").
		BindGamepadAxisForPlayer(1, GamepadAxis{Axis: ebiten.StandardGamepadAxisLeftStickVertical, Direction: AxisBoth}, "lean").
		SetDeadZone("lean", 0.2)

	snap := b.Snapshot()

	var c BindingsData
	c.BindKey(ebiten.KeyQ, "stale")
	c.Apply(snap)

	if _, ok := c.KeyAction(ebiten.KeyQ); ok {
		t.Fatalf("Apply should replace existing bindings")
	}
	if c.Len() != 5 {
		t.Fatalf("Len = %d, want 5", c.Len())
	}
	if a, _ := c.MouseAxisAction(MouseAxis{Axis: MouseWheelY, Direction: AxisPositive}); a != "zoom_in" {
		t.Fatalf("mouse axis = %q, want zoom_in", a)
	}
	if a, _ := c.GamepadButtonAction(2, ebiten.StandardGamepadButtonCenterRight); a != "pause" {
		t.Fatalf("gamepad button = %q, want pause", a)
	}
	if dz := c.DeadZone("lean"); dz != 0.2 {
		t.Fatalf("dead zone = %v, want 0.2", dz)
	}

	c.Clear()
	if c.Len() != 0 || c.DeadZone("lean") != 0 {
		t.Fatalf("Clear left bindings behind")
	}
}
