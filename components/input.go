package components

import (
	"github.com/yohamta/donburi"
)

// InputMapData is the whole state of the action engine: bindings, the two
// strength snapshots, gamepad ownership and latched gamepad axes.
// One instance lives on a singleton entity.
type InputMapData struct {
	Bindings BindingsData
	Actions  ActionStateData
	Players  GamepadPlayersData
	Axes     GamepadAxisMemory

	// Events produced by the last Event stage, valid until the next one
	LastEvents []ActionEvent
}

// NewInputMapData returns an empty input map with maxPlayers gamepad slots.
func NewInputMapData(maxPlayers, defaultPlayer int) InputMapData {
	return InputMapData{
		Bindings: BindingsData{DefaultPlayer: defaultPlayer},
		Actions: ActionStateData{
			Current:  make(map[string]float64),
			Previous: make(map[string]float64),
		},
		Players: GamepadPlayersData{MaxPlayers: maxPlayers},
	}
}

var InputMap = donburi.NewComponentType[InputMapData]()
