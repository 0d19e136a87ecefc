package components

import "github.com/hajimehoshi/ebiten/v2"

// GamepadPlayersData assigns connected gamepads to a bounded pool of player
// handles. Both directions of the mapping only change together.
type GamepadPlayersData struct {
	MaxPlayers int

	toPlayer  map[ebiten.GamepadID]int
	toGamepad map[int]ebiten.GamepadID
}

// Connect gives id the lowest free player handle. ok is false when every
// handle is taken. Connecting an already assigned gamepad returns its handle.
func (p *GamepadPlayersData) Connect(id ebiten.GamepadID) (player int, ok bool) {
	if player, ok := p.toPlayer[id]; ok {
		return player, true
	}
	for h := 0; h < p.MaxPlayers; h++ {
		if _, used := p.toGamepad[h]; used {
			continue
		}
		if p.toPlayer == nil {
			p.toPlayer = make(map[ebiten.GamepadID]int)
			p.toGamepad = make(map[int]ebiten.GamepadID)
		}
		p.toPlayer[id] = h
		p.toGamepad[h] = id
		return h, true
	}
	return -1, false
}

// Disconnect releases the handle held by id, if any.
func (p *GamepadPlayersData) Disconnect(id ebiten.GamepadID) (player int, ok bool) {
	player, ok = p.toPlayer[id]
	if !ok {
		return -1, false
	}
	delete(p.toPlayer, id)
	delete(p.toGamepad, player)
	return player, true
}

func (p *GamepadPlayersData) PlayerForGamepad(id ebiten.GamepadID) (int, bool) {
	player, ok := p.toPlayer[id]
	return player, ok
}

func (p *GamepadPlayersData) GamepadForPlayer(player int) (ebiten.GamepadID, bool) {
	id, ok := p.toGamepad[player]
	return id, ok
}

func (p *GamepadPlayersData) InUse(player int) bool {
	_, ok := p.toGamepad[player]
	return ok
}

// Players returns the handles in use, lowest first.
func (p *GamepadPlayersData) Players() []int {
	out := make([]int, 0, len(p.toGamepad))
	for h := 0; h < p.MaxPlayers; h++ {
		if _, ok := p.toGamepad[h]; ok {
			out = append(out, h)
		}
	}
	return out
}
