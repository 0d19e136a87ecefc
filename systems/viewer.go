package systems

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/automoto/actionmap/components"
	cfg "github.com/automoto/actionmap/config"
	"github.com/automoto/actionmap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitViewer creates the viewer rows and subscribes them to the action
// events of e's world. Call it once per world.
func InitViewer(e *ecs.ECS) {
	GetViewer(e.World)

	components.ActionBegin.Subscribe(e.World, onActionBegin)
	components.ActionProgress.Subscribe(e.World, onActionProgress)
	components.ActionActive.Subscribe(e.World, onActionActive)
	components.ActionEnd.Subscribe(e.World, onActionEnd)
}

func GetViewer(w donburi.World) *components.ViewerData {
	entry, ok := components.Viewer.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Viewer))
		components.Viewer.SetValue(entry, components.ViewerData{
			Rows: make(map[string]*components.ActionRow),
		})
	}
	return components.Viewer.Get(entry)
}

func viewerRow(w donburi.World, action string) *components.ActionRow {
	v := GetViewer(w)
	row, ok := v.Rows[action]
	if !ok {
		row = &components.ActionRow{}
		v.Rows[action] = row
	}
	return row
}

func onActionBegin(w donburi.World, ev components.ActionBeginEvent) {
	row := viewerRow(w, ev.Action)
	row.Phase = components.PhaseBegin
	row.Frames = 1
	row.Fade = nil
}

func onActionProgress(w donburi.World, ev components.ActionProgressEvent) {
	row := viewerRow(w, ev.Action)
	row.Phase = components.PhaseProgress
	row.Frames++
}

func onActionActive(w donburi.World, ev components.ActionActiveEvent) {
	row := viewerRow(w, ev.Action)
	row.Strength = ev.Strength
	row.Shown = ev.Strength
}

func onActionEnd(w donburi.World, ev components.ActionEndEvent) {
	row := viewerRow(w, ev.Action)
	row.Phase = components.PhaseEnd
	row.Strength = 0
	row.Fade = gween.New(float32(row.Shown), 0, cfg.UI.FadeSeconds, ease.OutQuad)
}

// UpdateViewer drains the bars of ended actions. Must run after
// UpdateActionEvents.
func UpdateViewer(e *ecs.ECS) {
	dt := float32(1.0 / ebiten.DefaultTPS)
	for _, row := range GetViewer(e.World).Rows {
		if row.Fade == nil {
			continue
		}
		shown, done := row.Fade.Update(dt)
		row.Shown = float64(shown)
		if done {
			row.Fade = nil
			row.Shown = 0
		}
	}
}

// DrawViewer renders one row per action seen so far: name, strength bar and
// the number of frames it has been held.
func DrawViewer(e *ecs.ECS, screen *ebiten.Image) {
	ui := cfg.UI
	im := GetInputMap(e)
	viewer := GetViewer(e.World)

	text.Draw(screen, "actions", fonts.Title.Get(), int(ui.LeftMargin), int(ui.TopMargin-ui.RowHeight), ui.TextColor)

	face := fonts.Regular.Get()
	names := make([]string, 0, len(viewer.Rows))
	for name := range viewer.Rows {
		names = append(names, name)
	}
	slices.Sort(names)

	for i, name := range names {
		row := viewer.Rows[name]
		y := ui.TopMargin + float64(i)*ui.RowHeight

		text.Draw(screen, name, face, int(ui.LeftMargin), int(y+ui.BarHeight), ui.TextColor)

		barX := float32(ui.LeftMargin + ui.BarOffsetX)
		vector.DrawFilledRect(screen, barX, float32(y), float32(ui.BarWidth), float32(ui.BarHeight), ui.BarBgColor, false)
		if row.Shown > 0 {
			vector.DrawFilledRect(screen, barX, float32(y), float32(ui.BarWidth*row.Shown), float32(ui.BarHeight), phaseColor(row.Phase), false)
		}

		if row.Phase != components.PhaseEnd {
			label := fmt.Sprintf("%.2f  %df", row.Strength, row.Frames)
			text.Draw(screen, label, face, int(barX)+int(ui.BarWidth)+8, int(y+ui.BarHeight), ui.TextColor)
		}
	}

	// Gamepad slots along the bottom edge
	text.Draw(screen, playersLine(&im.Players), face, int(ui.LeftMargin), screen.Bounds().Dy()-int(ui.LeftMargin), ui.TextColor)
}

func phaseColor(p components.ActionPhase) color.RGBA {
	switch p {
	case components.PhaseBegin:
		return cfg.UI.BeginColor
	case components.PhaseEnd:
		return cfg.UI.EndColor
	default:
		return cfg.UI.ProgressColor
	}
}

func playersLine(p *components.GamepadPlayersData) string {
	var sb strings.Builder
	sb.WriteString("gamepads:")
	players := p.Players()
	if len(players) == 0 {
		sb.WriteString(" none")
	}
	for _, player := range players {
		id, _ := p.GamepadForPlayer(player)
		fmt.Fprintf(&sb, " P%d=%d", player, id)
	}
	return sb.String()
}
