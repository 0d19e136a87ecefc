package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ActionRow is what the viewer shows for one action
type ActionRow struct {
	Phase    ActionPhase
	Strength float64
	Frames   int          // Frames the action has been active
	Fade     *gween.Tween // Drains the bar after the action ends
	Shown    float64      // Bar length actually drawn
}

// ViewerData stores the rows of the action viewer, keyed by action name
type ViewerData struct {
	Rows map[string]*ActionRow
}

var Viewer = donburi.NewComponentType[ViewerData]()
