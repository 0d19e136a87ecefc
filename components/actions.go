package components

import cfg "github.com/automoto/actionmap/config"

// ActionStateData holds this frame's and last frame's raw action strengths.
// Phases are derived from which snapshot an action is present in.
type ActionStateData struct {
	Current  map[string]float64 // Rebuilt from scratch every frame
	Previous map[string]float64 // Current as it was at the end of last frame
}

// Reset moves Current into Previous and empties Current.
// Must run once per frame before any sampler writes.
func (a *ActionStateData) Reset() {
	a.Previous = a.Current
	a.Current = make(map[string]float64, len(a.Previous))
}

// SetRawActionStrength writes strength for action. A later write in the same
// frame overwrites an earlier one.
func (a *ActionStateData) SetRawActionStrength(action string, strength float64) {
	if a.Current == nil {
		a.Current = make(map[string]float64)
	}
	a.Current[action] = strength
}

// Contribute is the sampler write path. Zero contributions and contributions
// weaker than deadZone are dropped. The rest are clamped to [0, 1] and combined
// with any earlier write this frame according to policy. It reports whether
// anything was written.
func (a *ActionStateData) Contribute(action string, strength float64, policy cfg.AggregationPolicy, deadZone float64) bool {
	if strength <= 0 || strength < deadZone {
		return false
	}
	strength = clamp01(strength)
	if prev, ok := a.Current[action]; ok {
		switch policy {
		case cfg.AggregateMax:
			if prev > strength {
				strength = prev
			}
		case cfg.AggregateSum:
			strength = clamp01(prev + strength)
		}
	}
	a.SetRawActionStrength(action, strength)
	return true
}

// ActionStrength returns the current strength of action.
func (a *ActionStateData) ActionStrength(action string) (float64, bool) {
	s, ok := a.Current[action]
	return s, ok
}

// Strength is ActionStrength with 0 for inactive actions.
func (a *ActionStateData) Strength(action string) float64 {
	return a.Current[action]
}

func (a *ActionStateData) IsActionActive(action string) bool {
	_, now := a.Current[action]
	return now
}

func (a *ActionStateData) DidActionJustBegin(action string) bool {
	_, now := a.Current[action]
	_, before := a.Previous[action]
	return now && !before
}

func (a *ActionStateData) IsActionInProgress(action string) bool {
	_, now := a.Current[action]
	_, before := a.Previous[action]
	return now && before
}

func (a *ActionStateData) DidActionJustEnd(action string) bool {
	_, now := a.Current[action]
	_, before := a.Previous[action]
	return !now && before
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
