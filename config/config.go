package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

const (
	// Default is the only render layer the viewer uses
	Default ecs.LayerID = iota
)

type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var UI UIConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogEvents bool // Print every action event to the log
}

// UIConfig contains the action viewer layout
type UIConfig struct {
	// Layout
	RowHeight   float64
	LeftMargin  float64
	TopMargin   float64
	BarWidth    float64
	BarHeight   float64
	BarOffsetX  float64
	FontSize    float64
	FadeSeconds float32 // How long a bar takes to drain after its action ends

	// Colors
	TextColor     color.RGBA
	BarBgColor    color.RGBA
	BeginColor    color.RGBA
	ProgressColor color.RGBA
	EndColor      color.RGBA
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	UI = UIConfig{
		RowHeight:   20,
		LeftMargin:  16,
		TopMargin:   40,
		BarWidth:    200,
		BarHeight:   10,
		BarOffsetX:  220,
		FontSize:    14,
		FadeSeconds: 0.25,

		TextColor:     White,
		BarBgColor:    DarkBlue,
		BeginColor:    Yellow,
		ProgressColor: BrightGreen,
		EndColor:      LightRed,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogEvents: false,
	}
}
