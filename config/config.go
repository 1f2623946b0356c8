package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string

	// ReferenceRate is both the ebiten TPS and the rate one simulation tick
	// stands for.
	ReferenceRate float64

	// Site is the stem of the .tmx landing site loaded when the menu is skipped.
	Site string
}

// RocketConfig contains the rigid body parameters
type RocketConfig struct {
	Mass       float64 `mapstructure:"mass"`
	Gravity    float64 `mapstructure:"gravity"` // positive magnitude
	Inertia    float64 `mapstructure:"inertia"`
	BodyWidth  float64 `mapstructure:"bodyWidth"`
	BodyHeight float64 `mapstructure:"bodyHeight"`
}

// LandingConfig contains the touchdown limits. All are strict upper bounds.
type LandingConfig struct {
	MaxTilt float64 `mapstructure:"maxTilt"` // degrees
	MaxVX   float64 `mapstructure:"maxVX"`
	MaxVY   float64 `mapstructure:"maxVY"`
}

// ControlsConfig contains the key-to-command mapping values
type ControlsConfig struct {
	ThrustMargin float64 `mapstructure:"thrustMargin"` // added to hover thrust while Up is held
	Gimbal       float64 `mapstructure:"gimbal"`       // degrees while Left/Right is held
}

// UIConfig contains rendering configuration values
type UIConfig struct {
	IndicatorScale float64 // thrust line length per unit of thrust

	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	PadColor        color.RGBA
	RocketColor     color.RGBA
	ThrustColor     color.RGBA
	HUDTextColor    color.RGBA
	WinColor        color.RGBA
	LoseColor       color.RGBA
	OverlayColor    color.RGBA

	PadThickness float64

	HUDMargin       float64
	HUDLineHeight   float64
	BannerFadeSecs  float32 // banner fade-in duration
	BeaconPulseSecs float32 // pad beacon half period
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to the flight
	ShowHitboxes bool // Start with the resolv overlay enabled
}

var C *Config
var Rocket RocketConfig
var Landing LandingConfig
var Controls ControlsConfig
var UI UIConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Brown        = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:         800,
		Height:        600,
		Title:         "Rocket Landing",
		ReferenceRate: 30,
		Site:          "classic",
	}

	Rocket = RocketConfig{
		Mass:       1,
		Gravity:    0.5,
		Inertia:    100,
		BodyWidth:  20,
		BodyHeight: 60,
	}

	Landing = LandingConfig{
		MaxTilt: 5,
		MaxVX:   2,
		MaxVY:   5,
	}

	Controls = ControlsConfig{
		ThrustMargin: 0.1,
		Gimbal:       15,
	}

	UI = UIConfig{
		IndicatorScale:  50,
		BackgroundColor: White,
		FloorColor:      Brown,
		PadColor:        Green,
		RocketColor:     Black,
		ThrustColor:     Red,
		HUDTextColor:    Black,
		WinColor:        LightGreen,
		LoseColor:       LightRed,
		OverlayColor:    BlackOverlay,
		PadThickness:    10,
		HUDMargin:       10,
		HUDLineHeight:   16,
		BannerFadeSecs:  0.6,
		BeaconPulseSecs: 0.8,
	}

	Log = LogConfig{
		Level: "info",
	}

	Debug = DebugConfig{}
}
