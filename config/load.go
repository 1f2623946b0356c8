package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrReferenceRate is returned when the reference rate does not round to a
// positive whole number of ticks per second.
var ErrReferenceRate = errors.New("referenceRate must be at least 1 tick per second")

// EnvPrefix prefixes environment overrides, e.g. LANDER_ROCKET_GRAVITY.
const EnvPrefix = "LANDER"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"site":      "site",
	"skip-menu": "debug.skipMenu",
	"hitboxes":  "debug.showHitboxes",
	"log-level": "log.level",
	"gravity":   "rocket.gravity",
	"max-vx":    "landing.maxVX",
}

// Flags returns the flag set understood by Load. The "config" flag names
// the optional config file.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a JSON, YAML or TOML config file")
	fs.String("site", C.Site, "Landing site to fly when the menu is skipped")
	fs.Bool("skip-menu", Debug.SkipMenu, "Skip the site menu")
	fs.Bool("hitboxes", Debug.ShowHitboxes, "Start with the collision overlay on")
	fs.String("log-level", Log.Level, "Log level (debug, info, warn, error)")
	fs.Float64("gravity", Rocket.Gravity, "Gravity magnitude per tick")
	fs.Float64("max-vx", Landing.MaxVX, "Horizontal touchdown speed limit")
	return fs
}

// Load overlays defaults, the optional config file, LANDER_* environment
// variables and changed flags (in increasing priority) onto the package
// configuration. flags may be nil.
func Load(path string, flags *pflag.FlagSet) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	apply(v)

	rate := math.Round(C.ReferenceRate)
	if !(rate >= 1) {
		return fmt.Errorf("%w, got %v", ErrReferenceRate, C.ReferenceRate)
	}
	C.ReferenceRate = rate
	return nil
}

// TicksPerSecond returns the reference rate as the game's tick rate.
func TicksPerSecond() int {
	return int(math.Round(C.ReferenceRate))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("referenceRate", C.ReferenceRate)
	v.SetDefault("site", C.Site)

	v.SetDefault("rocket.mass", Rocket.Mass)
	v.SetDefault("rocket.gravity", Rocket.Gravity)
	v.SetDefault("rocket.inertia", Rocket.Inertia)
	v.SetDefault("rocket.bodyWidth", Rocket.BodyWidth)
	v.SetDefault("rocket.bodyHeight", Rocket.BodyHeight)

	v.SetDefault("landing.maxTilt", Landing.MaxTilt)
	v.SetDefault("landing.maxVX", Landing.MaxVX)
	v.SetDefault("landing.maxVY", Landing.MaxVY)

	v.SetDefault("controls.thrustMargin", Controls.ThrustMargin)
	v.SetDefault("controls.gimbal", Controls.Gimbal)

	v.SetDefault("ui.indicatorScale", UI.IndicatorScale)

	v.SetDefault("log.level", Log.Level)

	v.SetDefault("debug.skipMenu", Debug.SkipMenu)
	v.SetDefault("debug.showHitboxes", Debug.ShowHitboxes)
}

func apply(v *viper.Viper) {
	C.Width = v.GetInt("width")
	C.Height = v.GetInt("height")
	C.ReferenceRate = v.GetFloat64("referenceRate")
	C.Site = v.GetString("site")

	Rocket.Mass = v.GetFloat64("rocket.mass")
	Rocket.Gravity = v.GetFloat64("rocket.gravity")
	Rocket.Inertia = v.GetFloat64("rocket.inertia")
	Rocket.BodyWidth = v.GetFloat64("rocket.bodyWidth")
	Rocket.BodyHeight = v.GetFloat64("rocket.bodyHeight")

	Landing.MaxTilt = v.GetFloat64("landing.maxTilt")
	Landing.MaxVX = v.GetFloat64("landing.maxVX")
	Landing.MaxVY = v.GetFloat64("landing.maxVY")

	Controls.ThrustMargin = v.GetFloat64("controls.thrustMargin")
	Controls.Gimbal = v.GetFloat64("controls.gimbal")

	UI.IndicatorScale = v.GetFloat64("ui.indicatorScale")

	Log.Level = v.GetString("log.level")

	Debug.SkipMenu = v.GetBool("debug.skipMenu")
	Debug.ShowHitboxes = v.GetBool("debug.showHitboxes")
}
