package config

import (
	"log"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood by FromViper. They double as flag names and, upper-cased
// with an ACTIONMAP_ prefix, as environment variables.
const (
	KeyMaxPlayers       = "max-players"
	KeyAxisDeadzone     = "axis-deadzone"
	KeyMouseSensitivity = "mouse-sensitivity"
	KeyWheelSensitivity = "wheel-sensitivity"
	KeyAggregation      = "aggregation"
	KeyBindings         = "bindings"
	KeyLogEvents        = "log-events"
)

var envReplacer = strings.NewReplacer("-", "_")

// RegisterFlags adds the input flags to fs with the current defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultInput()
	fs.Int(KeyMaxPlayers, d.MaxPlayers, "number of gamepad player slots")
	fs.Float64(KeyAxisDeadzone, d.AxisDeadzone, "gamepad axis magnitude treated as released")
	fs.Float64(KeyMouseSensitivity, d.MouseSensitivity, "strength per pixel of mouse motion")
	fs.Float64(KeyWheelSensitivity, d.WheelSensitivity, "strength per wheel step")
	fs.String(KeyAggregation, d.Aggregation.String(), "fan-in policy: last, max or sum")
	fs.String(KeyBindings, "bindings.yaml", "binding file to load and watch")
	fs.Bool(KeyLogEvents, false, "log every action event")
}

// NewViper returns a viper instance bound to fs, the ACTIONMAP_ environment
// and an optional actionmap.{yaml,toml,json} in the working directory.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("actionmap")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ACTIONMAP")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return v, nil
}

// FromViper builds an InputConfig, falling back to DefaultInput for unset or
// invalid values.
func FromViper(v *viper.Viper) InputConfig {
	c := DefaultInput()
	if v.IsSet(KeyMaxPlayers) {
		if n := v.GetInt(KeyMaxPlayers); n > 0 {
			c.MaxPlayers = n
		}
	}
	if v.IsSet(KeyAxisDeadzone) {
		if dz := v.GetFloat64(KeyAxisDeadzone); dz >= 0 && dz < 1 {
			c.AxisDeadzone = dz
		}
	}
	if v.IsSet(KeyMouseSensitivity) {
		c.MouseSensitivity = v.GetFloat64(KeyMouseSensitivity)
	}
	if v.IsSet(KeyWheelSensitivity) {
		c.WheelSensitivity = v.GetFloat64(KeyWheelSensitivity)
	}
	if v.IsSet(KeyAggregation) {
		name := v.GetString(KeyAggregation)
		if p, ok := ParseAggregation(name); ok {
			c.Aggregation = p
		} else {
			log.Printf("Warning: unknown aggregation %q, using %s", name, c.Aggregation)
		}
	}
	return c
}
