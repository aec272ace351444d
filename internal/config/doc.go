// Package config loads, normalizes, and validates mediaconv configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. The Config type centralizes every knob the
// daemon and CLI need: where the runtime keeps its lock and socket, which
// native picker drives file dialogs, how the settings window is sized, and how
// logs are shaped.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
