package config

import "fmt"

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "":
		return "", nil
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the difficulty progression for a preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Difficulty.BaseMultiplier = 0.4
		cfg.Difficulty.Step = 0.15
	case PresetHard:
		cfg.Difficulty.BaseMultiplier = 0.7
		cfg.Difficulty.Step = 0.25
	case PresetFixed:
		cfg.Difficulty.Step = 0
	}
}
