// Package keymap parses compiled-in UI metadata — spinner frames and the
// global-hotkey label table — from an embedded YAML document, mirroring
// the teacher's config.Config YAML-schema style without introducing a
// runtime, on-disk configuration file (the Non-goal names user-facing
// config, not a compiled asset).
package keymap

import (
	_ "embed"

	"go.yaml.in/yaml/v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Hotkey is one entry of the global-hotkey label table. No other package
// in this module reads the table: each mode writes its own help text in
// Header, and the key-to-mode dispatch table lives in internal/mode.
type Hotkey struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

type schema struct {
	Spinner struct {
		Frames []string `yaml:"frames"`
	} `yaml:"spinner"`
	Hotkeys []Hotkey `yaml:"hotkeys"`
}

// SpinnerFrames is the default spinner animation, in order. The drawer
// animates from its own frame list and does not read this one.
var SpinnerFrames []rune

// Hotkeys is the default global-hotkey label table.
var Hotkeys []Hotkey

func init() {
	var s schema
	if err := yaml.Unmarshal(defaultsYAML, &s); err != nil {
		panic("keymap: invalid embedded defaults.yaml: " + err.Error())
	}
	for _, f := range s.Spinner.Frames {
		for _, r := range f {
			SpinnerFrames = append(SpinnerFrames, r)
			break
		}
	}
	Hotkeys = s.Hotkeys
}
