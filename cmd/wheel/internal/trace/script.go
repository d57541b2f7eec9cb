// Package trace replays scripted gestures against a headless wheel on a fake
// clock and reports the scroll state frame by frame.
package trace

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/wheel/pkg/wheel"
)

// Script is a YAML gesture script:
//
//	name: fling to the end
//	steps:
//	  - drag: -90
//	  - fling: 2400
//	  - settle: true
//	  - index: 3
//	    animated: true
//	  - wait: 200ms
//	  - pointer: down
//	    y: 100
type Script struct {
	Name    string   `yaml:"name"`
	Entries []string `yaml:"entries,omitempty"`
	Steps   []Step   `yaml:"steps"`
}

// Step is one action. Exactly one of Drag, Fling, Index, Pointer, Wait or
// Settle is set.
type Step struct {
	Drag     *int     `yaml:"drag,omitempty"`
	Fling    *float64 `yaml:"fling,omitempty"`
	Index    *int     `yaml:"index,omitempty"`
	Animated bool     `yaml:"animated,omitempty"`
	Pointer  string   `yaml:"pointer,omitempty"`
	Y        float64  `yaml:"y,omitempty"`
	Wait     Duration `yaml:"wait,omitempty"`
	Settle   bool     `yaml:"settle,omitempty"`
}

// Duration is a time.Duration written as "250ms" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

var pointerPhases = map[string]wheel.PointerPhase{
	"down":   wheel.PointerPhaseDown,
	"move":   wheel.PointerPhaseMove,
	"up":     wheel.PointerPhaseUp,
	"cancel": wheel.PointerPhaseCancel,
}

// String describes the step for reports.
func (s Step) String() string {
	switch {
	case s.Drag != nil:
		return fmt.Sprintf("drag %d", *s.Drag)
	case s.Fling != nil:
		return fmt.Sprintf("fling %g", *s.Fling)
	case s.Index != nil:
		if s.Animated {
			return fmt.Sprintf("index %d (animated)", *s.Index)
		}
		return fmt.Sprintf("index %d", *s.Index)
	case s.Pointer != "":
		return fmt.Sprintf("%s y=%g", s.Pointer, s.Y)
	case s.Wait > 0:
		return "wait " + time.Duration(s.Wait).String()
	case s.Settle:
		return "settle"
	default:
		return "noop"
	}
}

func (s Step) validate() error {
	n := 0
	for _, set := range []bool{s.Drag != nil, s.Fling != nil, s.Index != nil, s.Pointer != "", s.Wait > 0, s.Settle} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("want exactly one action, got %d", n)
	}
	if s.Pointer != "" {
		if _, ok := pointerPhases[s.Pointer]; !ok {
			return fmt.Errorf("unknown pointer phase %q", s.Pointer)
		}
	}
	return nil
}

// Parse decodes and checks a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}
