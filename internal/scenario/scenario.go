// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scenario loads YAML coroutine scripts and turns them into coro
// steps for the corodemo command.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is a named set of coroutines launched together at startup.
type Scenario struct {
	Name       string            `yaml:"name"`
	Tick       time.Duration     `yaml:"tick"`
	Counters   map[string]int    `yaml:"counters,omitempty"`
	Coroutines []CoroutineConfig `yaml:"coroutines"`
}

// CoroutineConfig is one independent coroutine: its actions run in order.
type CoroutineConfig struct {
	Name    string   `yaml:"name"`
	Actions []Action `yaml:"actions"`
}

// Action is a single step. Exactly one field must be set.
type Action struct {
	Print  string         `yaml:"print,omitempty"`
	Wait   time.Duration  `yaml:"wait,omitempty"`
	Until  string         `yaml:"until,omitempty"`
	While  string         `yaml:"while,omitempty"`
	Add    map[string]int `yaml:"add,omitempty"`
	Repeat *Repeat        `yaml:"repeat,omitempty"`
	Spawn  []Action       `yaml:"spawn,omitempty"`
	Exit   bool           `yaml:"exit,omitempty"`
}

// Repeat runs Actions Times times in a row.
type Repeat struct {
	Times   int      `yaml:"times"`
	Actions []Action `yaml:"actions"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every action sets exactly one field.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario: missing name")
	}
	if sc.Tick < 0 {
		return fmt.Errorf("scenario %q: negative tick %v", sc.Name, sc.Tick)
	}
	if len(sc.Coroutines) == 0 {
		return fmt.Errorf("scenario %q: no coroutines", sc.Name)
	}
	for i, co := range sc.Coroutines {
		name := co.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if err := validateActions(co.Actions, "coroutine "+name); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return nil
}

func validateActions(actions []Action, where string) error {
	if len(actions) == 0 {
		return fmt.Errorf("%s: no actions", where)
	}
	for i, a := range actions {
		at := fmt.Sprintf("%s action %d", where, i)
		if n := a.kinds(); n != 1 {
			return fmt.Errorf("%s: want exactly one of print, wait, until, while, add, repeat, spawn, exit; got %d", at, n)
		}
		switch {
		case a.Wait < 0:
			return fmt.Errorf("%s: negative wait %v", at, a.Wait)
		case a.Repeat != nil:
			if a.Repeat.Times < 0 {
				return fmt.Errorf("%s: negative repeat count %d", at, a.Repeat.Times)
			}
			if err := validateActions(a.Repeat.Actions, at+" repeat"); err != nil {
				return err
			}
		case a.Spawn != nil:
			if err := validateActions(a.Spawn, at+" spawn"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a Action) kinds() int {
	n := 0
	for _, set := range []bool{
		a.Print != "",
		a.Wait != 0,
		a.Until != "",
		a.While != "",
		len(a.Add) > 0,
		a.Repeat != nil,
		a.Spawn != nil,
		a.Exit,
	} {
		if set {
			n++
		}
	}
	return n
}
