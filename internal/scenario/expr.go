// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"

	"github.com/dop251/goja"
)

// evaluator runs predicate expressions against the scenario state.
// One JavaScript runtime is shared by every coroutine of a scenario; it is
// only touched from the tick thread.
type evaluator struct {
	vm       *goja.Runtime
	programs map[string]*goja.Program
}

func newEvaluator() *evaluator {
	return &evaluator{
		vm:       goja.New(),
		programs: make(map[string]*goja.Program),
	}
}

// compile parses src once so syntax errors surface at build time.
func (e *evaluator) compile(src string) (*goja.Program, error) {
	if p, ok := e.programs[src]; ok {
		return p, nil
	}
	p, err := goja.Compile("predicate", src, true)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", src, err)
	}
	e.programs[src] = p
	return p, nil
}

// eval exposes tick, elapsed (seconds) and counters, then runs p.
func (e *evaluator) eval(p *goja.Program, s *State) (bool, error) {
	if err := e.vm.Set("tick", s.clock.Ticks()); err != nil {
		return false, fmt.Errorf("failed to set tick: %w", err)
	}
	if err := e.vm.Set("elapsed", s.clock.Elapsed().Seconds()); err != nil {
		return false, fmt.Errorf("failed to set elapsed: %w", err)
	}
	if err := e.vm.Set("counters", s.Counters); err != nil {
		return false, fmt.Errorf("failed to set counters: %w", err)
	}
	v, err := e.vm.RunProgram(p)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate predicate: %w", err)
	}
	return v.ToBoolean(), nil
}
