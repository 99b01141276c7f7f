// Package emulator ties the loader, dispatcher, host bridge, and a
// platform backend together into the one-shot "init -> run -> halt"
// embedding harness described in §6.
package emulator

import (
	"fmt"

	"mrbz/internal/hostbridge"
	"mrbz/internal/platform"
	"mrbz/internal/value"
	"mrbz/internal/vm"
)

// State mirrors the run's lifecycle for reporting purposes; the VM
// itself only tracks a single running bool (§3's "running = false after
// any terminating instruction").
type State int

const (
	StateStopped State = iota
	StateRunning
	StateFinished
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Machine is the embedding harness: one VM, one host bridge, one
// platform backend, bound to one bytecode program. Bytecode must
// outlive the Machine (see package loader's lifetime note).
type Machine struct {
	VM       *vm.VM
	Bridge   *hostbridge.Bridge
	Platform platform.Platform
	Bytecode []byte

	State State
}

// New constructs a Machine wired to the given platform backend and
// bytecode buffer. The VM is zero-initialised; call Run to load and
// execute.
func New(bytecode []byte, p platform.Platform) *Machine {
	bridge := hostbridge.New(p)
	return &Machine{
		VM:       vm.New(bridge),
		Bridge:   bridge,
		Platform: p,
		Bytecode: bytecode,
		State:    StateStopped,
	}
}

// Run executes the bound bytecode to completion (a terminating opcode,
// or a platform-side halt such as GameOver on a non-returning backend).
func (m *Machine) Run() (value.Value, error) {
	m.State = StateRunning
	result, err := m.VM.Run(m.Bytecode)
	if err != nil {
		m.State = StateStopped
		return value.Nil, fmt.Errorf("machine run failed: %w", err)
	}
	m.State = StateFinished
	return result, nil
}

// ExitCode implements the native test harness's exit-code convention
// (§6/SPEC_FULL.md): 0 if result is Int(31) (the "test" program's
// success value) or if wantSnake is true (the snake program never
// returns a comparable result; reaching this point at all means it was
// selected and started), 1 otherwise.
func ExitCode(result value.Value, wantSnake bool) int {
	if wantSnake {
		return 0
	}
	if result.Kind() == value.KindInt && result.Int16() == 31 {
		return 0
	}
	return 1
}
