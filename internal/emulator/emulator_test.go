package emulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrbz/internal/emulator"
	"mrbz/internal/loader/fixtures"
	"mrbz/internal/platform"
	"mrbz/internal/value"
	"mrbz/internal/vm"
)

func TestMachineRunReturnsResult(t *testing.T) {
	b := fixtures.New()
	b.Emit(vm.OpLOADI, 0, 31)
	b.Emit(vm.OpRETURN, 0)

	m := emulator.New(b.Build(), platform.NewConsolePlatform())
	assert.Equal(t, emulator.StateStopped, m.State)

	result, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, value.Int(31), result)
	assert.Equal(t, emulator.StateFinished, m.State)
}

func TestMachineRunSurfacesLoadErrors(t *testing.T) {
	m := emulator.New([]byte("too short"), platform.NewConsolePlatform())
	_, err := m.Run()
	require.Error(t, err)
	assert.Equal(t, emulator.StateStopped, m.State)
}

func TestExitCodeConventions(t *testing.T) {
	assert.Equal(t, 0, emulator.ExitCode(value.Int(31), false))
	assert.Equal(t, 1, emulator.ExitCode(value.Int(30), false))
	assert.Equal(t, 1, emulator.ExitCode(value.Nil, false))
	assert.Equal(t, 0, emulator.ExitCode(value.Nil, true), "snake never returns a comparable result")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Stopped", emulator.StateStopped.String())
	assert.Equal(t, "Running", emulator.StateRunning.String())
	assert.Equal(t, "Finished", emulator.StateFinished.String())
}
