package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrbz/internal/loader/fixtures"
	"mrbz/internal/value"
	"mrbz/internal/vm"
)

// TestTrivialReturn covers scenario 1: LOADI R0,31; RETURN R0; STOP.
func TestTrivialReturn(t *testing.T) {
	bytecode := fixtures.New().
		Emit(vm.OpLOADI, 0, 31).
		Emit(vm.OpRETURN, 0).
		Emit(vm.OpSTOP).
		Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Int(31), result)
}

// TestConditionalBranch covers scenario 2.
func TestConditionalBranch(t *testing.T) {
	b := fixtures.New()
	b.Emit(vm.OpLOADI, 0, 5).
		Emit(vm.OpLOADI, 1, 5).
		Emit(vm.OpEQ, 0)
	// JMPNOT R0, +3 skips the LOADI R2,1 instruction (3 bytes) when R0 is
	// falsy; here R0 is truthy (True), so the jump is NOT taken.
	b.Emit(vm.OpJMPNOT, 0)
	b.EmitI16(3)
	b.Emit(vm.OpLOADI, 2, 1)
	b.Emit(vm.OpRETURN, 2)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), result)
}

// TestArrayRoundTrip covers scenario 3.
func TestArrayRoundTrip(t *testing.T) {
	b := fixtures.New()
	b.Emit(vm.OpLOADI, 0, 10).
		Emit(vm.OpLOADI, 1, 20).
		Emit(vm.OpLOADI, 2, 30).
		Emit(vm.OpARRAY, 0, 2).
		Emit(vm.OpAREF, 3, 0, 1).
		Emit(vm.OpRETURN, 3)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Int(20), result)
}

// TestDivideByZeroSafety covers scenario 4.
func TestDivideByZeroSafety(t *testing.T) {
	b := fixtures.New()
	b.Emit(vm.OpLOADI, 0, 10).
		Emit(vm.OpLOADI_0, 1).
		Emit(vm.OpDIV, 0).
		Emit(vm.OpRETURN, 0)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err, "divide by zero is logged, not fatal")
	assert.Equal(t, value.Int(0), result)
}

// TestUnknownOpcodeHaltsImmediately covers scenario 6.
func TestUnknownOpcodeHaltsImmediately(t *testing.T) {
	b := fixtures.New()
	b.Emit(0xFE) // above MaxOpcode (0x69): the out-of-range fatal path
	b.Emit(vm.OpRETURN, 0)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Nil, result, "unknown opcode halts with a Nil result, RETURN never runs")
}

// TestInRangeButUnassignedOpcodeIsAlsoFatal checks the second fatal path:
// a byte within 0x00..=0x69 that the switch does not recognise, distinct
// from the >0x69 bounds check exercised above.
func TestInRangeButUnassignedOpcodeIsAlsoFatal(t *testing.T) {
	b := fixtures.New()
	b.Emit(0x50) // inside 0x00..=0x69, not assigned to any opcode
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Nil, result)
}

// TestJumpSkipsInstruction exercises jump semantics: the offset is
// relative to the PC immediately after the offset bytes are consumed.
// LOADI_7 sets R0=7; the jump skips the following LOADI_0 (which would
// reset R0 to 0) and lands directly on RETURN R0, proving the offset
// arithmetic (and not some other landing point) is what executed.
func TestJumpSkipsInstruction(t *testing.T) {
	b := fixtures.New()
	b.Emit(vm.OpLOADI_7, 0)
	b.Emit(vm.OpJMP)
	b.EmitI16(2) // skip the 2-byte LOADI_0 instruction that follows
	b.Emit(vm.OpLOADI_0, 0)
	b.Emit(vm.OpRETURN, 0)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	assert.Equal(t, value.Int(7), result, "jump must skip LOADI_0, or R0 would be reset to 0")
}

func TestArenaExhaustionAliasesArrayZero(t *testing.T) {
	b := fixtures.New()
	for i := 0; i < 9; i++ {
		b.Emit(vm.OpARRAY, 0, 0)
	}
	b.Emit(vm.OpRETURN, 0)
	bytecode := b.Build()

	v := vm.New(nil)
	result, err := v.Run(bytecode)
	require.NoError(t, err)
	require.True(t, result.IsArray())
	assert.Equal(t, uint8(0), result.ArrayIndex(), "the 9th ARRAY allocation silently aliases array 0 (documented bug, preserved verbatim)")
}
