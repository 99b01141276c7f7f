// Package hostbridge resolves symbol-named SSEND/SEND calls to the
// fixed table of host primitives (§4.4), dispatching by exact
// byte-equal comparison the way the joypad register dispatches by
// button name.
package hostbridge

import (
	"mrbz/internal/hostlog"
	"mrbz/internal/platform"
	"mrbz/internal/value"
	"mrbz/internal/vm"
)

// Bridge implements vm.HostBridge against a Platform backend.
type Bridge struct {
	Platform platform.Platform
}

// New returns a Bridge wired to the given platform backend.
func New(p platform.Platform) *Bridge {
	return &Bridge{Platform: p}
}

// Call resolves symIdx to a primitive name and dispatches it. Unmatched
// names are logged and resolve to Nil — never an error (§4.4, §9: this
// conflates missing primitives with user-defined methods the VM cannot
// execute, and that leniency is preserved deliberately).
func (b *Bridge) Call(v *vm.VM, symIdx uint8, argc uint8, baseReg uint8) value.Value {
	name := v.SymbolName(symIdx)
	if name == nil {
		hostlog.Logf("ERR: unknown symbol index %d", symIdx)
		return value.Nil
	}

	args := make([]value.Value, argc)
	for i := uint8(0); i < argc; i++ {
		args[i] = v.Regs[baseReg+i]
	}
	receiver := v.Regs[baseReg-1]

	switch string(name) {
	case "read_joypad":
		return value.Int(int32(b.Platform.ReadJoypad()))

	case "draw_tile":
		x, y, tile := argInt(args, 0), argInt(args, 1), argInt(args, 2)
		b.Platform.DrawTile(int(x), int(y), int(tile))
		return value.Nil

	case "clear_tile":
		x, y := argInt(args, 0), argInt(args, 1)
		platform.ClearTile(b.Platform, int(x), int(y))
		return value.Nil

	case "wait_vbl":
		b.Platform.WaitVBlank()
		return value.Nil

	case "rand":
		maxArg := int32(0)
		if len(args) >= 1 {
			maxArg = int32(args[0].Int16())
		}
		return value.Int(v.StepRand(maxArg))

	case "game_over":
		score := int32(0)
		if len(args) >= 1 {
			score = int32(args[0].Int16())
		}
		b.Platform.GameOver(int(score))
		return value.Nil

	case "puts", "p":
		if len(args) >= 1 {
			hostlog.Log(args[0].String())
		} else {
			hostlog.Log(receiver.String())
		}
		return value.Nil

	case "new":
		return b.newArray(v, args)

	case "!=":
		if len(args) == 0 {
			return value.True
		}
		return value.Bool(!receiver.Equal(args[0]))

	default:
		hostlog.Logf("UNK: %s", name)
		return value.Nil
	}
}

func argInt(args []value.Value, i int) int16 {
	if i >= len(args) {
		return 0
	}
	return args[i].Int16()
}

// newArray implements Array.new(size, default): allocates an array of
// clamp(size, 0, 100) filled with default. Exhaustion here does NOT
// alias array 0 the way ARRAY's bump allocator does — it reports Nil,
// a distinction the original source preserves deliberately (see
// SPEC_FULL.md's supplemented-features note).
func (b *Bridge) newArray(v *vm.VM, args []value.Value) value.Value {
	size := int(argInt(args, 0))
	if size < 0 {
		size = 0
	}
	if size > 100 {
		size = 100
	}
	var def value.Value
	if len(args) >= 2 {
		def = args[1]
	} else {
		def = value.Nil
	}

	idx, ok := v.Arrays.TryAlloc()
	if !ok {
		return value.Nil
	}
	for i := 0; i < size; i++ {
		v.Arrays.Set(idx, i, def)
	}
	v.Arrays.SetLen(idx, size)
	return value.Array(idx)
}
