// Package fixtures provides a tiny byte-level assembler for building
// RITE-format bytecode buffers in tests and in the embedding harness.
// Bytecode compilation is explicitly out of scope for the VM (§1); this
// is test/harness tooling, not a compiler — it has no parser, no
// optimiser, and no notion of source syntax, just opcode-by-opcode
// emission, the same role a hand-rolled ROM builder plays in a cartridge
// test suite.
package fixtures

import "encoding/binary"

// Builder accumulates instruction bytes and symbol names, then renders a
// complete RITE container via Build.
type Builder struct {
	instrs  []byte
	symbols [][]byte
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Emit appends raw instruction bytes (an opcode followed by its
// operands) to the instruction stream.
func (b *Builder) Emit(bytes ...byte) *Builder {
	b.instrs = append(b.instrs, bytes...)
	return b
}

// EmitI16 appends a big-endian signed 16-bit immediate, used for jump
// offsets and LOADI16.
func (b *Builder) EmitI16(v int16) *Builder {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	return b.Emit(buf[0], buf[1])
}

// Symbol registers a symbol name and returns its table index, for use
// with LOADSYM/SSEND/SEND/GETIV/SETIV/GETCONST/SETCONST operands.
func (b *Builder) Symbol(name string) uint8 {
	idx := uint8(len(b.symbols))
	b.symbols = append(b.symbols, []byte(name))
	return idx
}

// Build renders the accumulated instructions and symbol table into a
// complete RITE bytecode buffer: the fixed 48-byte prologue (with ilen
// set correctly), the instruction stream, a zero pool count, and the
// symbol table.
func (b *Builder) Build() []byte {
	const prologueLen = 48

	out := make([]byte, prologueLen)
	copy(out[0:8], "RITE0300")
	copy(out[12:16], "MATZ")
	copy(out[20:24], "IREP")

	ilen := uint16(len(b.instrs))
	binary.BigEndian.PutUint16(out[46:48], ilen)

	out = append(out, b.instrs...)

	// Pool count, assumed zero.
	out = append(out, 0x00, 0x00)

	// Symbol table: 2-byte count, then per symbol 2-byte length + bytes + NUL.
	var symCount [2]byte
	binary.BigEndian.PutUint16(symCount[:], uint16(len(b.symbols)))
	out = append(out, symCount[:]...)

	for _, name := range b.symbols {
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(name)))
		out = append(out, lenBuf[:]...)
		out = append(out, name...)
		out = append(out, 0x00)
	}

	return out
}
