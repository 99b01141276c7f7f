package vm

// Opcode numbers. The dispatcher accepts bytes in 0x00..=MaxOpcode; any
// byte outside that range, or inside it but not listed here, is a fatal
// decode error (§4.3).
const (
	OpNOP       uint8 = 0x00
	OpMOVE      uint8 = 0x01
	OpLOADI_0   uint8 = 0x02
	OpLOADI_1   uint8 = 0x03
	OpLOADI_2   uint8 = 0x04
	OpLOADI_3   uint8 = 0x05
	OpLOADI_4   uint8 = 0x06
	OpLOADI_5   uint8 = 0x07
	OpLOADI_6   uint8 = 0x08
	OpLOADI_7   uint8 = 0x09
	OpLOADI_N1  uint8 = 0x0A // LOADI_-1
	OpLOADI     uint8 = 0x0B
	OpLOADINEG  uint8 = 0x0C
	OpLOADI16   uint8 = 0x0D
	OpLOADNIL   uint8 = 0x0E
	OpLOADT     uint8 = 0x0F
	OpLOADF     uint8 = 0x10
	OpLOADSYM   uint8 = 0x11
	OpLOADSELF  uint8 = 0x12
	OpADD       uint8 = 0x13
	OpADDI      uint8 = 0x14
	OpSUB       uint8 = 0x15
	OpSUBI      uint8 = 0x16
	OpMUL       uint8 = 0x17
	OpDIV       uint8 = 0x18
	OpEQ        uint8 = 0x19
	OpLT        uint8 = 0x1A
	OpLE        uint8 = 0x1B
	OpGT        uint8 = 0x1C
	OpGE        uint8 = 0x1D
	OpJMP       uint8 = 0x1E
	OpJMPIF     uint8 = 0x1F
	OpJMPNOT    uint8 = 0x20
	OpJMPNIL    uint8 = 0x21
	OpARRAY     uint8 = 0x22
	OpAREF      uint8 = 0x23
	OpASET      uint8 = 0x24
	OpGETIDX    uint8 = 0x25
	OpSETIDX    uint8 = 0x26
	OpSSEND     uint8 = 0x27
	OpSEND      uint8 = 0x28
	OpGETIV     uint8 = 0x29
	OpSETIV     uint8 = 0x2A
	OpGETCONST  uint8 = 0x2B
	OpSETCONST  uint8 = 0x2C
	OpENTER     uint8 = 0x2D
	OpRETURN    uint8 = 0x2E
	OpSTOP      uint8 = 0x2F

	// MaxOpcode is the highest recognised opcode number; the dispatcher
	// treats anything above it as an out-of-range decode fatal,
	// matching the original's "op > 0x69" bounds check exactly.
	MaxOpcode uint8 = 0x69
)
