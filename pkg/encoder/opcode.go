package encoder

type Mnemonic string

const (
	ADD Mnemonic = "ADD"
	SUB Mnemonic = "SUB"
	LDR Mnemonic = "LDR"
	STR Mnemonic = "STR"
)

// Opcode describes how an instruction class packs into a byte: the base value
// in the top bits and the shifts applied to the first and second source registers.
type Opcode struct {
	Base   int
	Shift1 uint
	Shift2 uint
}

var opcodes = map[Mnemonic]Opcode{
	ADD: {Base: 0, Shift1: 2, Shift2: 4},
	SUB: {Base: 64, Shift1: 2, Shift2: 4},
	LDR: {Base: 128, Shift1: 2, Shift2: 0},
	STR: {Base: 192, Shift1: 2, Shift2: 0},
}

// Lookup returns the opcode entry for a mnemonic
func Lookup(m string) (Opcode, bool) {
	op, ok := opcodes[Mnemonic(m)]
	return op, ok
}
