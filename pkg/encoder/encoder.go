package encoder

import (
	"math"
	"nova/pkg/section"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

const (
	MaxByte     = 0xff
	MaxRegister = 15

	// largest index that still packs without overflowing int after shifting
	maxShiftableRegister = math.MaxInt >> 6
)

type Encoder struct {
	overflow OverflowPolicy
}

// Encoded holds the byte values of both sections, in input order
type Encoded struct {
	Instructions []int
	Data         []int
}

// Creates a new encoder applying the given overflow policy
func NewEncoder(overflow OverflowPolicy) *Encoder {
	return &Encoder{overflow: overflow}
}

// EncodeProgram encodes every text line and every data line. The first
// failure aborts the whole program and no partial result is returned.
func (e *Encoder) EncodeProgram(p section.Program) (Encoded, error) {
	out := Encoded{
		Instructions: make([]int, 0, len(p.Text)),
		Data:         make([]int, 0, len(p.Data)),
	}

	for _, l := range p.Text {
		b, err := e.EncodeInstruction(l)
		if err != nil {
			return Encoded{}, err
		}
		out.Instructions = append(out.Instructions, b)
	}

	for _, l := range p.Data {
		b, err := e.EncodeData(l)
		if err != nil {
			return Encoded{}, err
		}
		out.Data = append(out.Data, b)
	}

	return out, nil
}

// EncodeInstruction packs `MNEMONIC Rt, Rs1[, Rs2]` into one byte:
// base + Rt + Rs1<<shift1 + Rs2<<shift2, with Rs2 contributing zero when absent.
func (e *Encoder) EncodeInstruction(l section.Line) (int, error) {
	if len(l.Tokens) == 0 {
		return 0, lineError(ErrInvalidInstruction, l.Number, "")
	}

	mnemonic := l.Tokens[0]
	op, ok := Lookup(mnemonic)
	if !ok {
		return 0, lineError(ErrInvalidInstruction, l.Number, mnemonic)
	}

	if len(l.Tokens) < 3 {
		return 0, errors.Wrapf(lineError(ErrMalformedOperand, l.Number, strings.Join(l.Tokens, " ")),
			"%s expects at least 2 registers", mnemonic)
	}
	if len(l.Tokens) > 4 {
		log.Warn("Ignoring extra operands", "line", l.Number, "operands", l.Tokens[4:])
	}

	target, err := e.register(l.Tokens[1], l.Number)
	if err != nil {
		return 0, err
	}
	src1, err := e.register(l.Tokens[2], l.Number)
	if err != nil {
		return 0, err
	}

	value := op.Base + target + src1<<op.Shift1
	if len(l.Tokens) > 3 {
		src2, err := e.register(l.Tokens[3], l.Number)
		if err != nil {
			return 0, err
		}
		value += src2 << op.Shift2
	}

	v, ok := e.overflow.apply(value)
	if !ok {
		return 0, errors.Wrapf(lineError(ErrByteOverflow, l.Number, strings.Join(l.Tokens, " ")),
			"encodes to %d", value)
	}
	return v, nil
}

// EncodeData converts the base-10 literal of a `NAME VALUE` line
func (e *Encoder) EncodeData(l section.Line) (int, error) {
	if len(l.Tokens) < 2 {
		return 0, errors.Wrap(lineError(ErrMalformedOperand, l.Number, strings.Join(l.Tokens, " ")),
			"data declaration has no value")
	}

	value, err := strconv.Atoi(l.Tokens[1])
	if err != nil {
		return 0, lineError(ErrMalformedOperand, l.Number, l.Tokens[1])
	}

	v, ok := e.overflow.apply(value)
	if !ok {
		return 0, lineError(ErrByteOverflow, l.Number, l.Tokens[1])
	}
	return v, nil
}

// register parses a register token: one register marker (R or r) followed by decimal digits
func (e *Encoder) register(tok string, line int) (int, error) {
	idx, err := ParseRegister(tok)
	if err != nil {
		return 0, lineError(ErrMalformedOperand, line, tok)
	}
	if idx > maxShiftableRegister {
		return 0, errors.Wrap(lineError(ErrByteOverflow, line, tok), "register index too large to encode")
	}
	if idx > MaxRegister && e.overflow == Fail {
		return 0, errors.Wrapf(lineError(ErrByteOverflow, line, tok), "register index above %d", MaxRegister)
	}
	return idx, nil
}

// ParseRegister returns the index of a register token such as R3
func ParseRegister(tok string) (int, error) {
	if len(tok) < 2 || (tok[0] != 'R' && tok[0] != 'r') {
		return 0, errors.Errorf("%q is not a register", tok)
	}

	digits := tok[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, errors.Errorf("%q has a non-decimal register index", tok)
		}
	}

	idx, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errors.Wrapf(err, "register %q", tok)
	}
	return idx, nil
}

// Hex renders a value as lowercase hex with no prefix and no padding
func Hex(v int) string {
	return strconv.FormatInt(int64(v), 16)
}

// Join renders values as space separated hex
func Join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Hex(v)
	}
	return strings.Join(parts, " ")
}

// InstructionHex returns the text section rendering
func (e Encoded) InstructionHex() string {
	return Join(e.Instructions)
}

// DataHex returns the data section rendering
func (e Encoded) DataHex() string {
	return Join(e.Data)
}
