package encoder

import (
	"nova/pkg/color"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrMalformedOperand   = errors.New("malformed operand")
	ErrByteOverflow       = errors.New("byte overflow")
)

// lineError attaches the source line and offending token to an error kind
func lineError(kind error, line int, token string) error {
	return errors.Wrapf(kind, "`%s` at %s", color.BlueText(token), color.Line(line))
}
