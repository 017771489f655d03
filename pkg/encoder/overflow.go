package encoder

import (
	"fmt"
	"strings"
)

type OverflowPolicy int

const (
	Fail OverflowPolicy = iota // reject values outside a byte
	Wrap                       // reduce values modulo 256
	Wide                       // emit the value unchanged
)

// Returns a string representation of the OverflowPolicy
func (p OverflowPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Wide:
		return "wide"
	default:
		return "fail"
	}
}

// ParseOverflowPolicy maps a flag value to a policy
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "fail":
		return Fail, nil
	case "wrap":
		return Wrap, nil
	case "wide":
		return Wide, nil
	default:
		return Fail, fmt.Errorf("unknown overflow policy %q (want fail, wrap or wide)", s)
	}
}

// apply reports the value to emit for v and whether it is acceptable
func (p OverflowPolicy) apply(v int) (int, bool) {
	if v >= 0 && v <= MaxByte {
		return v, true
	}
	switch p {
	case Wrap:
		return ((v % 256) + 256) % 256, true
	case Wide:
		return v, true
	default:
		return v, false
	}
}
