package gaussian

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which field failed validation.
type ErrorKind int

const (
	InvalidMemory ErrorKind = iota + 1
	InvalidCPURange
	InvalidKeywords
	InvalidGPU
)

var (
	ErrInvalidMemory   = errors.New("invalid memory")
	ErrInvalidCPURange = errors.New("invalid cpu range")
	ErrInvalidKeywords = errors.New("invalid key words")
	ErrInvalidGPU      = errors.New("invalid gpu")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidMemory:
		return "InvalidMemory"
	case InvalidCPURange:
		return "InvalidCpuRange"
	case InvalidKeywords:
		return "InvalidKeywords"
	case InvalidGPU:
		return "InvalidGpu"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// sentinel returns the errors.Is target for the kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidMemory:
		return ErrInvalidMemory
	case InvalidCPURange:
		return ErrInvalidCPURange
	case InvalidKeywords:
		return ErrInvalidKeywords
	case InvalidGPU:
		return ErrInvalidGPU
	}
	return nil
}

// Hint returns an example of an accepted value for the field.
func (k ErrorKind) Hint() string {
	switch k {
	case InvalidMemory:
		return "try `mem: 24GB`, `mem: 500MB` etc."
	case InvalidCPURange:
		return "try `cpu: 0-24` etc."
	case InvalidKeywords:
		return "key words must contain a `#` route marker, try `key_words: #p BP86/Def2svp SCF=XQC` etc."
	case InvalidGPU:
		return "try `gpu: 0-3=0-3`, `gpu: 0,1,2=0,1` or `gpu: 0=0`"
	}
	return ""
}

// ValidationError is returned by Validate for the first field that does not
// match its grammar.
type ValidationError struct {
	Kind  ErrorKind
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind.sentinel(), e.Value, e.Kind.Hint())
}

// Is lets errors.Is match a ValidationError against ErrInvalidMemory and friends.
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
