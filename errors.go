package bobcat

import (
	"fmt"
	"io/fs"

	"cloudeng.io/errors"
)

type Op int8

const (
	OpOpen Op = iota
	OpRead
	OpWrite
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpClose:
		return "close"
	default:
		return "unknown"
	}
}

// OperandError is the failure of one operand. Its message is the operand
// name followed by the description of the system error.
type OperandError struct {
	Op   Op
	Name string
	Err  error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, reason(e.Err))
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

func operandError(op Op, name string, err error) error {
	return &OperandError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

func reason(err error) string {
	var perr *fs.PathError
	if errors.As(err, &perr) && perr.Err != nil {
		return perr.Err.Error()
	}
	return err.Error()
}
