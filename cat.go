package bobcat

import (
	"io"
	"os"

	"cloudeng.io/errors"
	"github.com/midbel/bobcat/internal/stdio"
	"github.com/midbel/rw"
)

const (
	Stdin     = "-"
	StdinName = "stdin"
)

type Cat struct {
	Stdio stdio.Stdio

	Open   func(string) (io.ReadCloser, error)
	Report func(error)
}

func New(st stdio.Stdio) *Cat {
	return &Cat{
		Stdio: st,
		Open:  openFile,
	}
}

func Concat(st stdio.Stdio, operands []string) error {
	return New(st).Run(operands)
}

// Run returns nil or an *errors.M with one *OperandError per failure.
func (c *Cat) Run(operands []string) error {
	if len(operands) == 0 {
		operands = []string{Stdin}
	}
	var (
		errs errors.M
		cp   = NewCopier()
	)
	for _, op := range operands {
		for _, err := range c.process(cp, op) {
			c.report(err)
			errs.Append(err)
		}
	}
	return errs.Err()
}

func (c *Cat) process(cp *Copier, operand string) []error {
	r, name, err := c.source(operand)
	if err != nil {
		return []error{operandError(OpOpen, name, err)}
	}
	var errs []error
	if _, err := cp.Copy(c.Stdio.Out, r, name); err != nil {
		errs = append(errs, err)
	}
	if err := r.Close(); err != nil {
		errs = append(errs, operandError(OpClose, name, err))
	}
	return errs
}

// standard input is wrapped so that closing it is a no-op
func (c *Cat) source(operand string) (io.ReadCloser, string, error) {
	if operand == Stdin {
		return rw.NopReadCloser(c.Stdio.In), StdinName, nil
	}
	open := c.Open
	if open == nil {
		open = openFile
	}
	r, err := open(operand)
	return r, operand, err
}

func (c *Cat) report(err error) {
	if c.Report != nil {
		c.Report(err)
	}
}

func openFile(file string) (io.ReadCloser, error) {
	return os.Open(file)
}
