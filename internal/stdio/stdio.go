package stdio

import (
	"io"
	"os"
)

type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func Default() Stdio {
	return Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}
