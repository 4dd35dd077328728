package bobcat

import (
	"io"
)

const BufferSize = 4096

type Copier struct {
	buf []byte
}

func NewCopier() *Copier {
	return &Copier{
		buf: make([]byte, BufferSize),
	}
}

func Copy(w io.Writer, r io.Reader, name string) (int64, error) {
	return NewCopier().Copy(w, r, name)
}

func (c *Copier) Copy(w io.Writer, r io.Reader, name string) (int64, error) {
	var written int64
	for {
		n, err := r.Read(c.buf)
		if n > 0 {
			m, werr := writeFull(w, c.buf[:n])
			written += int64(m)
			if werr != nil {
				return written, operandError(OpWrite, name, werr)
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, operandError(OpRead, name, err)
		}
	}
}

func writeFull(w io.Writer, chunk []byte) (int, error) {
	var total int
	for total < len(chunk) {
		n, err := w.Write(chunk[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
