package uncommenter

import (
	"bufio"
	"io"
)

const (
	CommentTypeHash       = 1 << iota // "#"
	CommentTypeSlashSlash             // "//"
	CommentTypeBang                   // "!"

	CommentTypeAll = 0xffffffffffffffff
)

type uncommenter struct {
	commentTypes uint64
	err          error
	pending      []byte
	reader       *bufio.Reader
}

// New will return a wrapped reader, filtering out comment lines.
// Comment lines may begin with arbitrary whitespace followed by any of the
// specified commentTypes, until the next newline.
func New(reader io.Reader, commentTypes uint64) io.Reader {
	return newUncommenter(reader, commentTypes)
}

func (u *uncommenter) Read(p []byte) (int, error) {
	return u.read(p)
}
