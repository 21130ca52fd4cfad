package uncommenter

import (
	"bufio"
	"bytes"
	"io"
)

var commentPrefixes = []struct {
	commentType uint64
	prefix      []byte
}{
	{CommentTypeHash, []byte("#")},
	{CommentTypeSlashSlash, []byte("//")},
	{CommentTypeBang, []byte("!")},
}

func newUncommenter(reader io.Reader, commentTypes uint64) io.Reader {
	if commentTypes == 0 {
		return reader
	}
	return &uncommenter{
		commentTypes: commentTypes,
		reader:       bufio.NewReader(reader),
	}
}

func (u *uncommenter) isComment(line []byte) bool {
	line = bytes.TrimLeft(line, " \t")
	for _, comment := range commentPrefixes {
		if u.commentTypes&comment.commentType == 0 {
			continue
		}
		if bytes.HasPrefix(line, comment.prefix) {
			return true
		}
	}
	return false
}

func (u *uncommenter) read(p []byte) (int, error) {
	if len(p) < 1 {
		return 0, nil
	}
	for len(u.pending) < 1 {
		if u.err != nil {
			return 0, u.err
		}
		line, err := u.reader.ReadBytes('\n')
		u.err = err
		if !u.isComment(line) {
			u.pending = line
		}
	}
	nCopied := copy(p, u.pending)
	u.pending = u.pending[nCopied:]
	return nCopied, nil
}
