package json

import (
	"io"
	"os"
)

// Read will read JSON data from reader and write the decoded data to value.
// Lines beginning with "#", "//" or "!" (after optional whitespace) are
// treated as comments and ignored.
func Read(reader io.Reader, value interface{}) error {
	return read(reader, value)
}

// ReadFromFile is the same as Read, except the data are read from the
// specified file.
func ReadFromFile(filename string, value interface{}) error {
	return readFromFile(filename, value)
}

// WriteToFile will encode value as JSON with the specified indentation and
// write it to filename. The data are written to a temporary file which is
// renamed, so readers never see a partially written file.
func WriteToFile(filename string, perm os.FileMode, indent string,
	value interface{}) error {
	return writeToFile(filename, perm, indent, value)
}

// WriteWithIndent will encode value as JSON with the specified indentation and
// write it to w.
func WriteWithIndent(w io.Writer, indent string, value interface{}) error {
	return writeWithIndent(w, indent, value)
}
