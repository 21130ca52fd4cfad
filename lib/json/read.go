package json

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/Cloud-Foundations/linkedlist/lib/uncommenter"
)

var errorTrailingData = errors.New("unexpected data after JSON value")

func readFromFile(filename string, value interface{}) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return read(file, value)
}

// read decodes exactly one JSON value. Empty input (after comments are
// removed) yields io.EOF.
func read(reader io.Reader, value interface{}) error {
	decoder := json.NewDecoder(uncommenter.New(reader,
		uncommenter.CommentTypeAll))
	if err := decoder.Decode(value); err != nil {
		return err
	}
	if decoder.More() {
		return errorTrailingData
	}
	return nil
}
