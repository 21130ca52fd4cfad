package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Cloud-Foundations/linkedlist/lib/json"
	"github.com/Cloud-Foundations/linkedlist/lib/list"
	"github.com/Cloud-Foundations/linkedlist/lib/log"
)

var currentList *list.List[string]

// loadList reads the state file. A missing or empty file yields an empty list.
func loadList(filename string) (*list.List[string], error) {
	compare, err := makeComparator(*order, *reverseOrder)
	if err != nil {
		return nil, err
	}
	l := list.New(compare)
	var values []string
	err = json.ReadFromFile(filename, &values)
	if err != nil && err != io.EOF && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading: %s: %s", filename, err)
	}
	l.FromSlice(values)
	currentList = l
	return l, nil
}

func saveList(filename string, l *list.List[string]) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	return json.WriteToFile(filename, 0644, "    ", l.ToSlice())
}

// updateList loads the list, applies update and saves the list if update
// succeeded.
func updateList(update func(*list.List[string]) error,
	logger log.DebugLogger) error {
	defer recordCommandTime(time.Now())
	l, err := loadList(*stateFile)
	if err != nil {
		return err
	}
	startLength := l.Length()
	if err := update(l); err != nil {
		return err
	}
	if err := saveList(*stateFile, l); err != nil {
		return err
	}
	logger.Debugf(0, "list length: %d -> %d\n", startLength, l.Length())
	return nil
}

// viewList loads the list and calls view without saving.
func viewList(view func(*list.List[string]) error) error {
	defer recordCommandTime(time.Now())
	l, err := loadList(*stateFile)
	if err != nil {
		return err
	}
	return view(l)
}
