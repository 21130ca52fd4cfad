package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Cloud-Foundations/linkedlist/lib/json"
	"github.com/Cloud-Foundations/linkedlist/lib/list"
	"github.com/Cloud-Foundations/linkedlist/lib/log"
)

var output io.Writer = os.Stdout

var errorEmptyList = errors.New("list is empty")

func appendSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		for _, value := range args {
			l.Append(value)
		}
		return nil
	}, logger)
}

func deleteSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		if l.Delete(args[0]) == nil {
			return fmt.Errorf("value: %s not found", args[0])
		}
		return nil
	}, logger)
}

func deleteHeadSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		node := l.DeleteHead()
		if node == nil {
			return errorEmptyList
		}
		fmt.Fprintln(output, node.Value())
		return nil
	}, logger)
}

func deleteTailSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		node := l.DeleteTail()
		if node == nil {
			return errorEmptyList
		}
		fmt.Fprintln(output, node.Value())
		return nil
	}, logger)
}

func dumpSubcommand(args []string, logger log.DebugLogger) error {
	return viewList(func(l *list.List[string]) error {
		err := json.WriteToFile(args[0], 0644, "    ", l.ToSlice())
		if err != nil {
			return fmt.Errorf("error writing: %s: %s", args[0], err)
		}
		logger.Debugf(0, "wrote %d values to: %s\n", l.Length(), args[0])
		return nil
	})
}

func findSubcommand(args []string, logger log.DebugLogger) error {
	return viewList(func(l *list.List[string]) error {
		var index uint
		node := l.FindFunc(func(value string) bool {
			if l.Comparator().Equal(value, args[0]) {
				return true
			}
			index++
			return false
		})
		if node == nil {
			return fmt.Errorf("value: %s not found", args[0])
		}
		fmt.Fprintf(output, "%d %s\n", index, node.Value())
		return nil
	})
}

func insertSubcommand(args []string, logger log.DebugLogger) error {
	index, err := strconv.ParseUint(args[1], 10, 0)
	if err != nil {
		return fmt.Errorf("error parsing index: %s", err)
	}
	return updateList(func(l *list.List[string]) error {
		_, err := l.Insert(args[0], uint(index))
		return err
	}, logger)
}

func loadSubcommand(args []string, logger log.DebugLogger) error {
	var values []string
	if err := json.ReadFromFile(args[0], &values); err != nil {
		return fmt.Errorf("error reading: %s: %s", args[0], err)
	}
	return updateList(func(l *list.List[string]) error {
		l.FromSlice(values)
		return nil
	}, logger)
}

// prependSubcommand prepends each value in turn, so the last value ends up at
// the front.
func prependSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		for _, value := range args {
			l.Prepend(value)
		}
		return nil
	}, logger)
}

func reverseSubcommand(args []string, logger log.DebugLogger) error {
	return updateList(func(l *list.List[string]) error {
		l.Reverse()
		return nil
	}, logger)
}

func showSubcommand(args []string, logger log.DebugLogger) error {
	return viewList(func(l *list.List[string]) error {
		fmt.Fprintln(output, l)
		return nil
	})
}
