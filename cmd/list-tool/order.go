package main

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/Cloud-Foundations/linkedlist/lib/comparator"
	"github.com/Cloud-Foundations/linkedlist/lib/verstr"
)

const (
	orderLexical = "lexical"
	orderNumeric = "numeric"
	orderVersion = "version"
)

func makeComparator(order string, reverse bool) (
	*comparator.Comparator[string], error) {
	var compare *comparator.Comparator[string]
	switch order {
	case orderLexical:
		compare = comparator.New[string](nil)
	case orderNumeric:
		compare = comparator.New(compareNumeric)
	case orderVersion:
		compare = comparator.New(verstr.Compare)
	default:
		return nil, fmt.Errorf("unknown order: %s", order)
	}
	if reverse {
		compare = compare.Reverse()
	}
	return compare, nil
}

// compareNumeric orders numbers by value, before all non-numbers, which are
// ordered lexically. Different spellings of the same number compare equal.
func compareNumeric(a, b string) int {
	aNumber, aErr := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bNumber, bErr := strconv.ParseFloat(strings.TrimSpace(b), 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(aNumber, bNumber)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return strings.Compare(a, b)
}
