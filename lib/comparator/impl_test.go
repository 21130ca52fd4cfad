package comparator

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c := New[int](nil)
	var tests = []struct {
		a, b               int
		eq, lt, gt, le, ge bool
	}{
		{1, 1, true, false, false, true, true},
		{1, 2, false, true, false, true, false},
		{2, 1, false, false, true, false, true},
		{-5, 3, false, true, false, true, false},
	}
	for _, test := range tests {
		if got := c.Equal(test.a, test.b); got != test.eq {
			t.Errorf("Equal(%d, %d) = %v", test.a, test.b, got)
		}
		if got := c.LessThan(test.a, test.b); got != test.lt {
			t.Errorf("LessThan(%d, %d) = %v", test.a, test.b, got)
		}
		if got := c.GreaterThan(test.a, test.b); got != test.gt {
			t.Errorf("GreaterThan(%d, %d) = %v", test.a, test.b, got)
		}
		if got := c.LessThanOrEqual(test.a, test.b); got != test.le {
			t.Errorf("LessThanOrEqual(%d, %d) = %v", test.a, test.b, got)
		}
		if got := c.GreaterThanOrEqual(test.a, test.b); got != test.ge {
			t.Errorf("GreaterThanOrEqual(%d, %d) = %v", test.a, test.b, got)
		}
	}
}

func TestCustom(t *testing.T) {
	c := New(func(a, b int) int { return b - a })
	if !c.LessThan(2, 1) {
		t.Error("custom LessThan(2, 1) = false")
	}
	if New[int](nil).LessThan(2, 1) {
		t.Error("default LessThan(2, 1) = true")
	}
	reversed := c.Reverse()
	if !reversed.GreaterThan(2, 1) {
		t.Error("reversed GreaterThan(2, 1) = false")
	}
	if !c.LessThan(2, 1) {
		t.Error("Reverse() modified the original comparator")
	}
}

func TestReverseTwice(t *testing.T) {
	c := New[string](nil)
	twice := c.Reverse().Reverse()
	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}, {"x", "x"}} {
		if got, want := twice.Compare(pair[0], pair[1]),
			c.Compare(pair[0], pair[1]); got != want {
			t.Errorf("Compare(%q, %q) = %d, expected: %d",
				pair[0], pair[1], got, want)
		}
	}
}

func TestNewFunc(t *testing.T) {
	type record struct{ name string }
	c := NewFunc(func(a, b record) int {
		return strings.Compare(strings.ToLower(a.name),
			strings.ToLower(b.name))
	})
	if !c.Equal(record{"Alpha"}, record{"alpha"}) {
		t.Error("case-insensitive Equal failed")
	}
	defer func() {
		if recover() == nil {
			t.Error("NewFunc(nil) did not panic")
		}
	}()
	NewFunc[record](nil)
}
