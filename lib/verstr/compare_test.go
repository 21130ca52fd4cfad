package verstr

import (
	"testing"
)

func TestCompareOrdering(t *testing.T) {
	var tests = []struct {
		left, right string
		want        bool
	}{
		{"", "", false},
		{"", "empty", true},
		{"empty", "", false},
		{"file.0.ext", "file.1.ext", true},
		{"file.1.ext", "file.0.ext", false},
		{"file.1.ext", "file.10.ext", true},
		{"file.10.ext", "file.1.ext", false},
		{"file.9.ext", "file.10.ext", true},
		{"file.10.ext", "file.9.ext", false},
		{"name.1.rc1", "name.1.rc10", true},
		{"name.1.rc10", "name.1.rc1", false},
		{"name.1.rc9", "name.1.rc10", true},
		{"name.1.rc10", "name.1.rc9", false},
		{"os-v0", "os-v1", true},
		{"os-v1", "os-v0", false},
		{"os-v1", "os-v10", true},
		{"os-v10", "os-v1", false},
		{"os-v9", "os-v10", true},
		{"os-v10", "os-v9", false},
		{"sparse", "sparse.0", true},
		{"sparse.0", "sparse", false},
		{"token_01", "token_2", true},
		{"token_2", "token_10", true},
	}
	for _, test := range tests {
		if got := Compare(test.left, test.right) < 0; got != test.want {
			t.Errorf("Compare(%q, %q) < 0 = %v", test.left, test.right, got)
		}
	}
}

func TestCompare(t *testing.T) {
	var tests = []struct {
		left, right string
		want        int
	}{
		{"", "", 0},
		{"v1.2.3", "v1.2.3", 0},
		{"v1.02", "v1.2", -1},
		{"v1.2", "v1.02", 1},
		{"v2", "v10", -1},
		{"v10", "v2", 1},
		{"12345678901234567890", "9", 1},
	}
	for _, test := range tests {
		got := Compare(test.left, test.right)
		if got < 0 {
			got = -1
		} else if got > 0 {
			got = 1
		}
		if got != test.want {
			t.Errorf("Compare(%q, %q) = %d", test.left, test.right, got)
		}
	}
}
