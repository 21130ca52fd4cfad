/*
Package verstr compares strings containing version numbers.

Strings are split into runs of digits and runs of non-digits. Digit runs are
compared numerically and other runs are compared lexically, so "os-v9" sorts
before "os-v10".
*/
package verstr

// Compare returns a negative number if left sorts before right, zero if they
// are identical and a positive number otherwise. Strings which differ only in
// leading zeros are ordered lexically, so Compare is zero only for identical
// strings.
func Compare(left, right string) int {
	return compare(left, right)
}
