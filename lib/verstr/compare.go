package verstr

import "strings"

func compare(left, right string) int {
	originalLeft, originalRight := left, right
	for left != "" && right != "" {
		var leftToken, rightToken string
		leftToken, left = nextToken(left)
		rightToken, right = nextToken(right)
		if result := compareTokens(leftToken, rightToken); result != 0 {
			return result
		}
	}
	if left == "" && right != "" {
		return -1
	}
	if left != "" && right == "" {
		return 1
	}
	return strings.Compare(originalLeft, originalRight)
}

func compareTokens(left, right string) int {
	if !isDigit(left[0]) || !isDigit(right[0]) {
		return strings.Compare(left, right)
	}
	left = strings.TrimLeft(left, "0")
	right = strings.TrimLeft(right, "0")
	if len(left) < len(right) {
		return -1
	}
	if len(left) > len(right) {
		return 1
	}
	return strings.Compare(left, right)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// nextToken splits off the leading run of digits or non-digits.
func nextToken(str string) (string, string) {
	digits := isDigit(str[0])
	index := 1
	for ; index < len(str); index++ {
		if isDigit(str[index]) != digits {
			break
		}
	}
	return str[:index], str[index:]
}
