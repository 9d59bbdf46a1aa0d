package utils

import (
	"strconv"
	"strings"
)

// maxDigits keeps ParseDigits inside int32 so values are safe to hand to postgres.
const maxDigits = 9

// ParseDigits accepts only a non-empty run of ASCII digits (no sign, no spaces)
// whose value has at most nine significant digits. Leading zeros are ignored.
func ParseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	significant := strings.TrimLeft(s, "0")
	if significant == "" {
		return 0, true
	}
	if len(significant) > maxDigits {
		return 0, false
	}
	n, err := strconv.Atoi(significant)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseID parses a path id as a 32-bit signed integer.
func ParseID(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
