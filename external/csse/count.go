package csse

import (
	"strconv"
	"strings"
)

// ParseCount coerces a raw cell into a count. It reads the leading integer
// of the cell, so "12.0" is 12. Anything without one, or out of range, is 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil {
		return 0
	}
	return int(n)
}
