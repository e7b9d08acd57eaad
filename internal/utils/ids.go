package utils

import "strconv"

// ParseUint converts a string to a uint identifier. It returns the parsed
// value and true on success, or 0 and false when the string is empty, not a
// number, or negative.
//
// Example:
//
//	id, ok := utils.ParseUint("42") // 42, true
//	id, ok = utils.ParseUint("-1")  // 0, false
func ParseUint(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
