// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Every helper returns a caller-chosen fallback instead of an error, which is
exactly what the artist criteria need: a malformed threshold is treated as
"no constraint", never as a bad request.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if the string is empty or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToFloat64D converts a string to a float64, returning def if the string is empty or malformed.
func ToFloat64D(str string, def float64) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.ParseFloat(str, 64); err == nil {
		return v
	}
	return def
}

// ToBool parses "true", "1", "false", "0" and friends. Anything else is false.
func ToBool(str string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(str))
	return v
}
