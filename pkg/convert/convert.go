// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package convert provides fault-tolerant conversions for scraped metric strings
and query parameters.

Scraped values arrive in Indonesian formatting ("2,5" for 2.5, "1.234" for
1234), so the decimal and grouping helpers here accept both separators.
Callers that must distinguish malformed input from zero use the (value, ok)
variants.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
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

// Decimal parses a number that may use ',' as its decimal separator.
//
// Infinities and NaN are rejected so callers can sort on the result.
func Decimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// GroupedInt parses an integer written with '.' or ',' thousands separators ("12.345").
func GroupedInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	stripped := strings.NewReplacer(".", "", ",", "").Replace(s)
	v, err := strconv.Atoi(stripped)
	if err != nil {
		return 0, false
	}

	return v, true
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
