// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// TruncateToInt16 drops the fractional part of x (rounding toward zero) and
// saturates at the int16 range. NaN maps to 0.
func TruncateToInt16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt16:
		return math.MaxInt16
	case x <= math.MinInt16:
		return math.MinInt16
	}
	return int16(x)
}

// TruncateToInt32 is the int32 counterpart of TruncateToInt16.
func TruncateToInt32(x float64) int32 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int32(x)
}
