package util

import "cmp"

/*
Clamp bounds val to [min, max] for any ordered type. The color derivation
uses it to keep computed RGB channels inside 0..255.
*/
func Clamp[T cmp.Ordered](val, min, max T) T {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
