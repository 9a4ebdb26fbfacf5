/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontsheet

// Integer is a constraint for all integers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ConvInt 整数类型安全转换
// Examples
//
//	r, ok := ConvInt[rune](0x7E)
//
// output:
//
//	126, true
func ConvInt[OutT Integer, InT Integer](orig InT) (converted OutT, ok bool) {
	converted = OutT(orig)
	if (orig < 0) != (converted < 0) || InT(converted) != orig {
		return 0, false
	}
	return converted, true
}
