// File: parse.go
// Title: Integer Parsing with Defaults
// Description: Implements Scan, ScanUint and the defaulting wrappers Int,
//              Int64 and Uint64.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package numx

import (
	"strconv"

	mdwerrors "github.com/msto63/boundstr/foundation/core/errors"
)

// Int parses s in base and returns dfl when s holds no usable int.
func Int(s string, base int, dfl int) int {
	v, _, err := Scan(s, base, strconv.IntSize)
	if err != nil {
		return dfl
	}
	return int(v)
}

// Int64 is the 64-bit variant of Int.
func Int64(s string, base int, dfl int64) int64 {
	v, _, err := Scan(s, base, 64)
	if err != nil {
		return dfl
	}
	return v
}

// Uint64 parses an unsigned value and returns dfl when s holds none.
func Uint64(s string, base int, dfl uint64) uint64 {
	v, _, err := ScanUint(s, base, 64)
	if err != nil {
		return dfl
	}
	return v
}

// Scan parses a signed integer of bitSize bits (0 means int) from the start
// of s and returns the value and the index just past the last digit.
//
// Without digits Scan returns 0, end 0 and an INVALID_FORMAT error. A value
// that does not fit returns the nearest limit, the end position and a
// VALUE_OUT_OF_RANGE error. A bad base or bitSize returns INVALID_INPUT.
func Scan(s string, base, bitSize int) (int64, int, error) {
	bitSize, err := checkArgs("scan", base, bitSize)
	if err != nil {
		return 0, 0, err
	}

	neg, u, end, err := scan("scan", s, base)
	if err != nil && end == 0 {
		return 0, 0, err
	}
	overflow := err != nil

	limit := uint64(1) << uint(bitSize-1)
	if neg {
		if overflow || u > limit {
			return int64(-limit), end, mdwerrors.OutOfRange(mdwerrors.ModuleNumx, "scan", s[:end])
		}
		return int64(-u), end, nil
	}
	if overflow || u > limit-1 {
		return int64(limit - 1), end, mdwerrors.OutOfRange(mdwerrors.ModuleNumx, "scan", s[:end])
	}
	return int64(u), end, nil
}

// ScanUint is Scan for unsigned values. A minus sign is accepted only in
// front of zero.
func ScanUint(s string, base, bitSize int) (uint64, int, error) {
	bitSize, err := checkArgs("scan_uint", base, bitSize)
	if err != nil {
		return 0, 0, err
	}

	neg, u, end, err := scan("scan_uint", s, base)
	if err != nil && end == 0 {
		return 0, 0, err
	}
	overflow := err != nil

	if neg && (overflow || u != 0) {
		return 0, end, mdwerrors.OutOfRange(mdwerrors.ModuleNumx, "scan_uint", s[:end])
	}
	limit := uint64(1)<<uint(bitSize) - 1
	if overflow || u > limit {
		return limit, end, mdwerrors.OutOfRange(mdwerrors.ModuleNumx, "scan_uint", s[:end])
	}
	return u, end, nil
}

func checkArgs(op string, base, bitSize int) (int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleNumx, op, base, "base 0 or 2..36")
	}
	if bitSize == 0 {
		bitSize = strconv.IntSize
	}
	if bitSize < 1 || bitSize > 64 {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleNumx, op, bitSize, "bit size 0..64")
	}
	return bitSize, nil
}

// scan locates the sign, prefix and digit run of s and converts the digits
// to a magnitude. end is 0 when no digits were found. A non-nil error with a
// non-zero end means the magnitude overflowed uint64.
func scan(op, s string, base int) (neg bool, u uint64, end int, err error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	switch {
	case (base == 0 || base == 16) && hasHexPrefix(s[i:]):
		base = 16
		i += 2
	case base == 0 && i < len(s) && s[i] == '0':
		base = 8
	case base == 0:
		base = 10
	}

	start := i
	for i < len(s) && digitVal(s[i]) < base {
		i++
	}
	if i == start {
		return false, 0, 0, mdwerrors.InvalidFormat(mdwerrors.ModuleNumx, op, s, "integer in base "+strconv.Itoa(base))
	}

	// the run holds only valid digits, so ParseUint can fail only on range
	u, err = strconv.ParseUint(s[start:i], base, 64)
	return neg, u, i, err
}

func hasHexPrefix(s string) bool {
	return len(s) >= 3 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && digitVal(s[2]) < 16
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
