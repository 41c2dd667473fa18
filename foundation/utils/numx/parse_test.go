// File: parse_test.go
// Title: Unit Tests for Integer Parsing
// Description: Tests for Int, Int64, Uint64, Scan and ScanUint covering
//              defaults, prefixes, ranges and end positions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package numx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		base     int
		expected int
	}{
		{"decimal", "13", 10, 13},
		{"empty", "", 10, -1},
		{"not a number", "notanumber", 10, -1},
		{"leading space", "  \t42", 10, 42},
		{"trailing garbage", "42 apples", 10, 42},
		{"plus sign", "+7", 10, 7},
		{"minus sign", "-7", 10, -7},
		{"sign only", "-", 10, -1},
		{"space only", "   ", 10, -1},
		{"hex with prefix", "0x1F", 16, 31},
		{"hex without prefix", "ff", 16, 255},
		{"base zero hex", "0X1f", 0, 31},
		{"base zero octal", "017", 0, 15},
		{"base zero decimal", "17", 0, 17},
		{"base zero bare zero", "0", 0, 0},
		{"hex prefix without digits", "0xg", 16, 0},
		{"octal stops at 9", "019", 0, 1},
		{"binary", "1011", 2, 11},
		{"base 36", "zz", 36, 1295},
		{"invalid base", "10", 1, -1},
		{"base too large", "10", 37, -1},
		{"digit outside base", "9", 8, -1},
		{"embedded NUL", "12\x0034", 10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Int(tt.input, tt.base, -1); result != tt.expected {
				t.Errorf("Int(%q, %d, -1) = %d; want %d", tt.input, tt.base, result, tt.expected)
			}
		})
	}
}

func TestInt64Range(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"max", "9223372036854775807", math.MaxInt64},
		{"min", "-9223372036854775808", math.MinInt64},
		{"above max", "9223372036854775808", 99},
		{"below min", "-9223372036854775809", 99},
		{"beyond uint64", "123456789012345678901234567890", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Int64(tt.input, 10, 99); result != tt.expected {
				t.Errorf("Int64(%q, 10, 99) = %d; want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestUint64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{"max", "18446744073709551615", math.MaxUint64},
		{"overflow", "18446744073709551616", 7},
		{"negative", "-1", 7},
		{"negative zero", "-0", 0},
		{"hex", "0xff", 255},
		{"empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := 10
			if tt.name == "hex" {
				base = 0
			}
			if result := Uint64(tt.input, base, 7); result != tt.expected {
				t.Errorf("Uint64(%q, %d, 7) = %d; want %d", tt.input, base, result, tt.expected)
			}
		})
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		base    int
		bitSize int
		value   int64
		end     int
		code    mdwerror.Code
	}{
		{"plain", "123", 10, 64, 123, 3, ""},
		{"end before garbage", " -45xyz", 10, 64, -45, 4, ""},
		{"no digits", "abc", 10, 64, 0, 0, mdwerror.CodeInvalidFormat},
		{"sign without digits", "+ 1", 10, 64, 0, 0, mdwerror.CodeInvalidFormat},
		{"int8 max", "127", 10, 8, 127, 3, ""},
		{"int8 overflow", "128", 10, 8, 127, 3, mdwerror.CodeValueOutOfRange},
		{"int8 underflow", "-129", 10, 8, -128, 4, mdwerror.CodeValueOutOfRange},
		{"int8 min", "-128", 10, 8, -128, 4, ""},
		{"bad base", "1", 99, 64, 0, 0, mdwerror.CodeInvalidInput},
		{"bad bit size", "1", 10, 65, 0, 0, mdwerror.CodeInvalidInput},
		{"hex end", "0x10;", 0, 64, 16, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, end, err := Scan(tt.input, tt.base, tt.bitSize)
			if value != tt.value || end != tt.end {
				t.Errorf("Scan(%q) = %d, %d; want %d, %d", tt.input, value, end, tt.value, tt.end)
			}
			if tt.code == "" {
				if err != nil {
					t.Errorf("Scan(%q) error = %v; want nil", tt.input, err)
				}
				return
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Scan(%q) error = %v; want code %s", tt.input, err, tt.code)
			}
		})
	}
}

func TestScanUint(t *testing.T) {
	value, end, err := ScanUint("300", 10, 8)
	if value != 255 || end != 3 || !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("ScanUint(300, 8 bit) = %d, %d, %v", value, end, err)
	}

	value, end, err = ScanUint("0x7f rest", 0, 8)
	if value != 127 || end != 4 || err != nil {
		t.Errorf("ScanUint(0x7f) = %d, %d, %v", value, end, err)
	}
}
