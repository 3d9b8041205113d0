package baseconv

import (
	"fmt"

	"txtcli/pkg/contracts/domain"
)

const digits = "0123456789ABCDEF"

// ToBase renders n in the given base (2 to 16) as a sign and the digits of
// its magnitude. Zero is "0". This is not a two's complement encoding.
func ToBase(n int64, base int) string {
	if base < 2 || base > len(digits) {
		panic(fmt.Sprintf("baseconv: unsupported base %d", base))
	}
	if n == 0 {
		return "0"
	}

	// uint64 holds the magnitude of math.MinInt64
	mag := uint64(n)
	if n < 0 {
		mag = -mag
	}

	var buf [65]byte
	i := len(buf)
	b := uint64(base)
	for mag > 0 {
		i--
		buf[i] = digits[mag%b]
		mag /= b
	}
	if n < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Binary renders n in base 2
func Binary(n int64) string {
	return ToBase(n, 2)
}

// Hex renders n in base 16 with upper-case digits
func Hex(n int64) string {
	return ToBase(n, 16)
}

// Convert produces the conversion line of n
func Convert(n int64) domain.ConversionLine {
	return domain.ConversionLine{
		Value:  n,
		Binary: Binary(n),
		Hex:    Hex(n),
	}
}

// Format renders a conversion line in the report layout
func Format(line domain.ConversionLine) string {
	return fmt.Sprintf("%-15s %-20s %s",
		fmt.Sprintf("Number: %d", line.Value),
		"Binary: "+line.Binary,
		"Hexadecimal: "+line.Hex,
	)
}
