package ipcalc

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrFormat reports a raw address that does not match the
	// ###.###.###.###/## form: wrong dot count, non-numeric fields,
	// octets outside [0,255] or a prefix outside [0,32].
	ErrFormat = errors.New("invalid address format")

	// ErrMissingPrefix reports a raw address whose four octet fields
	// are all decimal but which carries no /prefix part.
	ErrMissingPrefix = errors.New("missing prefix")
)

// Parse validates a raw CIDR string and returns the address/prefix pair.
// The input must match the exact token form "a.b.c.d/p": three dots, one
// slash, four decimal octet fields in [0,255] and a decimal prefix in
// [0,32]. No whitespace is trimmed. Leading zeros in a field are
// accepted ("010" parses as 10).
//
// An input with no slash whose four dot-separated fields are all decimal
// digit strings fails with ErrMissingPrefix; every other violation fails
// with ErrFormat.
func Parse(raw string) (CIDR, error) {
	if strings.Count(raw, ".") != 3 {
		return CIDR{}, ErrFormat
	}

	slash := strings.IndexByte(raw, '/')
	if slash < 0 {
		// Only digit-ness is checked here, not the octet range: the
		// missing-prefix diagnostic fires for any all-numeric input
		// without a slash, even one like 999.1.2.3.
		for _, field := range strings.Split(raw, ".") {
			if !isDecimal(field) {
				return CIDR{}, ErrFormat
			}
		}
		return CIDR{}, ErrMissingPrefix
	}

	// Everything after the first slash is the prefix field. A second
	// slash makes it non-decimal and fails below.
	prefixField := raw[slash+1:]
	if !isDecimal(prefixField) {
		return CIDR{}, ErrFormat
	}
	prefix, err := strconv.Atoi(prefixField)
	if err != nil || prefix < 0 || prefix > 32 {
		return CIDR{}, ErrFormat
	}

	fields := strings.Split(raw[:slash], ".")
	if len(fields) != 4 {
		return CIDR{}, ErrFormat
	}

	var addr Address
	for i, field := range fields {
		if !isDecimal(field) {
			return CIDR{}, ErrFormat
		}
		octet, err := strconv.Atoi(field)
		if err != nil || octet < 0 || octet > 255 {
			return CIDR{}, ErrFormat
		}
		addr[i] = byte(octet)
	}

	return CIDR{Addr: addr, Prefix: prefix}, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
