// Package ipcalc computes IPv4 subnet properties from CIDR notation.
// All types are immutable values and all operations are pure functions,
// so the package is safe to use from any number of goroutines.
package ipcalc

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Address is a validated IPv4 address as four octets in network order.
type Address [4]byte

// AddressFromUint32 builds an Address from a big-endian 32-bit value.
func AddressFromUint32(v uint32) Address {
	var a Address
	binary.BigEndian.PutUint32(a[:], v)
	return a
}

// Uint32 returns the address as a big-endian 32-bit value.
func (a Address) Uint32() uint32 {
	return binary.BigEndian.Uint32(a[:])
}

// String returns the address in dotted decimal notation.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Binary returns the address as four dot-separated 8-bit groups,
// e.g. "11000000.10101000.00000001.00001111".
func (a Address) Binary() string {
	return formatBinary(a[:])
}

// Mask is an IPv4 subnet mask as four octets in network order.
type Mask [4]byte

// Uint32 returns the mask as a big-endian 32-bit value.
func (m Mask) Uint32() uint32 {
	return binary.BigEndian.Uint32(m[:])
}

// Invert returns the bitwise complement of the mask (the wildcard mask).
func (m Mask) Invert() Mask {
	var inv Mask
	binary.BigEndian.PutUint32(inv[:], ^m.Uint32())
	return inv
}

// String returns the mask in dotted decimal notation.
func (m Mask) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", m[0], m[1], m[2], m[3])
}

// Binary returns the mask as four dot-separated 8-bit groups,
// e.g. "11111111.11111111.11111111.00000000".
func (m Mask) Binary() string {
	return formatBinary(m[:])
}

// HostAddress is a host address produced by the first/penultimate usable
// host arithmetic. The last octet is incremented or decremented without
// carrying into higher octets, so for edge prefixes it can fall outside
// [0,255]; String formats whatever the arithmetic produced.
type HostAddress [4]int

// String returns the host address in dotted decimal notation.
func (h HostAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", h[0], h[1], h[2], h[3])
}

// CIDR is a validated address/prefix pair. It is only constructed by
// Parse, so derivation methods never re-validate their receiver.
type CIDR struct {
	Addr   Address
	Prefix int
}

// String returns the pair in "a.b.c.d/p" notation.
func (c CIDR) String() string {
	return fmt.Sprintf("%s/%d", c.Addr, c.Prefix)
}

func formatBinary(octets []byte) string {
	groups := make([]string, len(octets))
	for i, o := range octets {
		groups[i] = fmt.Sprintf("%08b", o)
	}
	return strings.Join(groups, ".")
}
