package ipcalc

// Class is the historical classful category of an address, derived from
// its leading bits only. Addresses outside every classful range (0.x,
// the 126/128 gap, 248 and above) are ClassNone.
type Class int

const (
	ClassNone Class = iota
	ClassA
	ClassB
	ClassC
	ClassD
	ClassE
)

// String returns the single-letter class name, or "None" for
// unclassified addresses.
func (c Class) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	case ClassD:
		return "D"
	case ClassE:
		return "E"
	default:
		return "None"
	}
}

// DeriveMask returns the subnet mask with prefix leading one-bits
// followed by zero-bits.
func DeriveMask(prefix int) Mask {
	// Shifting a uint32 by 32 yields 0 in Go, so prefix 0 needs no
	// special case.
	v := ^uint32(0) << (32 - uint(prefix))
	var m Mask
	m[0] = byte(v >> 24)
	m[1] = byte(v >> 16)
	m[2] = byte(v >> 8)
	m[3] = byte(v)
	return m
}

// Mask returns the subnet mask derived from the prefix length.
func (c CIDR) Mask() Mask {
	return DeriveMask(c.Prefix)
}

// Network returns the network address: the per-octet AND of the address
// and the subnet mask.
func (c CIDR) Network() Address {
	return AddressFromUint32(c.Addr.Uint32() & c.Mask().Uint32())
}

// Broadcast returns the broadcast address: the per-octet OR of the
// address and the inverted subnet mask.
func (c CIDR) Broadcast() Address {
	return AddressFromUint32(c.Addr.Uint32() | c.Mask().Invert().Uint32())
}

// FirstUsableHost returns the network address with its last octet
// incremented by one. There is no carry into higher octets, so a
// network ending in .255 yields .256.
func FirstUsableHost(network Address) HostAddress {
	return HostAddress{int(network[0]), int(network[1]), int(network[2]), int(network[3]) + 1}
}

// PenultimateUsableHost returns the broadcast address with its last
// octet decremented by two. There is no borrow from higher octets, so a
// broadcast ending in .0 or .1 yields a negative last octet.
func PenultimateUsableHost(broadcast Address) HostAddress {
	return HostAddress{int(broadcast[0]), int(broadcast[1]), int(broadcast[2]), int(broadcast[3]) - 2}
}

// UsableHostCount returns 2^(32-prefix) - 2, the literal usable host
// formula. It yields 0 for /31 and -1 for /32.
func UsableHostCount(prefix int) int64 {
	return int64(1)<<(32-uint(prefix)) - 2
}

func u32(a, b, c, d byte) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

// Class returns the classful category of the address. The boundaries
// are the historical ones, compared numerically, which is equivalent to
// the zero-padded binary string comparison of the original tables.
func (a Address) Class() Class {
	v := a.Uint32()
	switch {
	case v >= u32(1, 0, 0, 0) && v <= u32(126, 0, 0, 0):
		return ClassA
	case v >= u32(128, 0, 0, 0) && v <= u32(191, 255, 0, 0):
		return ClassB
	case v >= u32(192, 0, 0, 0) && v <= u32(223, 255, 255, 0):
		return ClassC
	case v >= u32(224, 0, 0, 0) && v <= u32(239, 255, 255, 255):
		return ClassD
	case v >= u32(240, 0, 0, 0) && v <= u32(247, 255, 255, 255):
		return ClassE
	default:
		return ClassNone
	}
}

// IsPrivate reports whether the address falls in one of the RFC 1918
// ranges: 10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16.
func (a Address) IsPrivate() bool {
	v := a.Uint32()
	switch {
	case v >= u32(10, 0, 0, 0) && v <= u32(10, 255, 255, 255):
		return true
	case v >= u32(172, 16, 0, 0) && v <= u32(172, 31, 255, 255):
		return true
	case v >= u32(192, 168, 0, 0) && v <= u32(192, 168, 255, 255):
		return true
	default:
		return false
	}
}
