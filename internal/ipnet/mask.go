package ipnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// Mask is an IPv4 subnet mask normalized to a prefix length. Both the
// dotted-quad form ("255.255.255.0") and the prefix form ("24" or "/24")
// parse to the same Mask value.
type Mask struct {
	bits int
}

// MaskFromBits builds a mask from a prefix length in [0,32].
func MaskFromBits(n int) (Mask, error) {
	if n < 0 || n > 32 {
		return Mask{}, fmt.Errorf("prefix length %d out of range [0,32]", n)
	}
	return Mask{bits: n}, nil
}

// ParseMask accepts a dotted-quad mask or a prefix length with or without a
// leading slash. Non-contiguous dotted-quad masks are rejected.
func ParseMask(raw string) (Mask, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Mask{}, fmt.Errorf("empty subnet mask")
	}

	if strings.Contains(s, ".") {
		addr, err := netip.ParseAddr(s)
		if err != nil || !addr.Is4() {
			return Mask{}, fmt.Errorf("invalid subnet mask %q", raw)
		}
		quad := addr.As4()
		v := uint32(quad[0])<<24 | uint32(quad[1])<<16 | uint32(quad[2])<<8 | uint32(quad[3])
		ones := bits.OnesCount32(v)
		if v != prefixValue(ones) {
			return Mask{}, fmt.Errorf("non-contiguous subnet mask %q", raw)
		}
		return Mask{bits: ones}, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(s, "/"))
	if err != nil {
		return Mask{}, fmt.Errorf("invalid subnet mask %q", raw)
	}
	return MaskFromBits(n)
}

func prefixValue(ones int) uint32 {
	if ones == 0 {
		return 0
	}
	return ^uint32(0) << (32 - ones)
}

// Bits returns the prefix length.
func (m Mask) Bits() int {
	return m.bits
}

// Network applies the mask to a host, yielding its canonical subnet prefix.
func (m Mask) Network(h Host) netip.Prefix {
	return netip.PrefixFrom(h.Addr, m.bits).Masked()
}

// String renders the mask in dotted-quad form regardless of how it was
// parsed, so repeated runs report one canonical representation.
func (m Mask) String() string {
	v := prefixValue(m.bits)
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
