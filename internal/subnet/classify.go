// Package subnet groups validated hosts into subnets under a mask and
// derives the subnet-to-subnet adjacency from graph edges that cross
// subnet boundaries.
package subnet

import (
	"net/netip"
	"sort"

	"github.com/hopper-dev/hopper/internal/ipnet"
)

// Subnet is one network under the configured mask: a canonical CIDR
// identity, a stable display label, and its member hosts in input order.
type Subnet struct {
	Label   string
	Prefix  netip.Prefix
	Members []ipnet.Host
}

// CIDR returns the subnet identity in network/prefix notation.
func (s *Subnet) CIDR() string {
	return s.Prefix.String()
}

// Classification maps every host to exactly one subnet under a fixed mask.
type Classification struct {
	Mask       ipnet.Mask
	Subnets    []*Subnet // ascending numeric order of network address
	hostSubnet []int     // dense host index -> index into Subnets
	byPrefix   map[netip.Prefix]int
}

// Classify groups hosts by their masked network address. Labels are assigned
// by ascending numeric network order ("Network A", "Network B", ... then
// "Network AA"), so a reordered input file yields identical labels.
func Classify(hosts *ipnet.HostSet, mask ipnet.Mask) *Classification {
	cls := &Classification{
		Mask:       mask,
		hostSubnet: make([]int, hosts.Len()),
		byPrefix:   make(map[netip.Prefix]int),
	}

	members := make(map[netip.Prefix][]ipnet.Host)
	var prefixes []netip.Prefix
	for _, host := range hosts.Hosts() {
		prefix := mask.Network(host)
		if _, ok := members[prefix]; !ok {
			prefixes = append(prefixes, prefix)
		}
		members[prefix] = append(members[prefix], host)
	}

	sort.Slice(prefixes, func(i, j int) bool {
		return prefixes[i].Addr().Compare(prefixes[j].Addr()) < 0
	})

	for i, prefix := range prefixes {
		cls.Subnets = append(cls.Subnets, &Subnet{
			Label:   Label(i),
			Prefix:  prefix,
			Members: members[prefix],
		})
		cls.byPrefix[prefix] = i
	}

	for i, host := range hosts.Hosts() {
		cls.hostSubnet[i] = cls.byPrefix[mask.Network(host)]
	}

	return cls
}

// SubnetIndex returns the subnet index for the host at dense index i.
func (c *Classification) SubnetIndex(i int) int {
	return c.hostSubnet[i]
}

// SubnetOf returns the subnet owning the host at dense index i.
func (c *Classification) SubnetOf(i int) *Subnet {
	return c.Subnets[c.hostSubnet[i]]
}

// Lookup returns the subnet with the given prefix identity.
func (c *Classification) Lookup(prefix netip.Prefix) (*Subnet, bool) {
	i, ok := c.byPrefix[prefix]
	if !ok {
		return nil, false
	}
	return c.Subnets[i], true
}

// Label renders the display label for subnet index i: A through Z, then AA,
// AB and so on (bijective base-26).
func Label(i int) string {
	var letters []byte
	n := i + 1
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return "Network " + string(letters)
}
