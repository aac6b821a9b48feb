// Package ipnet provides validated IPv4 host values, subnet masks, and the
// ordered host set the rest of the pipeline is built on.
package ipnet

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/hopper-dev/hopper/internal/diag"
)

// ErrEmptyHostSet is returned when validation leaves no usable hosts.
var ErrEmptyHostSet = errors.New("no valid hosts after validation")

// Host is a validated IPv4 address. Hosts are value-equal by address and
// print in canonical dotted-quad form.
type Host struct {
	Addr netip.Addr
}

func (h Host) String() string {
	return h.Addr.String()
}

// Less reports whether h orders before other by numeric address.
func (h Host) Less(other Host) bool {
	return h.Addr.Compare(other.Addr) < 0
}

// ParseHost validates a raw string as an IPv4 dotted quad: four octets in
// [0,255], no surrounding garbage, no IPv6 forms.
func ParseHost(raw string) (Host, error) {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return Host{}, fmt.Errorf("not a valid IPv4 address")
	}
	if !addr.Is4() {
		return Host{}, fmt.Errorf("not an IPv4 address")
	}
	return Host{Addr: addr}, nil
}

// HostSet is a deduplicated collection of hosts that preserves input
// insertion order and maps each host to a dense index. The indices are the
// arena the graph and subnet classification are keyed by.
type HostSet struct {
	hosts []Host
	index map[Host]int
}

// ParseHosts validates raw host records in order. Invalid records and
// duplicates produce diagnostics and are skipped; the run only fails when no
// valid host remains.
func ParseHosts(lines []string) (*HostSet, []diag.Diagnostic, error) {
	set := &HostSet{index: make(map[Host]int)}
	var diags []diag.Diagnostic

	for i, line := range lines {
		host, err := ParseHost(line)
		if err != nil {
			diags = append(diags, diag.Errorf(i+1, line, diag.InvalidHost, "%v", err))
			continue
		}
		if _, ok := set.index[host]; ok {
			diags = append(diags, diag.Warnf(i+1, line, diag.DuplicateHost, "duplicate host entry dropped"))
			continue
		}
		set.index[host] = len(set.hosts)
		set.hosts = append(set.hosts, host)
	}

	if len(set.hosts) == 0 {
		return nil, diags, ErrEmptyHostSet
	}
	return set, diags, nil
}

// Len returns the number of hosts.
func (s *HostSet) Len() int {
	return len(s.hosts)
}

// At returns the host at dense index i.
func (s *HostSet) At(i int) Host {
	return s.hosts[i]
}

// Hosts returns all hosts in input insertion order. The returned slice must
// not be mutated.
func (s *HostSet) Hosts() []Host {
	return s.hosts
}

// Index returns the dense index of h and whether h is a member.
func (s *HostSet) Index(h Host) (int, bool) {
	i, ok := s.index[h]
	return i, ok
}
