package subnet

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hopper-dev/hopper/internal/ipnet"
)

func hostLinesFromCodes(codes []int) []string {
	lines := make([]string, 0, len(codes))
	seen := make(map[string]bool)
	for _, code := range codes {
		// Spread hosts over a handful of /24s so classifications are non-trivial.
		line := fmt.Sprintf("10.%d.%d.%d", code%3, (code/4)%5, code%250+1)
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return lines
}

func TestClassificationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("subnets partition the host set", prop.ForAll(
		func(codes []int, bits int) bool {
			lines := hostLinesFromCodes(codes)
			hosts, _, err := ipnet.ParseHosts(lines)
			if err != nil {
				return len(lines) == 0
			}
			mask, err := ipnet.MaskFromBits(bits)
			if err != nil {
				return false
			}
			cls := Classify(hosts, mask)

			seen := make(map[ipnet.Host]int)
			for _, sub := range cls.Subnets {
				for _, m := range sub.Members {
					seen[m]++
					if mask.Network(m) != sub.Prefix {
						return false
					}
				}
			}
			if len(seen) != hosts.Len() {
				return false
			}
			for _, count := range seen {
				if count != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(15, gen.IntRange(0, 1<<12)),
		gen.IntRange(0, 32),
	))

	properties.Property("labels are invariant under input permutation", prop.ForAll(
		func(codes []int) bool {
			lines := hostLinesFromCodes(codes)
			if len(lines) < 2 {
				return true
			}
			mask, _ := ipnet.MaskFromBits(24)

			forward, _, err := ipnet.ParseHosts(lines)
			if err != nil {
				return false
			}
			reversed := make([]string, len(lines))
			for i, line := range lines {
				reversed[len(lines)-1-i] = line
			}
			backward, _, err := ipnet.ParseHosts(reversed)
			if err != nil {
				return false
			}

			a := Classify(forward, mask)
			b := Classify(backward, mask)
			if len(a.Subnets) != len(b.Subnets) {
				return false
			}
			for i := range a.Subnets {
				if a.Subnets[i].Label != b.Subnets[i].Label ||
					a.Subnets[i].Prefix != b.Subnets[i].Prefix {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(15, gen.IntRange(0, 1<<12)),
	))

	properties.TestingRun(t)
}
