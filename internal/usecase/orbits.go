package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

// Orbits builds the universal orbit map from "BIG)SMALL" pairs and reports
// the orbit count checksum plus the minimum transfers between the bodies
// that YOU and SAN orbit.
type Orbits struct {
	source ports.InputSource
}

func NewOrbits(src ports.InputSource) *Orbits {
	return &Orbits{source: src}
}

// OrbitMap is the parsed map: each body points at the body it orbits.
type OrbitMap struct {
	parent map[string]string
}

// Execute parses the map at path and writes the full report.
func (uc *Orbits) Execute(ctx context.Context, path string, w io.Writer) error {
	lines, err := uc.source.Lines(path)
	if err != nil {
		return err
	}

	om, err := ParseOrbitMap(lines)
	if err != nil {
		return &domain.OpError{Op: "orbits.parse", Kind: domain.KindParse, Path: path, Err: err}
	}

	fmt.Fprintf(w, "Complete system contains %d bodies\n", om.NumBodies())
	fmt.Fprintf(w, "Number of orbits: %d\n", om.CountOrbits())

	hops, err := om.MinTransfers("YOU", "SAN")
	if err != nil {
		// Many maps have no YOU/SAN entries; the checksum alone is a valid report.
		fmt.Fprintf(w, "No transfer route: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "Minimal transfers from YOU to SAN: %d\n", hops)
	return nil
}

// ParseOrbitMap parses "BIG)SMALL" pairs. Each body may orbit only one other.
func ParseOrbitMap(lines []string) (*OrbitMap, error) {
	om := &OrbitMap{parent: make(map[string]string, len(lines))}

	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), ")", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid orbit specification: %q", line)
		}
		big, small := parts[0], parts[1]
		if prev, ok := om.parent[small]; ok && prev != big {
			return nil, fmt.Errorf("%s orbits both %s and %s", small, prev, big)
		}
		om.parent[small] = big
	}

	// A valid map is a tree rooted at COM; a cycle would stall every walk.
	for body := range om.parent {
		steps := 0
		for cur := body; ; {
			p, ok := om.parent[cur]
			if !ok {
				break
			}
			if steps++; steps > len(om.parent) {
				return nil, fmt.Errorf("orbit cycle involving %s", body)
			}
			cur = p
		}
	}
	return om, nil
}

// NumBodies counts every body mentioned in the map.
func (om *OrbitMap) NumBodies() int {
	seen := make(map[string]struct{}, len(om.parent)+1)
	for small, big := range om.parent {
		seen[small] = struct{}{}
		seen[big] = struct{}{}
	}
	return len(seen)
}

// CountOrbits sums direct and indirect orbits over all bodies.
func (om *OrbitMap) CountOrbits() int {
	total := 0
	for body := range om.parent {
		cur := body
		for {
			p, ok := om.parent[cur]
			if !ok {
				break
			}
			total++
			cur = p
		}
	}
	return total
}

// MinTransfers returns the minimum orbital transfers needed to move from the
// body that `from` orbits to the body that `to` orbits.
func (om *OrbitMap) MinTransfers(from, to string) (int, error) {
	start, ok := om.parent[from]
	if !ok {
		return 0, fmt.Errorf("body %s not in map", from)
	}
	target, ok := om.parent[to]
	if !ok {
		return 0, fmt.Errorf("body %s not in map", to)
	}

	// Walk from start towards COM recording depths, then walk from target
	// until the paths join.
	depth := map[string]int{start: 0}
	for cur, d := start, 0; ; d++ {
		p, ok := om.parent[cur]
		if !ok {
			break
		}
		depth[p] = d + 1
		cur = p
	}

	hops := 0
	for cur := target; ; hops++ {
		if d, ok := depth[cur]; ok {
			return d + hops, nil
		}
		p, ok := om.parent[cur]
		if !ok {
			return 0, fmt.Errorf("no common body between %s and %s", from, to)
		}
		cur = p
	}
}
