package particles

import "math"

// Link is a proximity line between particles A and B.
type Link struct {
	A, B    int
	Opacity float64
}

// Connections returns every pair closer than the policy threshold, with an
// opacity that falls off linearly with the distance measure.
//
// Pairs are reported with A < B, or A <= B when the policy keeps self links.
// The cost is quadratic in len(ps); callers bound n through the count policy.
func Connections(ps []Particle, lp LinkPolicy, width, height float64) []Link {
	limit := lp.limit(width, height)
	falloff := lp.falloff(limit)

	var links []Link
	for a := 0; a < len(ps); a++ {
		start := a + 1
		if lp.IncludeSelf {
			start = a
		}
		for b := start; b < len(ps); b++ {
			dx := ps[a].X - ps[b].X
			dy := ps[a].Y - ps[b].Y
			measure := dx*dx + dy*dy
			if lp.Metric == Euclidean {
				measure = math.Sqrt(measure)
			}
			if measure < limit {
				links = append(links, Link{A: a, B: b, Opacity: opacity(measure, falloff)})
			}
		}
	}
	return links
}

func opacity(measure, falloff float64) float64 {
	if falloff <= 0 {
		return 0
	}
	return clamp01(1 - measure/falloff)
}
