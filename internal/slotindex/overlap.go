package slotindex

import (
	"sort"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type edge struct {
	at    time.Time
	delta int
}

// peakOverlap returns the largest number of stays occupying a lane at the same
// moment inside window. A stay ending exactly when another starts does not
// count as overlapping.
func peakOverlap(stays []domain.StayInterval, window domain.StayInterval) int {
	edges := make([]edge, 0, len(stays)*2)
	for _, s := range stays {
		if !s.Overlaps(window) {
			continue
		}
		start, end := s.CheckIn, s.CheckOut
		if start.Before(window.CheckIn) {
			start = window.CheckIn
		}
		if end.After(window.CheckOut) {
			end = window.CheckOut
		}
		edges = append(edges, edge{at: start, delta: 1}, edge{at: end, delta: -1})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at.Equal(edges[j].at) {
			return edges[i].delta < edges[j].delta
		}
		return edges[i].at.Before(edges[j].at)
	})

	cur, peak := 0, 0
	for _, e := range edges {
		cur += e.delta
		if cur > peak {
			peak = cur
		}
	}
	return peak
}
