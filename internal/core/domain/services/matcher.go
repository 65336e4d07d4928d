package services

import (
	"math/rand/v2"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"
)

// DriverMatcher suggests candidate drivers for a shipper's open load.
//
// This is an explicit stub interface: the marketplace has no persisted
// ranking model, and no matcher output ever feeds the lifecycle protocol.
// A suggestion is only a shortcut into the same assign-by-shipper operation
// the shipper could reach by picking any driver.
type DriverMatcher interface {
	// Match returns a subset of the candidate drivers for the given load.
	// The returned slice may be empty; it is never an error to have no match.
	Match(l *load.Load, candidates []*profile.Profile) []*profile.Profile
}

// Bounds on how many suggestions a match produces.
const (
	matchMin = 2
	matchMax = 4
)

// RandomMatcher is the one DriverMatcher implementation: a shuffled subset
// of two to four candidates. It stands in for the "AI matching" of the
// marketing copy and is deliberately non-deterministic.
type RandomMatcher struct{}

// NewRandomMatcher creates a RandomMatcher.
func NewRandomMatcher() RandomMatcher {
	return RandomMatcher{}
}

// Match shuffles the candidates and returns between matchMin and matchMax
// of them (fewer when not enough candidates exist). The load is accepted
// for interface completeness; no attribute of it influences the selection.
func (m RandomMatcher) Match(_ *load.Load, candidates []*profile.Profile) []*profile.Profile {
	if len(candidates) == 0 {
		return nil
	}

	shuffled := make([]*profile.Profile, len(candidates))
	copy(shuffled, candidates)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := matchMin + rand.IntN(matchMax-matchMin+1)
	if count > len(shuffled) {
		count = len(shuffled)
	}

	return shuffled[:count]
}
