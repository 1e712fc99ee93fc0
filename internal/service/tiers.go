package service

import (
	"math"
	"math/rand"
	"sort"
)

// ClassifyTiers partitions scores into top/middle/low bands.
//
// Scores are ranked descending by average. The top band takes
// ceil(topPct/100 * n) entries and the middle band the next
// ceil(midPct/100 * n); the low band is whatever remains, never an
// independent ceil cut, so the three bands always partition the input
// exactly even when the percentages do not sum to 100. Each band is then
// shuffled independently so reviewers are not anchored by relative rank
// among near-peers. Band membership is unaffected by the shuffle.
//
// Ties on average have no defined secondary order; equal scores keep their
// incoming relative order within one call.
func ClassifyTiers(scores []CandidateScore, topPct, midPct float64, rng *rand.Rand) TierAssignment {
	ranked := make([]CandidateScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageScore > ranked[j].AverageScore
	})

	n := len(ranked)
	topCount := percentileCut(topPct, n)
	midCount := percentileCut(midPct, n)

	topEnd := min(topCount, n)
	midEnd := min(topEnd+midCount, n)

	tiers := TierAssignment{
		Top:    ranked[:topEnd],
		Middle: ranked[topEnd:midEnd],
		Low:    ranked[midEnd:],
	}

	shuffleBand(tiers.Top, rng)
	shuffleBand(tiers.Middle, rng)
	shuffleBand(tiers.Low, rng)

	return tiers
}

func percentileCut(pct float64, n int) int {
	return int(math.Ceil(pct / 100.0 * float64(n)))
}

// shuffleBand applies a Fisher-Yates permutation. A comparator-based
// pseudo-shuffle would have undefined order; rand.Shuffle is a true
// permutation and reproducible from a seeded source in tests.
func shuffleBand(band []CandidateScore, rng *rand.Rand) {
	rng.Shuffle(len(band), func(i, j int) {
		band[i], band[j] = band[j], band[i]
	})
}
