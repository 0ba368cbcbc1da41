package router

import (
	"math"
	"math/rand"
)

// Rewards are continuous basis-point returns, so posterior draws are
// Gaussian: mean is the realized mean reward, std the standard error of the
// observed rewards. Before enough observations the configured prior std
// applies. The Beta-style alpha/beta mass is not sampled from; it feeds
// introspection and confidence only.
func samplePosterior(p *posteriorState, priorStd float64, rng *rand.Rand) float64 {
	std, ok := p.stdErr()
	if !ok {
		std = priorStd
	}
	if std < varianceEps {
		std = varianceEps
	}
	return p.meanReward() + rng.NormFloat64()*std
}

// explorationBonus favors under-sampled policies, shrinking as evidence
// accumulates.
func explorationBonus(count uint64, coeff float64) float64 {
	return coeff / math.Sqrt(float64(count)+1)
}

// confidence grows with how often the winner has been tried and how far it
// beat the runner-up. Both terms saturate, so the result stays in [0,1].
func confidenceFor(count uint64, margin float64) float64 {
	if margin < 0 {
		margin = 0
	}
	countTerm := float64(count) / (float64(count) + 10)
	marginTerm := margin / (margin + 0.01)
	return 0.5*countTerm + 0.5*marginTerm
}

// argmaxStable returns the index of the highest score; exact ties resolve to
// the lowest index, i.e. registration order.
func argmaxStable(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
