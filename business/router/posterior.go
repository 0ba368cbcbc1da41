package router

import "math"

const varianceEps = 1e-9

// Per-policy sufficient statistics. alpha/beta tally bounded win/loss mass
// for introspection and confidence; count/sumReward/sumRewardSq back the
// Gaussian sampling path.
type posteriorState struct {
	alpha       float64
	beta        float64
	count       uint64
	sumReward   float64
	sumRewardSq float64
}

// Uninformative prior: Beta(1,1), no observations.
func newPosteriorState() *posteriorState {
	return &posteriorState{alpha: 1, beta: 1}
}

// scaleReward maps a basis-point reward onto a bounded increment so a single
// extreme fill cannot swamp the posterior.
func scaleReward(r, k float64) float64 {
	inc := math.Abs(r) * k
	if inc > 1 {
		return 1
	}
	return inc
}

func (p *posteriorState) applyReward(r, k float64) {
	p.count++
	p.sumReward += r
	p.sumRewardSq += r * r
	if r > 0 {
		p.alpha += scaleReward(r, k)
	} else {
		p.beta += scaleReward(r, k)
	}
}

func (p *posteriorState) meanReward() float64 {
	if p.count == 0 {
		return 0
	}
	return p.sumReward / float64(p.count)
}

// stdErr is the sample standard deviation of observed rewards shrunk by
// sqrt(count). Undefined below two observations; callers fall back to the
// configured prior std.
func (p *posteriorState) stdErr() (float64, bool) {
	if p.count < 2 {
		return 0, false
	}
	n := float64(p.count)
	mean := p.sumReward / n
	variance := (p.sumRewardSq - n*mean*mean) / (n - 1)
	if variance < varianceEps {
		variance = varianceEps
	}
	return math.Sqrt(variance / n), true
}
