package router

import (
	"math"
	"math/rand"
	"testing"
)

func TestExplorationBonusDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for _, count := range []uint64{0, 1, 2, 10, 100, 10000} {
		b := explorationBonus(count, 0.005)
		if b <= 0 {
			t.Errorf("bonus at count=%d is %v, want positive", count, b)
		}
		if b >= prev {
			t.Errorf("bonus at count=%d is %v, not below previous %v", count, b, prev)
		}
		prev = b
	}
}

func TestSamplePosteriorDegenerateVariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// no observations: prior std applies, draw is always finite
	p := newPosteriorState()
	for i := 0; i < 1000; i++ {
		v := samplePosterior(p, 0.01, rng)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite draw %v from empty posterior", v)
		}
	}

	// identical rewards: epsilon floor keeps the draw finite
	q := newPosteriorState()
	for i := 0; i < 20; i++ {
		q.applyReward(0.005, 25)
	}
	for i := 0; i < 1000; i++ {
		v := samplePosterior(q, 0.01, rng)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite draw %v from zero-variance posterior", v)
		}
	}
}

func TestSamplePosteriorTracksMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	hi := newPosteriorState()
	lo := newPosteriorState()
	for i := 0; i < 50; i++ {
		hi.applyReward(0.02+0.001*float64(i%3), 25)
		lo.applyReward(-0.01-0.001*float64(i%3), 25)
	}

	var hiSum, loSum float64
	const draws = 2000
	for i := 0; i < draws; i++ {
		hiSum += samplePosterior(hi, 0.01, rng)
		loSum += samplePosterior(lo, 0.01, rng)
	}

	if hiSum/draws <= loSum/draws {
		t.Errorf("mean draw ordering wrong: hi=%v lo=%v", hiSum/draws, loSum/draws)
	}
}

func TestArgmaxStableTieBreak(t *testing.T) {
	cases := []struct {
		scores []float64
		want   int
	}{
		{[]float64{1, 1, 1}, 0},
		{[]float64{0.5, 1, 1}, 1},
		{[]float64{2, 1, 2}, 0},
		{[]float64{-1}, 0},
		{[]float64{0, 0.1, 0.05}, 1},
	}

	for _, c := range cases {
		if got := argmaxStable(c.scores); got != c.want {
			t.Errorf("argmaxStable(%v) = %d, want %d", c.scores, got, c.want)
		}
	}
}

func TestConfidenceBoundsAndMonotonicity(t *testing.T) {
	for _, count := range []uint64{0, 1, 10, 1000} {
		for _, margin := range []float64{0, 0.001, 0.05, 100} {
			conf := confidenceFor(count, margin)
			if math.IsNaN(conf) || conf < 0 || conf > 1 {
				t.Errorf("confidence(count=%d, margin=%v) = %v outside [0,1]", count, margin, conf)
			}
		}
	}

	// negative margin is clamped, never NaN
	if conf := confidenceFor(5, -1); math.IsNaN(conf) || conf < 0 {
		t.Errorf("confidence with negative margin = %v", confidenceFor(5, -1))
	}

	if confidenceFor(100, 0.01) <= confidenceFor(1, 0.01) {
		t.Error("confidence not increasing in count")
	}
	if confidenceFor(10, 0.1) <= confidenceFor(10, 0.001) {
		t.Error("confidence not increasing in margin")
	}
}
