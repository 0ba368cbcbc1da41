package router

import (
	"math"
	"testing"
)

func TestScaleRewardBounded(t *testing.T) {
	cases := []struct {
		reward float64
		k      float64
		want   float64
	}{
		{0, 25, 0},
		{0.004, 25, 0.1},
		{-0.004, 25, 0.1},
		{1000, 25, 1},
		{-1000, 25, 1},
	}

	for _, c := range cases {
		got := scaleReward(c.reward, c.k)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("scaleReward(%v, %v) = %v, want %v", c.reward, c.k, got, c.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("scaleReward(%v, %v) = %v outside [0,1]", c.reward, c.k, got)
		}
	}
}

func TestApplyReward(t *testing.T) {
	p := newPosteriorState()

	p.applyReward(0.004, 25)
	if p.count != 1 {
		t.Fatalf("count = %d, want 1", p.count)
	}
	if math.Abs(p.alpha-1.1) > 1e-12 {
		t.Errorf("alpha = %v, want 1.1", p.alpha)
	}
	if p.beta != 1 {
		t.Errorf("beta = %v, want 1 after positive reward", p.beta)
	}
	if math.Abs(p.meanReward()-0.004) > 1e-12 {
		t.Errorf("meanReward = %v, want 0.004", p.meanReward())
	}

	p.applyReward(-0.008, 25)
	if p.count != 2 {
		t.Fatalf("count = %d, want 2", p.count)
	}
	if math.Abs(p.beta-1.2) > 1e-12 {
		t.Errorf("beta = %v, want 1.2 after negative reward", p.beta)
	}

	// zero reward goes to the loss side with zero mass
	beta := p.beta
	p.applyReward(0, 25)
	if p.beta != beta {
		t.Errorf("beta moved on zero reward: %v -> %v", beta, p.beta)
	}
	if p.count != 3 {
		t.Errorf("count = %d, want 3", p.count)
	}

	if p.alpha <= 0 || p.beta <= 0 {
		t.Errorf("posterior invariant violated: alpha=%v beta=%v", p.alpha, p.beta)
	}
}

func TestMeanRewardEmpty(t *testing.T) {
	p := newPosteriorState()
	if p.meanReward() != 0 {
		t.Errorf("meanReward on empty posterior = %v, want 0", p.meanReward())
	}
}

func TestStdErr(t *testing.T) {
	p := newPosteriorState()

	if _, ok := p.stdErr(); ok {
		t.Error("stdErr defined with zero observations")
	}

	p.applyReward(0.01, 25)
	if _, ok := p.stdErr(); ok {
		t.Error("stdErr defined with one observation")
	}

	p.applyReward(0.03, 25)
	got, ok := p.stdErr()
	if !ok {
		t.Fatal("stdErr undefined with two observations")
	}
	// sample std of {0.01, 0.03} is sqrt(2)*0.01; shrunk by sqrt(2)
	want := 0.01
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("stdErr = %v, want %v", got, want)
	}

	// identical rewards: variance floored, never zero or negative
	q := newPosteriorState()
	for i := 0; i < 10; i++ {
		q.applyReward(0.005, 25)
	}
	se, ok := q.stdErr()
	if !ok || se <= 0 || math.IsNaN(se) {
		t.Errorf("degenerate stdErr = %v (ok=%v), want small positive", se, ok)
	}
}
