package router

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"tradeRouter/domain"
	"tradeRouter/pkg/logger"

	"gorm.io/datatypes"
)

// RouterService is the shared, long-lived policy selection engine. It is
// invoked concurrently by independent trading loops; a single coarse RWMutex
// guards the posterior map, the weight table and the last-choice slot, which
// keeps the scoring pass consistent (no torn reads of a policy mid-update)
// at O(#policies) cost.
type RouterService struct {
	mu  sync.RWMutex
	cfg Config

	policies   []string
	posteriors map[string]*posteriorState
	weights    map[string]float64
	rng        *rand.Rand

	lastChoice     *domain.Choice
	lastContext    domain.Context
	totalDecisions uint64

	eventRepo RewardEventRepository
}

// NewRouterService registers the candidate policies with uninformative
// priors. The registry is closed from here on. eventRepo may be nil (no
// durable event log); rng may be nil (time-seeded PRNG) — tests inject a
// seeded one.
func NewRouterService(policies []string, cfg Config, eventRepo RewardEventRepository, rng *rand.Rand) (*RouterService, error) {
	if len(policies) == 0 {
		return nil, fmt.Errorf("policy registry is empty")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	posteriors := make(map[string]*posteriorState, len(policies))
	registered := make([]string, 0, len(policies))
	for _, id := range policies {
		if id == "" {
			return nil, fmt.Errorf("empty policy id in registry")
		}
		if _, dup := posteriors[id]; dup {
			return nil, fmt.Errorf("duplicate policy id %q", id)
		}
		posteriors[id] = newPosteriorState()
		registered = append(registered, id)
	}

	return &RouterService{
		cfg:        cfg,
		policies:   registered,
		posteriors: posteriors,
		weights:    defaultFeatureWeights(),
		rng:        rng,
		eventRepo:  eventRepo,
	}, nil
}

// ChoosePolicy scores every registered policy against the supplied market
// context and returns the winner. Exact ties go to the earliest-registered
// policy. The scoring pass, the last-choice slot and the decision counter
// all update under one critical section.
func (s *RouterService) ChoosePolicy(ctx context.Context, mktCtx domain.Context) (domain.Choice, error) {
	if err := validateContext(mktCtx); err != nil {
		return domain.Choice{}, err
	}

	s.mu.Lock()

	scores := make([]float64, len(s.policies))
	bonuses := make([]float64, len(s.policies))
	for i, id := range s.policies {
		p := s.posteriors[id]
		sampled := samplePosterior(p, s.cfg.PriorStd, s.rng)
		adjust := contextAdjust(id, mktCtx, s.weights, s.cfg.HeuristicBonus)
		bonuses[i] = explorationBonus(p.count, s.cfg.ExploreCoeff)
		scores[i] = sampled + adjust + bonuses[i]
	}

	best := argmaxStable(scores)
	margin := 0.0
	if len(scores) > 1 {
		runnerUp := math.Inf(-1)
		for i, sc := range scores {
			if i != best && sc > runnerUp {
				runnerUp = sc
			}
		}
		margin = scores[best] - runnerUp
	}

	winner := s.policies[best]
	choice := domain.Choice{
		PolicyID:         winner,
		Score:            scores[best],
		ExplorationBonus: bonuses[best],
		Confidence:       confidenceFor(s.posteriors[winner].count, margin),
		Timestamp:        time.Now(),
	}

	s.lastChoice = &choice
	s.lastContext = copyContext(mktCtx)
	s.totalDecisions++

	s.mu.Unlock()

	RouterDecisionsTotal.WithLabelValues(winner).Inc()

	logger.Debug("router_choose",
		"trace_id", TraceIDFromContext(ctx),
		"policy_id", winner,
		"score", choice.Score,
		"exploration_bonus", choice.ExplorationBonus,
		"confidence", choice.Confidence,
	)

	return choice, nil
}

// UpdatePolicy folds an externally scored reward into one policy's posterior
// and, when enabled, nudges the contextual weights. Validation happens before
// any mutation; a rejected update leaves the router untouched.
func (s *RouterService) UpdatePolicy(ctx context.Context, upd domain.PolicyUpdate) error {
	if math.IsNaN(upd.Reward) || math.IsInf(upd.Reward, 0) {
		return &InvalidContextError{Field: "reward", Value: upd.Reward}
	}
	if err := validateContext(upd.Context); err != nil {
		return err
	}

	s.mu.Lock()
	p, ok := s.posteriors[upd.PolicyID]
	if !ok {
		s.mu.Unlock()
		return &UnknownPolicyError{PolicyID: upd.PolicyID}
	}

	p.applyReward(upd.Reward, s.cfg.RewardScale)

	if s.cfg.AdaptWeights {
		nudgeWeights(s.weights, upd.Context, upd.Reward, s.cfg.WeightLearningRate, s.cfg.WeightClamp)
	}
	s.mu.Unlock()

	RouterFeedbackEventsTotal.WithLabelValues(upd.PolicyID).Inc()

	tid := TraceIDFromContext(ctx)
	logger.Debug("router_feedback",
		"trace_id", tid,
		"policy_id", upd.PolicyID,
		"reward", upd.Reward,
	)

	// The event log is best-effort: the in-memory posterior is already
	// updated, so a storage failure must not surface to the caller.
	if s.eventRepo != nil {
		event := domain.RewardEvent{
			PolicyID: upd.PolicyID,
			Reward:   upd.Reward,
			TraceID:  tid,
			Context:  datatypes.JSONMap(upd.Context),
		}
		if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
			RouterEventLogErrorsTotal.Inc()
			logger.Error("failed to save reward event", "trace_id", tid, "error", err)
		}
	}

	return nil
}

// GetSnapshot exports a consistent point-in-time view for monitoring. Policy
// entries come back in registration order.
func (s *RouterService) GetSnapshot() domain.RouterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.RouterSnapshot{
		Policies:       make([]domain.PolicySnapshot, 0, len(s.policies)),
		FeatureWeights: make(map[string]float64, len(s.weights)),
		TotalDecisions: s.totalDecisions,
	}

	for _, id := range s.policies {
		p := s.posteriors[id]
		snap.Policies = append(snap.Policies, domain.PolicySnapshot{
			PolicyID:   id,
			Alpha:      p.alpha,
			Beta:       p.beta,
			Count:      p.count,
			MeanReward: p.meanReward(),
		})
	}

	for k, v := range s.weights {
		snap.FeatureWeights[k] = v
	}

	if s.lastChoice != nil {
		c := *s.lastChoice
		snap.LastChoice = &c
		snap.LastContext = copyContext(s.lastContext)
	}

	return snap
}

// Policies returns the registry in registration order.
func (s *RouterService) Policies() []string {
	out := make([]string, len(s.policies))
	copy(out, s.policies)
	return out
}

func (s *RouterService) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig swaps the tunables at runtime (admin surface).
func (s *RouterService) SetConfig(cfg Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// FeatureWeights returns a copy of the current weight table.
func (s *RouterService) FeatureWeights() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.weights))
	for k, v := range s.weights {
		out[k] = v
	}
	return out
}

func copyContext(mktCtx domain.Context) domain.Context {
	if mktCtx == nil {
		return nil
	}
	out := make(domain.Context, len(mktCtx))
	for k, v := range mktCtx {
		out[k] = v
	}
	return out
}
