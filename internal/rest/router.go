package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tradeRouter/business/router"
	"tradeRouter/domain"
	"tradeRouter/pkg/logger"
	"tradeRouter/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RouterHandler struct {
		validate      *validator.Validate
		routerService RouterService
		snapshotCache SnapshotCache
	}

	RouterService interface {
		ChoosePolicy(ctx context.Context, mktCtx domain.Context) (domain.Choice, error)
		UpdatePolicy(ctx context.Context, upd domain.PolicyUpdate) error
		GetSnapshot() domain.RouterSnapshot
	}

	// SnapshotCache is optional; nil means every poll hits the service.
	SnapshotCache interface {
		Get(ctx context.Context) (*domain.RouterSnapshot, error)
		Set(ctx context.Context, snap domain.RouterSnapshot) error
	}

	ChooseRequest struct {
		Context map[string]any `json:"context"`
	}

	FeedbackRequest struct {
		PolicyID string         `json:"policy_id" validate:"required"`
		Reward   float64        `json:"reward"`
		Context  map[string]any `json:"context"`
	}
)

func NewRouterHandler(svc RouterService, cache SnapshotCache) *RouterHandler {
	return &RouterHandler{
		validate:      validator.New(),
		routerService: svc,
		snapshotCache: cache,
	}
}

// POST /api/v1/router/choose
func (h *RouterHandler) Choose(c echo.Context) error {
	start := time.Now()

	var req ChooseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	choice, err := h.routerService.ChoosePolicy(c.Request().Context(), domain.Context(req.Context))
	if err != nil {
		return h.mapServiceError(c, err)
	}

	metrics.RouterChooseRequests.Inc()
	metrics.RouterChooseLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(choice))
}

// POST /api/v1/router/feedback
func (h *RouterHandler) Feedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	upd := domain.PolicyUpdate{
		PolicyID: req.PolicyID,
		Reward:   req.Reward,
		Context:  domain.Context(req.Context),
	}

	if err := h.routerService.UpdatePolicy(c.Request().Context(), upd); err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/router/snapshot
//
// Read-only dashboard polling surface. Served from the redis cache while
// fresh; the cache is best-effort in both directions.
func (h *RouterHandler) Snapshot(c echo.Context) error {
	ctx := c.Request().Context()

	if h.snapshotCache != nil {
		cached, err := h.snapshotCache.Get(ctx)
		if err != nil {
			logger.Warn("snapshot cache read failed", "error", err)
		} else if cached != nil {
			metrics.RouterSnapshotCacheHits.Inc()
			return c.JSON(http.StatusOK, fres.Response.StatusOK(cached))
		}
	}

	snap := h.routerService.GetSnapshot()

	if h.snapshotCache != nil {
		if err := h.snapshotCache.Set(ctx, snap); err != nil {
			logger.Warn("snapshot cache write failed", "error", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snap))
}

func (h *RouterHandler) mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, router.ErrUnknownPolicy):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, router.ErrInvalidContext):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
