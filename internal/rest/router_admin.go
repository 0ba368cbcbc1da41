package rest

import (
	"net/http"

	"tradeRouter/business/router"
	"tradeRouter/domain"
	"tradeRouter/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RouterAdminHandler struct {
		validate *validator.Validate
		svc      RouterAdminService
		cfgRepo  router.ConfigRepository
	}

	RouterAdminService interface {
		Config() router.Config
		SetConfig(cfg router.Config)
		FeatureWeights() map[string]float64
	}
)

// cfgRepo may be nil; overrides then live only for the process lifetime.
func NewRouterAdminHandler(svc RouterAdminService, cfgRepo router.ConfigRepository) *RouterAdminHandler {
	return &RouterAdminHandler{
		validate: validator.New(),
		svc:      svc,
		cfgRepo:  cfgRepo,
	}
}

// GET /api/v1/admin/router/config
func (h *RouterAdminHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.svc.Config()))
}

// PUT /api/v1/admin/router/config
//
// Zero-valued fields keep their current value; the override row is persisted
// so tuning survives restarts.
func (h *RouterAdminHandler) UpsertConfig(c echo.Context) error {
	var req domain.RouterConfig
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	updated := h.svc.Config().WithOverrides(req)
	h.svc.SetConfig(updated)

	if h.cfgRepo != nil {
		if err := h.cfgRepo.UpsertConfig(c.Request().Context(), req); err != nil {
			logger.Error("failed to persist router config", "error", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// GET /api/v1/admin/router/weights
func (h *RouterAdminHandler) GetWeights(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.svc.FeatureWeights()))
}
