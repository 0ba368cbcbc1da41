package router

import (
	"tradeRouter/internal/middleware"
	"tradeRouter/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRouterRoutes(api *echo.Group, handler *rest.RouterHandler) {
	r := api.Group("/router")
	r.POST("/choose", handler.Choose)
	r.POST("/feedback", handler.Feedback)
	r.GET("/snapshot", handler.Snapshot)
}

func SetRouterAdminRoutes(api *echo.Group, handler *rest.RouterAdminHandler) {
	admin := api.Group("/admin/router", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
	admin.GET("/weights", handler.GetWeights)
}
