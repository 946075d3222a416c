package router

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/adapter/api/handler"
	"campusfound/internal/adapter/api/middleware"
)

func SetupLogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	logHandler := handler.GetLogHandler()

	userLogs := e.Group("/v1/logs/user-logs")
	userLogs.Use(authMiddleware.Authenticate)
	userLogs.GET("", logHandler.ListUserLogs)
	userLogs.GET("/:userId", logHandler.ListUserLogsByUser)
	userLogs.POST("", logHandler.SaveUserLog)

	adminLogs := e.Group("/v1/logs/admin-logs")
	adminLogs.Use(authMiddleware.Authenticate)
	adminLogs.Use(adminMiddleware.AdminOnly)
	adminLogs.GET("", logHandler.ListAdminLogs)
	adminLogs.POST("", logHandler.SaveAdminLog)
}
