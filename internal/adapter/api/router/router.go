package router

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupReportRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupLogRouter(e, authMiddleware, adminMiddleware)
	SetupContactRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
