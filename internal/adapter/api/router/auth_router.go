package router

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/adapter/api/handler"
	"campusfound/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login, middleware.AuthRateLimit())
}
