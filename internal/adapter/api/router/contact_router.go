package router

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/adapter/api/handler"
	"campusfound/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	contactHandler := handler.GetContactHandler()

	contact := e.Group("/v1/contact")
	contact.Use(authMiddleware.Authenticate)
	contact.POST("", contactHandler.SendMessage)
}
