package router

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/adapter/api/handler"
	"campusfound/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	// Listing and verification are reachable without a session: the security
	// office submits codes on behalf of walk-in visitors. Verification is
	// rate limited instead.
	e.GET("/v1/reports", reportHandler.ListReports)
	e.PUT("/v1/reports/:id/verify", reportHandler.VerifyReport, middleware.VerifyRateLimit())

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)
	reports.POST("", reportHandler.CreateReport)
	reports.GET("/user", reportHandler.ListMyReports)
	reports.PUT("/:id", reportHandler.EditReport)
	reports.DELETE("/:id", reportHandler.DeleteReport)
	reports.PUT("/:id/claim", reportHandler.ClaimReport)
	reports.PUT("/:id/reset", reportHandler.ResetReport)
	reports.PUT("/:id/send-otp", reportHandler.SendCode)
	reports.PUT("/notification/:id/read", reportHandler.MarkNotificationRead)
}
