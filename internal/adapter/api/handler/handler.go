package handler

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/domain/entity"
	"campusfound/internal/usecase"
)

var (
	authHandler    *AuthHandler
	reportHandler  *ReportHandler
	userHandler    *UserHandler
	logHandler     *LogHandler
	contactHandler *ContactHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	userUseCase *usecase.UserUseCase,
	logUseCase *usecase.LogUseCase,
	contactUseCase *usecase.ContactUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	userHandler = NewUserHandler(userUseCase)
	logHandler = NewLogHandler(logUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetLogHandler() *LogHandler {
	return logHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

// currentUser returns the authenticated user stashed by the auth middleware.
func currentUser(c echo.Context) *entity.User {
	user, _ := c.Get("user").(*entity.User)
	return user
}
