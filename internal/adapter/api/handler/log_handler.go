package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"campusfound/internal/usecase"
	"campusfound/pkg/response"
)

type LogHandler struct {
	logUseCase *usecase.LogUseCase
}

func NewLogHandler(logUseCase *usecase.LogUseCase) *LogHandler {
	return &LogHandler{
		logUseCase: logUseCase,
	}
}

type saveLogRequest struct {
	Action    string    `json:"action" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *LogHandler) SaveAdminLog(c echo.Context) error {
	var req saveLogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.logUseCase.SaveAdminLog(c.Request().Context(), currentUser(c).ID, req.Action); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"message": "Admin log saved successfully",
	})
}

func (h *LogHandler) ListAdminLogs(c echo.Context) error {
	logs, err := h.logUseCase.ListAdminLogs(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, logs)
}

func (h *LogHandler) SaveUserLog(c echo.Context) error {
	var req saveLogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user := currentUser(c)
	if err := h.logUseCase.SaveUserLog(c.Request().Context(), user.ID, user.Email, req.Action, req.Timestamp); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"message": "User log saved successfully",
	})
}

func (h *LogHandler) ListUserLogs(c echo.Context) error {
	logs, err := h.logUseCase.ListUserLogs(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, logs)
}

func (h *LogHandler) ListUserLogsByUser(c echo.Context) error {
	logs, err := h.logUseCase.ListUserLogsByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, logs)
}
