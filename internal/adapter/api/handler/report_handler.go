package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"campusfound/internal/domain/repository"
	"campusfound/internal/usecase"
	"campusfound/pkg/response"
	"campusfound/pkg/utils"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	ReportType  string    `json:"report_type" validate:"required,oneof=lost found"`
	Location    string    `json:"location" validate:"required"`
	ItemName    string    `json:"item_name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Images      []string  `json:"images" validate:"required,min=1"`
}

type editReportRequest struct {
	Location    string    `json:"location" validate:"required"`
	ItemName    string    `json:"item_name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Images      []string  `json:"images"`
}

type claimReportRequest struct {
	ProofDescription string `json:"proof_description"`
}

type verifyReportRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), currentUser(c).Email, usecase.CreateReportInput{
		ReportType:  req.ReportType,
		Location:    req.Location,
		ItemName:    req.ItemName,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	filter := repository.ReportFilter{
		ClaimedOnly: c.QueryParam("claimed") == "true",
		ReportID:    c.QueryParam("reportID"),
	}

	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListReports(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *ReportHandler) ListMyReports(c echo.Context) error {
	reports, err := h.reportUseCase.ListReportsByUser(c.Request().Context(), currentUser(c).Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func (h *ReportHandler) EditReport(c echo.Context) error {
	var req editReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.EditReport(c.Request().Context(), c.Param("id"), currentUser(c).Email, usecase.EditReportInput{
		Location:    req.Location,
		ItemName:    req.ItemName,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *ReportHandler) DeleteReport(c echo.Context) error {
	if err := h.reportUseCase.DeleteReport(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Report deleted successfully",
	})
}

func (h *ReportHandler) ClaimReport(c echo.Context) error {
	var req claimReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.Claim(c.Request().Context(), c.Param("id"), currentUser(c).Email, req.ProofDescription)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *ReportHandler) VerifyReport(c echo.Context) error {
	var req verifyReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := h.reportUseCase.Verify(c.Request().Context(), c.Param("id"), req.Code); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Report successfully verified",
	})
}

func (h *ReportHandler) ResetReport(c echo.Context) error {
	report, err := h.reportUseCase.Reset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *ReportHandler) SendCode(c echo.Context) error {
	if _, err := h.reportUseCase.ResendCode(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Verification code sent to the claiming user",
	})
}

func (h *ReportHandler) MarkNotificationRead(c echo.Context) error {
	if err := h.reportUseCase.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}
