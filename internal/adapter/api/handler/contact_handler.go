package handler

import (
	"github.com/labstack/echo/v4"

	"campusfound/internal/usecase"
	"campusfound/pkg/response"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type contactMessageRequest struct {
	Name        string `json:"name" validate:"required"`
	RollNo      string `json:"roll_no" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Item        string `json:"item" validate:"required"`
	Description string `json:"description" validate:"required"`
	FakeClaim   bool   `json:"fake_claim"`
	ReportID    string `json:"report_id"`
}

func (h *ContactHandler) SendMessage(c echo.Context) error {
	var req contactMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := h.contactUseCase.SendMessage(c.Request().Context(), currentUser(c).ID, usecase.ContactMessageInput{
		Name:        req.Name,
		RollNo:      req.RollNo,
		Email:       req.Email,
		Item:        req.Item,
		Description: req.Description,
		FakeClaim:   req.FakeClaim,
		ReportID:    req.ReportID,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message sent successfully",
	})
}
