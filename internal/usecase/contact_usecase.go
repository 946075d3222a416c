package usecase

import (
	"context"
	"fmt"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

type ContactUseCase struct {
	messageRepo   repository.ContactMessageRepository
	mailer        Mailer
	securityInbox string
}

func NewContactUseCase(messageRepo repository.ContactMessageRepository, mailer Mailer, securityInbox string) *ContactUseCase {
	return &ContactUseCase{
		messageRepo:   messageRepo,
		mailer:        mailer,
		securityInbox: securityInbox,
	}
}

type ContactMessageInput struct {
	Name        string
	RollNo      string
	Email       string
	Item        string
	Description string
	FakeClaim   bool
	ReportID    string
}

// SendMessage persists the contact message and forwards it to the security
// inbox plus an acknowledgement to the sender. Unlike claim notifications,
// both sends are awaited and a delivery failure fails the request.
func (uc *ContactUseCase) SendMessage(ctx context.Context, userID string, input ContactMessageInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:        input.Name,
		RollNo:      input.RollNo,
		Email:       input.Email,
		Item:        input.Item,
		Description: input.Description,
		FakeClaim:   input.FakeClaim,
		ReportID:    input.ReportID,
		UserID:      userID,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	reportID := input.ReportID
	if reportID == "" {
		reportID = "N/A"
	}

	fakeClaimNote := ""
	if input.FakeClaim {
		fakeClaimNote = "\n\n* Fake Claim"
	}

	adminSubject := fmt.Sprintf("Message from %s (Roll No: %s)", input.Name, input.RollNo)
	adminBody := fmt.Sprintf("Item: %s\nDescription: %s\n\nFrom: %s%s\nReport ID: %s",
		input.Item, input.Description, input.Email, fakeClaimNote, reportID)
	if err := uc.mailer.Send(ctx, uc.securityInbox, adminSubject, adminBody); err != nil {
		return nil, errors.Internal("Failed to send message", err)
	}

	ackSubject := "Thank You for Contacting Us"
	ackBody := fmt.Sprintf("Dear %s,\n\nThank you for reaching out to us. We have received the following details from you:\n\n"+
		"Item: %s\nDescription: %s\n\nYour report ID is: %s\n\n"+
		"Please visit the security office for reporting the issue.\n\nBest regards,\nThe Team",
		input.Name, input.Item, input.Description, reportID)
	if err := uc.mailer.Send(ctx, input.Email, ackSubject, ackBody); err != nil {
		return nil, errors.Internal("Failed to send message", err)
	}

	return message, nil
}
