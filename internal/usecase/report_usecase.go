package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
	"campusfound/pkg/logger"
)

// claimInstructions is shown to a found-item claimant and mailed to them
// when the claim is recorded.
const claimInstructions = "Please come to the security office with a detailed description of your proof " +
	"for further verification and to claim your item within 2 days otherwise your claim will be rejected."

type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	userRepo     repository.UserRepository
	deadlineRepo repository.ClaimDeadlineRepository
	mailer       Mailer
	images       ImageStore
	claimWindow  time.Duration
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	deadlineRepo repository.ClaimDeadlineRepository,
	mailer Mailer,
	images ImageStore,
	claimWindow time.Duration,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		userRepo:     userRepo,
		deadlineRepo: deadlineRepo,
		mailer:       mailer,
		images:       images,
		claimWindow:  claimWindow,
	}
}

type CreateReportInput struct {
	ReportType  string
	Location    string
	ItemName    string
	Category    string
	Date        time.Time
	Description string
	Images      []string // base64 data URIs
}

type EditReportInput struct {
	Location    string
	ItemName    string
	Category    string
	Date        time.Time
	Description string
	Images      []string // base64 data URIs; empty keeps existing images
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, ownerEmail string, input CreateReportInput) (*entity.Report, error) {
	owner, err := uc.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	imageURLs, err := uc.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	reportID, err := generateUnique(ctx, drawReportID, uc.reportRepo.ExistsReportID)
	if err != nil {
		return nil, errors.Internal("Failed to generate report ID", err)
	}

	report := &entity.Report{
		ReportID:           reportID,
		ReportType:         input.ReportType,
		Location:           input.Location,
		ItemName:           input.ItemName,
		Category:           input.Category,
		Date:               input.Date,
		Description:        input.Description,
		Images:             imageURLs,
		OwnerID:            owner.ID,
		OwnerEmail:         owner.Email,
		VerificationStatus: entity.StatusUnderVerification,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (uc *ReportUseCase) GetReport(ctx context.Context, id string) (*entity.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

func (uc *ReportUseCase) ListReports(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	return uc.reportRepo.List(ctx, filter, limit, offset)
}

func (uc *ReportUseCase) ListReportsByUser(ctx context.Context, email string) ([]*entity.Report, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return uc.reportRepo.ListByOwner(ctx, user.ID)
}

func (uc *ReportUseCase) EditReport(ctx context.Context, id, actorEmail string, input EditReportInput) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor, err := uc.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if actor.Role != entity.RoleAdmin && report.OwnerID != actor.ID {
		return nil, errors.Forbidden("Only the reporting user or an admin can edit a report", nil)
	}

	if len(input.Images) > 0 {
		imageURLs, err := uc.uploadImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		report.Images = imageURLs
	}

	report.Location = input.Location
	report.ItemName = input.ItemName
	report.Category = input.Category
	report.Date = input.Date
	report.Description = input.Description

	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (uc *ReportUseCase) DeleteReport(ctx context.Context, id string) error {
	return uc.reportRepo.Delete(ctx, id)
}

// Claim moves a report from unclaimed to claimed-pending-verification. Found
// reports record the claimant's proof and arm the rollback deadline; lost
// reports issue a verification code mailed to the original owner.
func (uc *ReportUseCase) Claim(ctx context.Context, id, claimantEmail, proofDescription string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if report.Claimed() {
		return nil, errors.Conflict("Item already claimed")
	}

	claimant, err := uc.userRepo.GetByEmail(ctx, claimantEmail)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if strings.EqualFold(report.OwnerEmail, claimant.Email) {
		return nil, errors.PreconditionFailed("You can't claim your own item")
	}

	now := time.Now()
	update := repository.ClaimUpdate{
		ClaimedBy: claimant.Email,
		ClaimedAt: now,
	}

	switch report.ReportType {
	case entity.ReportTypeFound:
		update.ProofDescription = proofDescription
		update.ResponseMessage = claimInstructions
	case entity.ReportTypeLost:
		code, err := generateUnique(ctx, drawVerificationCode, uc.reportRepo.ExistsCode)
		if err != nil {
			return nil, errors.Internal("Failed to generate verification code", err)
		}
		update.VerificationCode = code
	}

	updated, err := uc.reportRepo.ClaimIfUnclaimed(ctx, id, update)
	if err != nil {
		return nil, err
	}

	switch report.ReportType {
	case entity.ReportTypeFound:
		deadline := &entity.ClaimDeadline{
			ReportID:  updated.ID,
			ClaimedBy: claimant.Email,
			FireAt:    now.Add(uc.claimWindow),
		}
		if err := uc.deadlineRepo.Create(ctx, deadline); err != nil {
			logger.Error("Failed to persist claim deadline for report %s: %v", updated.ID, err)
		}

		subject := "Item Claim Verification"
		body := fmt.Sprintf("Hello %s,\n\nYou have claimed the item named \"%s\".\n\n%s\n\nBest regards,\nYour Lost and Found Team",
			claimant.FirstName, updated.ItemName, claimInstructions)
		if err := uc.mailer.Send(ctx, claimant.Email, subject, body); err != nil {
			logger.LogMailError(claimant.Email, subject, err)
		}
	case entity.ReportTypeLost:
		owner, err := uc.userRepo.GetByEmail(ctx, updated.OwnerEmail)
		if err != nil {
			logger.Warn("Owner lookup failed for report %s: %v", updated.ID, err)
			return updated, nil
		}

		subject := "Your Lost Item has been Claimed"
		body := fmt.Sprintf("Hello %s,\n\nYour lost item \"%s\" has been claimed by %s (Email: %s).\n\n"+
			"Please contact the security office to retrieve your item. Use the following verification code: %s.\n\n"+
			"Best regards,\nYour Lost and Found Team",
			owner.FirstName, updated.ItemName, displayName(claimant), claimant.Email, updated.VerificationCode)
		if err := uc.mailer.Send(ctx, owner.Email, subject, body); err != nil {
			logger.LogMailError(owner.Email, subject, err)
		}
	}

	return updated, nil
}

// Verify checks a submitted code against the stored one. Comparison is exact
// and case-sensitive; a correct code on an already-verified report simply
// re-confirms success.
func (uc *ReportUseCase) Verify(ctx context.Context, id, code string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if report.VerificationCode == "" || report.VerificationCode != code {
		return nil, errors.BadRequest("Invalid verification code", nil)
	}

	if report.VerificationStatus != entity.StatusVerified {
		report.VerificationStatus = entity.StatusVerified
		if err := uc.reportRepo.Update(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// Reset clears the claimant identity and claim timestamp unconditionally,
// regardless of verification status. No notification is sent.
func (uc *ReportUseCase) Reset(ctx context.Context, id string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report.ClaimedBy = ""
	report.ClaimedAt = nil

	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// ResendCode regenerates the verification code for an already-claimed report
// and mails it to the claimant. The mail send is awaited; a delivery failure
// is surfaced even though the new code is already persisted.
func (uc *ReportUseCase) ResendCode(ctx context.Context, id string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !report.Claimed() {
		return nil, errors.PreconditionFailed("Report has not been claimed yet")
	}

	claimant, err := uc.userRepo.GetByEmail(ctx, report.ClaimedBy)
	if err != nil {
		return nil, errors.NotFound("Claiming user", err)
	}

	code, err := generateUnique(ctx, drawVerificationCode, uc.reportRepo.ExistsCode)
	if err != nil {
		return nil, errors.Internal("Failed to generate verification code", err)
	}

	report.VerificationCode = code
	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	subject := "Your Claimed Item Verification Code"
	body := fmt.Sprintf("Dear %s,\n\nYour claimed item \"%s\" requires verification. "+
		"Please use the following code to verify your claim: %s.\n\nBest regards,\nYour Lost and Found Team",
		claimant.FirstName, report.ItemName, code)
	if err := uc.mailer.Send(ctx, claimant.Email, subject, body); err != nil {
		return nil, errors.Internal("Failed to send verification code email", err)
	}

	return report, nil
}

// MarkRead flips the unread-notification flag; it does not touch the claim
// sub-state.
func (uc *ReportUseCase) MarkRead(ctx context.Context, id string) error {
	report, err := uc.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	report.Read = true
	return uc.reportRepo.Update(ctx, report)
}

func (uc *ReportUseCase) uploadImages(ctx context.Context, payloads []string) ([]string, error) {
	urls := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		data, contentType, err := decodeImagePayload(payload)
		if err != nil {
			return nil, errors.Validation("Invalid image format", err)
		}

		url, err := uc.images.UploadImage(ctx, bytes.NewReader(data), contentType)
		if err != nil {
			return nil, errors.Internal("Failed to upload image", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// decodeImagePayload parses a "data:<type>;base64,<data>" URI.
func decodeImagePayload(payload string) ([]byte, string, error) {
	if !strings.HasPrefix(payload, "data:") {
		return nil, "", fmt.Errorf("image payload is not a data URI")
	}

	rest := payload[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", fmt.Errorf("image payload is not base64 encoded")
	}

	contentType := rest[:sep]
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("unsupported payload type %q", contentType)
	}

	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return nil, "", fmt.Errorf("decoding image payload: %w", err)
	}

	return data, contentType, nil
}

func displayName(user *entity.User) string {
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}
