package usecase

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfound/internal/domain/entity"
	"campusfound/pkg/errors"
)

func testReportUseCase(t *testing.T) (*ReportUseCase, *memReportRepo, *memUserRepo, *memDeadlineRepo, *fakeMailer) {
	t.Helper()
	reportRepo := newMemReportRepo()
	userRepo := newMemUserRepo(
		&entity.User{ID: "owner-1", Email: "owner@campus.edu", FirstName: "Olivia", LastName: "Owner", Role: entity.RoleUser},
		&entity.User{ID: "claimant-1", Email: "claimant@campus.edu", FirstName: "Carl", LastName: "Claimant", Role: entity.RoleUser},
	)
	deadlineRepo := newMemDeadlineRepo()
	mailer := &fakeMailer{}
	uc := NewReportUseCase(reportRepo, userRepo, deadlineRepo, mailer, &fakeImageStore{}, 48*time.Hour)
	return uc, reportRepo, userRepo, deadlineRepo, mailer
}

func seedReport(t *testing.T, repo *memReportRepo, reportType string) *entity.Report {
	t.Helper()
	report := &entity.Report{
		ReportID:           "A1B2C3",
		ReportType:         reportType,
		Location:           "Library",
		ItemName:           "Water Bottle",
		Category:           "Accessories",
		Date:               time.Now(),
		Description:        "Blue steel bottle",
		OwnerID:            "owner-1",
		OwnerEmail:         "owner@campus.edu",
		VerificationStatus: entity.StatusUnderVerification,
	}
	require.NoError(t, repo.Create(context.Background(), report))
	return report
}

func TestCreateReportGeneratesUniqueID(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	ctx := context.Background()

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	report, err := uc.CreateReport(ctx, "owner@campus.edu", CreateReportInput{
		ReportType:  entity.ReportTypeFound,
		Location:    "Cafeteria",
		ItemName:    "Umbrella",
		Category:    "Accessories",
		Date:        time.Now(),
		Description: "Black umbrella",
		Images:      []string{payload},
	})

	require.NoError(t, err)
	assert.Regexp(t, "^[0-9A-F]{6}$", report.ReportID)
	assert.Equal(t, entity.StatusUnderVerification, report.VerificationStatus)
	assert.Equal(t, "owner-1", report.OwnerID)
	require.Len(t, report.Images, 1)
	assert.Contains(t, report.Images[0], "https://")

	stored, err := reportRepo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, stored.ReportID)
}

func TestCreateReportRejectsBadImagePayload(t *testing.T) {
	uc, _, _, _, _ := testReportUseCase(t)

	_, err := uc.CreateReport(context.Background(), "owner@campus.edu", CreateReportInput{
		ReportType: entity.ReportTypeFound,
		ItemName:   "Umbrella",
		Images:     []string{"not-a-data-uri"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateReportUnknownOwner(t *testing.T) {
	uc, _, _, _, _ := testReportUseCase(t)

	_, err := uc.CreateReport(context.Background(), "stranger@campus.edu", CreateReportInput{
		ReportType: entity.ReportTypeLost,
		ItemName:   "Wallet",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestClaimFoundReport(t *testing.T) {
	uc, reportRepo, _, deadlineRepo, mailer := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)

	updated, err := uc.Claim(context.Background(), report.ID, "claimant@campus.edu", "It has my initials on the cap")
	require.NoError(t, err)

	assert.Equal(t, "claimant@campus.edu", updated.ClaimedBy)
	assert.NotNil(t, updated.ClaimedAt)
	assert.Equal(t, "It has my initials on the cap", updated.ProofDescription)
	assert.Equal(t, entity.StatusUnderVerification, updated.VerificationStatus)
	// Found claims never mint a code up front.
	assert.Empty(t, updated.VerificationCode)

	// Rollback deadline is persisted, and the claimant is told to show up.
	assert.Equal(t, 1, deadlineRepo.count())
	mails := mailer.sentTo("claimant@campus.edu")
	require.Len(t, mails, 1)
	assert.Equal(t, "Item Claim Verification", mails[0].Subject)
	assert.Contains(t, mails[0].Body, "Water Bottle")
}

func TestClaimLostReportMailsCodeToOwner(t *testing.T) {
	uc, reportRepo, _, deadlineRepo, mailer := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeLost)

	updated, err := uc.Claim(context.Background(), report.ID, "claimant@campus.edu", "")
	require.NoError(t, err)

	assert.Len(t, updated.VerificationCode, 6)
	// Lost claims get no rollback deadline.
	assert.Equal(t, 0, deadlineRepo.count())

	mails := mailer.sentTo("owner@campus.edu")
	require.Len(t, mails, 1)
	assert.Equal(t, "Your Lost Item has been Claimed", mails[0].Subject)
	assert.Contains(t, mails[0].Body, updated.VerificationCode)
	assert.Contains(t, mails[0].Body, "Carl Claimant")
	// The claimant is never sent the code.
	assert.Empty(t, mailer.sentTo("claimant@campus.edu"))
}

func TestClaimOwnReportRejected(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)

	_, err := uc.Claim(context.Background(), report.ID, "OWNER@campus.edu", "proof")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PRECONDITION_FAILED"))
}

func TestClaimAlreadyClaimedReport(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)
	ctx := context.Background()

	_, err := uc.Claim(ctx, report.ID, "claimant@campus.edu", "proof")
	require.NoError(t, err)

	_, err = uc.Claim(ctx, report.ID, "claimant@campus.edu", "proof again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestVerifyTransitions(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeLost)
	ctx := context.Background()

	claimed, err := uc.Claim(ctx, report.ID, "claimant@campus.edu", "")
	require.NoError(t, err)

	// Wrong code leaves the claim pending.
	_, err = uc.Verify(ctx, report.ID, "000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Empty submissions never match.
	_, err = uc.Verify(ctx, report.ID, "")
	require.Error(t, err)

	verified, err := uc.Verify(ctx, report.ID, claimed.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusVerified, verified.VerificationStatus)

	// Re-submitting the correct code re-confirms.
	again, err := uc.Verify(ctx, report.ID, claimed.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusVerified, again.VerificationStatus)
}

func TestResetClearsClaim(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)
	ctx := context.Background()

	_, err := uc.Claim(ctx, report.ID, "claimant@campus.edu", "proof")
	require.NoError(t, err)

	resetR, err := uc.Reset(ctx, report.ID)
	require.NoError(t, err)
	assert.Empty(t, resetR.ClaimedBy)
	assert.Nil(t, resetR.ClaimedAt)

	// A fresh claim succeeds after the reset.
	_, err = uc.Claim(ctx, report.ID, "claimant@campus.edu", "proof")
	require.NoError(t, err)
}

func TestResendCodeRequiresClaim(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)

	_, err := uc.ResendCode(context.Background(), report.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PRECONDITION_FAILED"))
}

func TestResendCodeReplacesCodeAndMailsClaimant(t *testing.T) {
	uc, reportRepo, _, _, mailer := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeLost)
	ctx := context.Background()

	claimed, err := uc.Claim(ctx, report.ID, "claimant@campus.edu", "")
	require.NoError(t, err)

	resent, err := uc.ResendCode(ctx, report.ID)
	require.NoError(t, err)
	assert.Len(t, resent.VerificationCode, 6)
	assert.NotEqual(t, claimed.VerificationCode, resent.VerificationCode)

	mails := mailer.sentTo("claimant@campus.edu")
	require.Len(t, mails, 1)
	assert.Equal(t, "Your Claimed Item Verification Code", mails[0].Subject)
	assert.Contains(t, mails[0].Body, resent.VerificationCode)

	// Only the fresh code verifies now.
	_, err = uc.Verify(ctx, report.ID, claimed.VerificationCode)
	require.Error(t, err)
	_, err = uc.Verify(ctx, report.ID, resent.VerificationCode)
	require.NoError(t, err)
}

func TestResendCodeSurfacesMailFailure(t *testing.T) {
	uc, reportRepo, _, _, mailer := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeLost)
	ctx := context.Background()

	_, err := uc.Claim(ctx, report.ID, "claimant@campus.edu", "")
	require.NoError(t, err)

	mailer.fail = true
	_, err = uc.ResendCode(ctx, report.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestMarkRead(t *testing.T) {
	uc, reportRepo, _, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)
	ctx := context.Background()

	require.NoError(t, uc.MarkRead(ctx, report.ID))

	stored, err := reportRepo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)
}

func TestEditReportAuthorization(t *testing.T) {
	uc, reportRepo, userRepo, _, _ := testReportUseCase(t)
	report := seedReport(t, reportRepo, entity.ReportTypeFound)
	ctx := context.Background()

	input := EditReportInput{
		Location:    "Gym",
		ItemName:    "Water Bottle",
		Category:    "Accessories",
		Date:        time.Now(),
		Description: "Updated description",
	}

	// A third party cannot edit someone else's report.
	_, err := uc.EditReport(ctx, report.ID, "claimant@campus.edu", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// The owner can.
	edited, err := uc.EditReport(ctx, report.ID, "owner@campus.edu", input)
	require.NoError(t, err)
	assert.Equal(t, "Gym", edited.Location)

	// An admin can edit anyone's report.
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		Email: "security@campus.edu", FirstName: "Sam", Role: entity.RoleAdmin,
	}))
	input.Location = "Security Office"
	edited, err = uc.EditReport(ctx, report.ID, "security@campus.edu", input)
	require.NoError(t, err)
	assert.Equal(t, "Security Office", edited.Location)
}
