package usecase

import (
	"context"
	"fmt"
	"time"

	"campusfound/pkg/errors"
	"campusfound/pkg/logger"
)

// ProcessDueDeadlines evaluates every claim deadline whose fire time has
// passed. A deadline rolls the claim back only if the report is still
// unverified and still claimed by the claimant captured at arm time, so a
// verified claim, a manual reset, or a later re-claim all turn the deadline
// into a no-op. Processed deadlines are removed either way.
func (uc *ReportUseCase) ProcessDueDeadlines(ctx context.Context) error {
	deadlines, err := uc.deadlineRepo.ListDue(ctx, time.Now())
	if err != nil {
		return err
	}

	expired := 0
	for _, deadline := range deadlines {
		reset, err := uc.reportRepo.ResetClaimIfUnverified(ctx, deadline.ReportID, deadline.ClaimedBy)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			// Keep the record so the next sweep retries.
			logger.Error("Failed to evaluate claim deadline for report %s: %v", deadline.ReportID, err)
			continue
		}

		if reset {
			uc.sendClaimRejection(ctx, deadline.ClaimedBy, deadline.ReportID)
			logger.Info("Claim reset for report %s: verification window expired", deadline.ReportID)
			expired++
		}

		if err := uc.deadlineRepo.Delete(ctx, deadline.ID); err != nil {
			logger.Warn("Failed to delete claim deadline %s: %v", deadline.ID, err)
		}
	}

	if expired > 0 {
		logger.Info("Deadline sweep expired %d unverified claims", expired)
	}
	return nil
}

// StartDeadlineSweepJob runs ProcessDueDeadlines on a fixed interval. It also
// runs once immediately so deadlines that came due while the process was down
// are evaluated right after startup.
func (uc *ReportUseCase) StartDeadlineSweepJob(ctx context.Context, interval time.Duration) {
	go func() {
		if err := uc.ProcessDueDeadlines(ctx); err != nil {
			logger.Error("Deadline sweep error: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := uc.ProcessDueDeadlines(ctx); err != nil {
					logger.Error("Deadline sweep error: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Claim deadline sweep started (interval %s)", interval)
}

func (uc *ReportUseCase) sendClaimRejection(ctx context.Context, claimantEmail, reportID string) {
	greeting := claimantEmail
	if claimant, err := uc.userRepo.GetByEmail(ctx, claimantEmail); err == nil {
		greeting = claimant.FirstName
	}

	subject := "Claim Rejected: Verification Not Completed"
	body := fmt.Sprintf("Dear %s,\n\nYour claim for the report ID: %s has been rejected as you did not appear "+
		"for verification at the security office within the required time frame.\n\n"+
		"Please contact us if you need further assistance.\n\nBest regards,\nYour Lost and Found Team",
		greeting, reportID)
	if err := uc.mailer.Send(ctx, claimantEmail, subject, body); err != nil {
		logger.LogMailError(claimantEmail, subject, err)
	}
}
