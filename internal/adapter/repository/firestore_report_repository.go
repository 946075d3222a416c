package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		doc := r.client.Collection("reports").NewDoc()
		report.ID = doc.ID
	}

	now := time.Now()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	report.UpdatedAt = now

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection("reports").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("reports").Query

	if filter.ReportID != "" {
		query = query.Where("reportID", "==", filter.ReportID)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	// Firestore cannot express "claimedBy is set" without an extra index, so
	// the claimed-only filter is applied after the fetch.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list reports", err)
	}

	var reports []*entity.Report
	for _, doc := range docs {
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, 0, errors.Internal("Failed to parse report data", err)
		}
		if filter.ClaimedOnly && !report.Claimed() {
			continue
		}
		reports = append(reports, &report)
	}

	total := int64(len(reports))

	if offset > 0 {
		if offset >= len(reports) {
			return nil, total, nil
		}
		reports = reports[offset:]
	}
	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}

	return reports, total, nil
}

func (r *firestoreReportRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Report, error) {
	iter := r.client.Collection("reports").Where("ownerId", "==", ownerID).Documents(ctx)

	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, errors.Internal("Failed to parse report data", err)
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

func (r *firestoreReportRepository) Update(ctx context.Context, report *entity.Report) error {
	report.UpdatedAt = time.Now()

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to update report", err)
	}

	return nil
}

func (r *firestoreReportRepository) Delete(ctx context.Context, id string) error {
	doc := r.client.Collection("reports").Doc(id)
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Report", err)
		}
		return errors.Internal("Failed to get report", err)
	}

	if _, err := doc.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete report", err)
	}

	return nil
}

func (r *firestoreReportRepository) ExistsReportID(ctx context.Context, reportID string) (bool, error) {
	return r.exists(ctx, "reportID", reportID)
}

func (r *firestoreReportRepository) ExistsCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "verificationCode", code)
}

func (r *firestoreReportRepository) exists(ctx context.Context, field, value string) (bool, error) {
	iter := r.client.Collection("reports").Where(field, "==", value).Limit(1).Documents(ctx)
	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to check report uniqueness", err)
	}
	return true, nil
}

func (r *firestoreReportRepository) ClaimIfUnclaimed(ctx context.Context, id string, update repository.ClaimUpdate) (*entity.Report, error) {
	ref := r.client.Collection("reports").Doc(id)
	var claimed entity.Report

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return errors.Internal("Failed to get report", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return errors.Internal("Failed to parse report data", err)
		}

		// Two concurrent claims both pass the usecase precondition check;
		// this re-check inside the transaction is the one that counts.
		if report.Claimed() {
			return errors.Conflict("Item already claimed")
		}

		now := time.Now()
		updates := []firestore.Update{
			{Path: "claimedBy", Value: update.ClaimedBy},
			{Path: "claimedAt", Value: update.ClaimedAt},
			{Path: "read", Value: false},
			{Path: "verificationStatus", Value: entity.StatusUnderVerification},
			{Path: "proofDescription", Value: update.ProofDescription},
			{Path: "responseMessage", Value: update.ResponseMessage},
			{Path: "updatedAt", Value: now},
		}
		if update.VerificationCode != "" {
			updates = append(updates, firestore.Update{Path: "verificationCode", Value: update.VerificationCode})
			report.VerificationCode = update.VerificationCode
		}

		if err := tx.Update(ref, updates); err != nil {
			return errors.Internal("Failed to record claim", err)
		}

		claimedAt := update.ClaimedAt
		report.ClaimedBy = update.ClaimedBy
		report.ClaimedAt = &claimedAt
		report.Read = false
		report.VerificationStatus = entity.StatusUnderVerification
		report.ProofDescription = update.ProofDescription
		report.ResponseMessage = update.ResponseMessage
		report.UpdatedAt = now
		claimed = report
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &claimed, nil
}

func (r *firestoreReportRepository) ResetClaimIfUnverified(ctx context.Context, id string, claimant string) (bool, error) {
	ref := r.client.Collection("reports").Doc(id)
	reset := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return errors.Internal("Failed to get report", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return errors.Internal("Failed to parse report data", err)
		}

		if report.VerificationStatus == entity.StatusVerified || report.ClaimedBy != claimant {
			return nil
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: "claimedBy", Value: ""},
			{Path: "claimedAt", Value: nil},
			{Path: "proofDescription", Value: ""},
			{Path: "updatedAt", Value: time.Now()},
		}); err != nil {
			return errors.Internal("Failed to reset claim", err)
		}

		reset = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return reset, nil
}
