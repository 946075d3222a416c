package repository

import (
	"context"
	"time"

	"campusfound/internal/domain/entity"
)

// ReportFilter narrows List results. Zero values mean "no filter".
type ReportFilter struct {
	ClaimedOnly bool
	ReportID    string
}

// ClaimUpdate carries the fields a claim transition writes. The repository
// applies it only if the report is still unclaimed.
type ClaimUpdate struct {
	ClaimedBy        string
	ClaimedAt        time.Time
	VerificationCode string
	ProofDescription string
	ResponseMessage  string
}

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]*entity.Report, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Report, error)
	Update(ctx context.Context, report *entity.Report) error
	Delete(ctx context.Context, id string) error

	// ExistsReportID and ExistsCode back the uniqueness checks of the code
	// generator.
	ExistsReportID(ctx context.Context, reportID string) (bool, error)
	ExistsCode(ctx context.Context, code string) (bool, error)

	// ClaimIfUnclaimed atomically records a claim, failing with Conflict if
	// claimedBy is already set. Returns the updated report.
	ClaimIfUnclaimed(ctx context.Context, id string, update ClaimUpdate) (*entity.Report, error)

	// ResetClaimIfUnverified clears the claim sub-state only if the report is
	// still unverified and still claimed by the given claimant. Reports
	// whether a reset happened.
	ResetClaimIfUnverified(ctx context.Context, id string, claimant string) (bool, error)
}
