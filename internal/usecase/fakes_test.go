package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"campusfound/internal/domain/entity"
	"campusfound/internal/domain/repository"
	"campusfound/pkg/errors"
)

// In-memory repository fakes backing the use case tests.

type memReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entity.Report
	nextID  int
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: map[string]*entity.Report{}}
}

func (r *memReportRepo) Create(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report.ID == "" {
		r.nextID++
		report.ID = fmt.Sprintf("report-%d", r.nextID)
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *memReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	clone := *report
	return &clone, nil
}

func (r *memReportRepo) List(ctx context.Context, filter repository.ReportFilter, limit, offset int) ([]*entity.Report, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Report
	for _, report := range r.reports {
		if filter.ClaimedOnly && !report.Claimed() {
			continue
		}
		if filter.ReportID != "" && report.ReportID != filter.ReportID {
			continue
		}
		clone := *report
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memReportRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Report
	for _, report := range r.reports {
		if report.OwnerID == ownerID {
			clone := *report
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memReportRepo) Update(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[report.ID]; !ok {
		return errors.NotFound("Report", nil)
	}
	report.UpdatedAt = time.Now()
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *memReportRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return errors.NotFound("Report", nil)
	}
	delete(r.reports, id)
	return nil
}

func (r *memReportRepo) ExistsReportID(ctx context.Context, reportID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.ReportID == reportID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReportRepo) ExistsCode(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.VerificationCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memReportRepo) ClaimIfUnclaimed(ctx context.Context, id string, update repository.ClaimUpdate) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, errors.NotFound("Report", nil)
	}
	if report.Claimed() {
		return nil, errors.Conflict("Item already claimed")
	}

	report.ClaimedBy = update.ClaimedBy
	claimedAt := update.ClaimedAt
	report.ClaimedAt = &claimedAt
	report.Read = false
	report.VerificationStatus = entity.StatusUnderVerification
	report.ProofDescription = update.ProofDescription
	report.ResponseMessage = update.ResponseMessage
	if update.VerificationCode != "" {
		report.VerificationCode = update.VerificationCode
	}
	report.UpdatedAt = time.Now()

	clone := *report
	return &clone, nil
}

func (r *memReportRepo) ResetClaimIfUnverified(ctx context.Context, id string, claimant string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return false, errors.NotFound("Report", nil)
	}
	if report.VerificationStatus == entity.StatusVerified || !strings.EqualFold(report.ClaimedBy, claimant) {
		return false, nil
	}

	report.ClaimedBy = ""
	report.ClaimedAt = nil
	report.ProofDescription = ""
	report.UpdatedAt = time.Now()
	return true, nil
}

type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int

	createCalls int
	updateCalls int
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*entity.User{}}
	for _, user := range users {
		if user.ID == "" {
			r.nextID++
			user.ID = fmt.Sprintf("user-%d", r.nextID)
		}
		r.users[user.ID] = user
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memDeadlineRepo struct {
	mu        sync.Mutex
	deadlines map[string]*entity.ClaimDeadline
	nextID    int
}

func newMemDeadlineRepo() *memDeadlineRepo {
	return &memDeadlineRepo{deadlines: map[string]*entity.ClaimDeadline{}}
}

func (r *memDeadlineRepo) Create(ctx context.Context, deadline *entity.ClaimDeadline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if deadline.ID == "" {
		r.nextID++
		deadline.ID = fmt.Sprintf("deadline-%d", r.nextID)
	}
	deadline.CreatedAt = time.Now()
	clone := *deadline
	r.deadlines[deadline.ID] = &clone
	return nil
}

func (r *memDeadlineRepo) ListDue(ctx context.Context, now time.Time) ([]*entity.ClaimDeadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ClaimDeadline
	for _, deadline := range r.deadlines {
		if !deadline.FireAt.After(now) {
			clone := *deadline
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memDeadlineRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.deadlines, id)
	return nil
}

func (r *memDeadlineRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.deadlines)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) sentTo(to string) []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMail
	for _, mail := range m.sent {
		if mail.To == to {
			out = append(out, mail)
		}
	}
	return out
}

type fakeImageStore struct {
	uploads int
}

func (s *fakeImageStore) UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	s.uploads++
	return fmt.Sprintf("https://storage.example.com/lost-found/img-%d", s.uploads), nil
}
