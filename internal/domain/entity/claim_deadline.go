package entity

import (
	"time"
)

// ClaimDeadline is a persisted scheduled task: if the referenced report is
// still unverified when FireAt passes, its claim is rolled back. Keeping these
// in the store means pending rollbacks survive a process restart.
type ClaimDeadline struct {
	ID        string    `json:"id" firestore:"id"`
	ReportID  string    `json:"report_id" firestore:"reportId"`
	ClaimedBy string    `json:"claimed_by" firestore:"claimedBy"`
	FireAt    time.Time `json:"fire_at" firestore:"fireAt"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
