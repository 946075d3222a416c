package entity

import (
	"time"
)

const (
	ReportTypeLost  = "lost"
	ReportTypeFound = "found"

	StatusUnderVerification = "Under Verification"
	StatusVerified          = "Verified"
)

type Report struct {
	ID          string    `json:"id" firestore:"id"`
	ReportID    string    `json:"report_id" firestore:"reportID"`
	ReportType  string    `json:"report_type" firestore:"reportType"`
	Location    string    `json:"location" firestore:"location"`
	ItemName    string    `json:"item_name" firestore:"itemName"`
	Category    string    `json:"category" firestore:"category"`
	Date        time.Time `json:"date" firestore:"date"`
	Description string    `json:"description" firestore:"description"`
	Images      []string  `json:"images" firestore:"images"`

	OwnerID    string `json:"owner_id" firestore:"ownerId"`
	OwnerEmail string `json:"owner_email" firestore:"ownerEmail"`

	// Claim sub-state; zero values mean the report is unclaimed.
	ClaimedBy          string     `json:"claimed_by,omitempty" firestore:"claimedBy"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty" firestore:"claimedAt"`
	VerificationCode   string     `json:"-" firestore:"verificationCode"`
	ProofDescription   string     `json:"proof_description,omitempty" firestore:"proofDescription"`
	ResponseMessage    string     `json:"response_message,omitempty" firestore:"responseMessage"`
	Read               bool       `json:"read" firestore:"read"`
	VerificationStatus string     `json:"verification_status" firestore:"verificationStatus"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Claimed reports whether the report carries an unresolved or verified claim.
func (r *Report) Claimed() bool {
	return r.ClaimedBy != ""
}
