package entity

import (
	"time"
)

type ContactMessage struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	RollNo      string    `json:"roll_no" firestore:"rollNo"`
	Email       string    `json:"email" firestore:"email"`
	Item        string    `json:"item" firestore:"item"`
	Description string    `json:"description" firestore:"description"`
	FakeClaim   bool      `json:"fake_claim" firestore:"fakeClaim"`
	ReportID    string    `json:"report_id,omitempty" firestore:"reportId,omitempty"`
	UserID      string    `json:"user_id" firestore:"userId"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
