package entity

import (
	"time"
)

// AdminLog and UserLog are append-only audit records; there is no update or
// delete path for either.

type AdminLog struct {
	ID        string    `json:"id" firestore:"id"`
	AdminID   string    `json:"admin_id" firestore:"adminId"`
	Action    string    `json:"action" firestore:"action"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

type UserLog struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	Action    string    `json:"action" firestore:"action"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
