// Package entity contains the core domain models.
package entity

import "time"

// MedicalInfo is the per-user medical profile record. The stored document
// does not carry its own id; UserID is attached when the record is read.
type MedicalInfo struct {
	UserID    string    `json:"user_id" firestore:"-"`
	Height    float64   `json:"height" firestore:"height"`
	Weight    float64   `json:"weight" firestore:"weight"`
	CreatedAt time.Time `json:"-" firestore:"created_at"`
	UpdatedAt time.Time `json:"-" firestore:"updated_at"`
}
