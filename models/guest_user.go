package models

import "time"

// GuestUser records an issued guest session so expired guests can be swept.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
