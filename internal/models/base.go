package models

import "time"

// Base contains common columns for all tables. Deletion in this system is
// physical and paired with balance restoration, so there is no DeletedAt.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
