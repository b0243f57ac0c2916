package models

import "time"

// Expense represents a single dated, categorized expense entry.
// UserID and Date are fixed at creation; edits touch amount, category,
// and description only.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"size:200" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
}
