package models

// Budget represents a user's monthly spending ceiling.
// The unique index on UserID guarantees at most one row per user;
// setting a budget again updates the existing row in place.
type Budget struct {
	Base
	UserID       uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	MonthlyLimit float64 `gorm:"not null" json:"monthly_limit"`
}
