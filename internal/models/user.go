package models

// User represents a registered account. A user owns zero or more expenses
// and at most one budget.
type User struct {
	Base
	Username string    `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Email    string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
	Budget   *Budget   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"budget,omitempty"`
}
