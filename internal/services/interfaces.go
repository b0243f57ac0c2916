package services

import (
	"io"
	"time"

	"spendtrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	DeleteUser(id uint) error
	VerifyPassword(user *models.User, password string) bool
	SetPassword(user *models.User, password string) error
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	AddExpense(userID uint, amount float64, category, description string, date time.Time) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, amount float64, category, description string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	ListExpenses(userID uint) ([]models.Expense, error)
	ListExpensesInRange(userID uint, start, end time.Time) ([]models.Expense, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(userID uint, monthlyLimit float64) (*models.Budget, error)
	GetBudget(userID uint) (*models.Budget, error)
}

// CategoryTotal is the summed spend for one category label.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Summary contains spending vs budget data for a time window.
type Summary struct {
	Total       float64          `json:"total"`
	BudgetLimit float64          `json:"budget_limit"`
	Remaining   float64          `json:"remaining"`
	Percentage  float64          `json:"percentage"`
	Categories  []CategoryTotal  `json:"categories"`
	Expenses    []models.Expense `json:"expenses"`
}

// DashboardServicer defines the contract for spending aggregation.
type DashboardServicer interface {
	GetSummary(userID uint, start, end time.Time) (*Summary, error)
}

// ExportServicer defines the contract for exporting a user's expense history.
type ExportServicer interface {
	WriteCSV(userID uint, w io.Writer) error
}
