package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendtrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique
// username and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: fmt.Sprintf("user%d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense dated today.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount float64, category string) *models.Expense {
	t.Helper()
	return CreateTestExpenseOnDate(t, db, userID, amount, category, time.Now())
}

// CreateTestExpenseOnDate creates an expense with the given date.
func CreateTestExpenseOnDate(t *testing.T, db *gorm.DB, userID uint, amount float64, category string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget with the given monthly limit.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, monthlyLimit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:       userID,
		MonthlyLimit: monthlyLimit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
