package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db            *gorm.DB
	strictAmounts bool
}

// NewExpenseService creates a new ExpenseServicer. With strictAmounts set,
// zero and negative amounts are rejected; otherwise any numeric value is
// accepted so refunds can be recorded as negative entries.
func NewExpenseService(db *gorm.DB, strictAmounts bool) ExpenseServicer {
	return &expenseService{db: db, strictAmounts: strictAmounts}
}

// checkOwner permits access iff the record belongs to the requester.
func checkOwner(recordOwnerID, requesterID uint) error {
	if recordOwnerID != requesterID {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *expenseService) checkAmount(amount float64) error {
	if s.strictAmounts && amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// AddExpense creates a new expense owned by userID. The category is free
// text and the date is stored as given.
func (s *expenseService) AddExpense(userID uint, amount float64, category, description string, date time.Time) (*models.Expense, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if err := s.checkAmount(amount); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetExpenseByID looks an expense up by primary key and then verifies
// ownership, so a missing id and a foreign record fail differently.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := checkOwner(expense.UserID, userID); err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense overwrites amount, category, and description in place.
// Date, owner, and id never change after creation.
func (s *expenseService) UpdateExpense(userID, expenseID uint, amount float64, category, description string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if err := s.checkAmount(amount); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"amount":      amount,
		"category":    category,
		"description": description,
	}
	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes an expense after the same lookup and ownership
// checks as UpdateExpense.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListExpenses returns the full ledger for a user in insertion order.
// Scoping happens in the query itself, never by filtering a broader set.
func (s *expenseService) ListExpenses(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListExpensesInRange returns the user's expenses with date in [start, end).
func (s *expenseService) ListExpensesInRange(userID uint, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
