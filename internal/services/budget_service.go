package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates the user's budget on first call and mutates the
// existing row on every call after that. A user never has two budgets.
func (s *budgetService) SetBudget(userID uint, monthlyLimit float64) (*models.Budget, error) {
	if monthlyLimit < 0 {
		return nil, apperrors.ErrNegativeBudget
	}

	var budget models.Budget
	err := s.db.Where("user_id = ?", userID).First(&budget).Error
	switch {
	case err == nil:
		if err := s.db.Model(&budget).Update("monthly_limit", monthlyLimit).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, MonthlyLimit: monthlyLimit}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetBudget returns the user's budget. When no budget has been set it
// returns a zero-limit sentinel instead of an error, so callers can
// always render a dashboard.
func (s *budgetService) GetBudget(userID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Budget{UserID: userID, MonthlyLimit: 0}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}
