package services

import "time"

// dashboardService aggregates a user's spending against their budget.
type dashboardService struct {
	expenseService ExpenseServicer
	budgetService  BudgetServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(expenseService ExpenseServicer, budgetService BudgetServicer) DashboardServicer {
	return &dashboardService{expenseService: expenseService, budgetService: budgetService}
}

// MonthWindow returns the half-open window [first of month, first of next
// month) for the given calendar month. December rolls over into January
// of the following year.
func MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// GetSummary computes total spend, remaining budget, percentage consumed,
// and per-category subtotals for the window [start, end). Categories keep
// the order in which they first appear in the fetched records. A missing
// or zero budget yields percentage 0, never a division by zero.
func (s *dashboardService) GetSummary(userID uint, start, end time.Time) (*Summary, error) {
	expenses, err := s.expenseService.ListExpensesInRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	budget, err := s.budgetService.GetBudget(userID)
	if err != nil {
		return nil, err
	}
	limit := budget.MonthlyLimit

	remaining := limit - total
	var percentage float64
	if limit > 0 {
		percentage = total / limit * 100
	}

	categories := make([]CategoryTotal, 0)
	index := make(map[string]int)
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			categories[i].Amount += e.Amount
			continue
		}
		index[e.Category] = len(categories)
		categories = append(categories, CategoryTotal{Category: e.Category, Amount: e.Amount})
	}

	return &Summary{
		Total:       total,
		BudgetLimit: limit,
		Remaining:   remaining,
		Percentage:  percentage,
		Categories:  categories,
		Expenses:    expenses,
	}, nil
}
