package services

import (
	"testing"
	"time"

	"spendtrack/internal/testutil"
)

func TestMonthWindow(t *testing.T) {
	t.Run("mid_year", func(t *testing.T) {
		start, end := MonthWindow(2024, time.May)
		if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected start 2024-05-01, got %v", start)
		}
		if !end.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected end 2024-06-01, got %v", end)
		}
	})

	t.Run("december_rolls_into_next_year", func(t *testing.T) {
		start, end := MonthWindow(2024, time.December)
		if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected start 2024-12-01, got %v", start)
		}
		if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected end 2025-01-01, got %v", end)
		}
	})
}

func TestGetSummary(t *testing.T) {
	t.Run("totals_remaining_percentage_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 10, "food", day)
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 20, "food", day.AddDate(0, 0, 1))
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 5, "fuel", day.AddDate(0, 0, 2))
		testutil.CreateTestBudget(t, db, user.ID, 50)

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.Total != 35 {
			t.Errorf("expected total 35, got %f", summary.Total)
		}
		if summary.BudgetLimit != 50 {
			t.Errorf("expected budget limit 50, got %f", summary.BudgetLimit)
		}
		if summary.Remaining != 15 {
			t.Errorf("expected remaining 15, got %f", summary.Remaining)
		}
		if summary.Percentage != 70.0 {
			t.Errorf("expected percentage 70.0, got %f", summary.Percentage)
		}
		if len(summary.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(summary.Categories))
		}
		// First-encounter order: food appears before fuel.
		if summary.Categories[0].Category != "food" || summary.Categories[0].Amount != 30 {
			t.Errorf("expected food=30 first, got %+v", summary.Categories[0])
		}
		if summary.Categories[1].Category != "fuel" || summary.Categories[1].Amount != 5 {
			t.Errorf("expected fuel=5 second, got %+v", summary.Categories[1])
		}
		if len(summary.Expenses) != 3 {
			t.Errorf("expected 3 records in summary, got %d", len(summary.Expenses))
		}
	})

	t.Run("zero_budget_yields_zero_percentage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 100, "food", day)
		testutil.CreateTestBudget(t, db, user.ID, 0)

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.Percentage != 0 {
			t.Errorf("expected percentage 0 for zero budget, got %f", summary.Percentage)
		}
		if summary.Remaining != -100 {
			t.Errorf("expected remaining -100 (not clamped), got %f", summary.Remaining)
		}
	})

	t.Run("unset_budget_degrades_to_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 40, "food", day)

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.BudgetLimit != 0 || summary.Percentage != 0 {
			t.Errorf("expected zero budget and percentage, got %f and %f", summary.BudgetLimit, summary.Percentage)
		}
		if summary.Remaining != -40 {
			t.Errorf("expected remaining -40, got %f", summary.Remaining)
		}
	})

	t.Run("window_excludes_other_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseOnDate(t, db, user.ID, 10, "food", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 99, "food", time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 99, "food", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.Total != 10 {
			t.Errorf("expected total 10 from the May window only, got %f", summary.Total)
		}
	})

	t.Run("empty_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.Total != 0 {
			t.Errorf("expected total 0, got %f", summary.Total)
		}
		if summary.Categories == nil || len(summary.Categories) != 0 {
			t.Errorf("expected empty non-nil categories, got %v", summary.Categories)
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewExpenseService(db, false), NewBudgetService(db))
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestExpenseOnDate(t, db, user.ID, 10, "food", day)
		testutil.CreateTestExpenseOnDate(t, db, other.ID, 500, "food", day)

		start, end := MonthWindow(2024, time.May)
		summary, err := svc.GetSummary(user.ID, start, end)
		testutil.AssertNoError(t, err)

		if summary.Total != 10 {
			t.Errorf("expected total 10 for the owner only, got %f", summary.Total)
		}
	})
}
