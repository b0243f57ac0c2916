package services

import (
	"encoding/csv"
	"io"
	"strconv"

	apperrors "spendtrack/internal/errors"
)

// exportService serializes a user's expense history.
type exportService struct {
	expenseService ExpenseServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(expenseService ExpenseServicer) ExportServicer {
	return &exportService{expenseService: expenseService}
}

// WriteCSV writes the user's full expense history to w as CSV with a
// Date,Category,Amount,Description header. Dates are formatted YYYY-MM-DD;
// embedded commas and quotes get standard CSV quoting.
func (s *exportService) WriteCSV(userID uint, w io.Writer) error {
	expenses, err := s.expenseService.ListExpenses(userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Category", "Amount", "Description"}); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, e := range expenses {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Description,
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
