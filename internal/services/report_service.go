package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
)

// reportService computes derived aggregates over transaction history.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetMonthlySummary returns per-month income/expense totals for a user,
// newest month first. The reduction happens in Go so the month bucketing
// is identical on every database backend.
func (s *reportService) GetMonthlySummary(userID uint) ([]MonthlySummary, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byMonth := make(map[string]*MonthlySummary)
	for i := range transactions {
		t := &transactions[i]
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		summary, ok := byMonth[month]
		if !ok {
			summary = &MonthlySummary{MonthStart: month}
			byMonth[month] = summary
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			summary.TotalExpense += t.Amount
		}
	}

	result := make([]MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		summary.NetChange = summary.TotalIncome - summary.TotalExpense
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MonthStart > result[j].MonthStart
	})
	return result, nil
}

// GetSpendingByCategory returns a user's expense totals grouped by
// category, largest first.
func (s *reportService) GetSpendingByCategory(userID uint) ([]CategorySpending, error) {
	var rows []CategorySpending
	err := s.db.Model(&models.Transaction{}).
		Select(`categories.name AS category_name,
			COALESCE(SUM(transactions.amount), 0) AS total_spent,
			COUNT(transactions.id) AS transaction_count`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, models.TransactionTypeExpense).
		Group("categories.id, categories.name").
		Order("total_spent DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}
