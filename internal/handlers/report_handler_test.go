package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	getMonthlySummaryFn     func(userID uint) ([]services.MonthlySummary, error)
	getSpendingByCategoryFn func(userID uint) ([]services.CategorySpending, error)
}

func (m *mockReportService) GetMonthlySummary(userID uint) ([]services.MonthlySummary, error) {
	if m.getMonthlySummaryFn != nil {
		return m.getMonthlySummaryFn(userID)
	}
	return []services.MonthlySummary{}, nil
}

func (m *mockReportService) GetSpendingByCategory(userID uint) ([]services.CategorySpending, error) {
	if m.getSpendingByCategoryFn != nil {
		return m.getSpendingByCategoryFn(userID)
	}
	return []services.CategorySpending{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/users/:id/monthly-summary", handler.GetMonthlySummary)
	r.GET("/users/:id/spending-by-category", handler.GetSpendingByCategory)
	return r
}

// --- tests ---

func TestReportHandler_GetMonthlySummary(t *testing.T) {
	t.Run("returns summaries", func(t *testing.T) {
		var gotUserID uint
		reportSvc := &mockReportService{
			getMonthlySummaryFn: func(userID uint) ([]services.MonthlySummary, error) {
				gotUserID = userID
				return []services.MonthlySummary{
					{MonthStart: "2026-03-01", TotalIncome: 50000, TotalExpense: 20000, NetChange: 30000},
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/users/5/monthly-summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotUserID != 5 {
			t.Errorf("expected user ID 5, got %d", gotUserID)
		}
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/users/abc/monthly-summary", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetSpendingByCategory(t *testing.T) {
	t.Run("returns rows", func(t *testing.T) {
		reportSvc := &mockReportService{
			getSpendingByCategoryFn: func(uint) ([]services.CategorySpending, error) {
				return []services.CategorySpending{
					{CategoryName: "Groceries", TotalSpent: 20000, TransactionCount: 2},
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/users/5/spending-by-category", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("propagates service errors", func(t *testing.T) {
		reportSvc := &mockReportService{
			getSpendingByCategoryFn: func(uint) ([]services.CategorySpending, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/users/5/spending-by-category", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
