package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
)

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn   func(userID uint, name string, targetAmount int64, goalType models.GoalType, period models.GoalPeriod, startDate time.Time) (*models.Goal, error)
	getUserGoalsFn func(userID uint) ([]services.GoalWithProgress, error)
	getGoalByIDFn  func(goalID uint) (*models.Goal, error)
	updateGoalFn   func(goalID uint, fields services.GoalUpdateFields) (*models.Goal, error)
	deleteGoalFn   func(goalID uint) error
}

func (m *mockGoalService) CreateGoal(userID uint, name string, targetAmount int64, goalType models.GoalType, period models.GoalPeriod, startDate time.Time) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, targetAmount, goalType, period, startDate)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) GetUserGoals(userID uint) ([]services.GoalWithProgress, error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID)
	}
	return []services.GoalWithProgress{}, nil
}

func (m *mockGoalService) GetGoalByID(goalID uint) (*models.Goal, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(goalID)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoal(goalID uint, fields services.GoalUpdateFields) (*models.Goal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(goalID, fields)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) DeleteGoal(goalID uint) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(goalID)
	}
	return nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/goals", handler.CreateGoal)
	r.GET("/goals", handler.GetUserGoals)
	r.GET("/goals/:id", handler.GetGoalByID)
	r.PUT("/goals/:id", handler.UpdateGoal)
	r.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

// --- tests ---

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		goalSvc := &mockGoalService{
			createGoalFn: func(userID uint, name string, targetAmount int64, _ models.GoalType, _ models.GoalPeriod, _ time.Time) (*models.Goal, error) {
				return &models.Goal{
					Base:         models.Base{ID: 9},
					UserID:       userID,
					Name:         name,
					TargetAmount: targetAmount,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "POST", "/goals",
			`{"user_id":1,"goal_name":"Groceries budget","target_amount":30000,"goal_type":"spending_limit","period":"monthly","start_date":"2026-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["goal_id"].(float64) != 9 {
			t.Errorf("expected goal_id 9, got %v", result["goal_id"])
		}
	})

	t.Run("defaults start date to now when absent", func(t *testing.T) {
		var gotStart time.Time
		goalSvc := &mockGoalService{
			createGoalFn: func(_ uint, _ string, _ int64, _ models.GoalType, _ models.GoalPeriod, start time.Time) (*models.Goal, error) {
				gotStart = start
				return &models.Goal{}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "POST", "/goals",
			`{"user_id":1,"goal_name":"Coffee budget","target_amount":2000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStart.IsZero() {
			t.Error("expected start date to default to now")
		}
	})

	t.Run("returns 400 on invalid period", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals",
			`{"user_id":1,"goal_name":"Bad","target_amount":2000,"period":"daily"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals", `{"user_id":1,"goal_name":"Bad"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when user not found", func(t *testing.T) {
		goalSvc := &mockGoalService{
			createGoalFn: func(uint, string, int64, models.GoalType, models.GoalPeriod, time.Time) (*models.Goal, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "POST", "/goals",
			`{"user_id":999,"goal_name":"Orphan","target_amount":1000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_GetUserGoals(t *testing.T) {
	t.Run("returns goals with progress", func(t *testing.T) {
		goalSvc := &mockGoalService{
			getUserGoalsFn: func(uint) ([]services.GoalWithProgress, error) {
				return []services.GoalWithProgress{
					{
						Goal:          models.Goal{Base: models.Base{ID: 1}, Name: "Groceries budget", TargetAmount: 30000},
						CurrentAmount: 17000,
						IsOverBudget:  false,
					},
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "GET", "/goals?user_id=1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{`"current_amount":17000`, `"is_over_budget":false`} {
			if !strings.Contains(body, want) {
				t.Errorf("expected body to contain %s, got %s", want, body)
			}
		}
	})

	t.Run("returns 400 without user_id", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "GET", "/goals", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	t.Run("returns 200 and forwards fields", func(t *testing.T) {
		var gotFields services.GoalUpdateFields
		goalSvc := &mockGoalService{
			updateGoalFn: func(_ uint, fields services.GoalUpdateFields) (*models.Goal, error) {
				gotFields = fields
				return &models.Goal{}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "PUT", "/goals/1", `{"target_amount":50000,"period":"yearly"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFields.TargetAmount == nil || *gotFields.TargetAmount != 50000 {
			t.Error("expected target_amount field to be forwarded")
		}
		if gotFields.Period == nil || *gotFields.Period != models.GoalPeriodYearly {
			t.Error("expected period field to be forwarded")
		}
		if gotFields.Name != nil {
			t.Error("expected absent name to stay nil")
		}
	})

	t.Run("returns 400 when no fields supplied", func(t *testing.T) {
		goalSvc := &mockGoalService{
			updateGoalFn: func(uint, services.GoalUpdateFields) (*models.Goal, error) {
				return nil, apperrors.ErrNoFieldsToUpdate
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "PUT", "/goals/1", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		goalSvc := &mockGoalService{
			updateGoalFn: func(uint, services.GoalUpdateFields) (*models.Goal, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "PUT", "/goals/999", `{"target_amount":100}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "DELETE", "/goals/1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		goalSvc := &mockGoalService{
			deleteGoalFn: func(uint) error { return apperrors.ErrGoalNotFound },
		}
		r := setupGoalRouter(NewGoalHandler(goalSvc))

		rec := doRequest(r, "DELETE", "/goals/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
