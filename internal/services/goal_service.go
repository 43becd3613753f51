package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
)

// goalService handles budget goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// periodEnd derives a goal's end date from its start date and period.
func periodEnd(start time.Time, period models.GoalPeriod) time.Time {
	switch period {
	case models.GoalPeriodWeekly:
		return start.AddDate(0, 0, 7)
	case models.GoalPeriodYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// CreateGoal creates a new goal. The end date is derived from the start
// date and period.
func (s *goalService) CreateGoal(
	userID uint,
	name string,
	targetAmount int64,
	goalType models.GoalType,
	period models.GoalPeriod,
	startDate time.Time,
) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if startDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date is required")
	}
	if goalType == "" {
		goalType = models.GoalTypeSpendingLimit
	}
	if period == "" {
		period = models.GoalPeriodMonthly
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	endDate := periodEnd(startDate, period)
	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		Type:         goalType,
		Period:       period,
		StartDate:    startDate,
		EndDate:      &endDate,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserGoals returns the user's goals with read-time progress, newest
// start date first.
func (s *goalService) GetUserGoals(userID uint) ([]GoalWithProgress, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make([]GoalWithProgress, 0, len(goals))
	for i := range goals {
		progress, err := s.goalProgress(&goals[i])
		if err != nil {
			return nil, err
		}
		result = append(result, GoalWithProgress{
			Goal:          goals[i],
			CurrentAmount: progress,
			IsOverBudget:  progress > goals[i].TargetAmount,
		})
	}
	return result, nil
}

// goalProgress computes a goal's current amount. Spending limits sum the
// user's expense transactions within the goal window; savings targets use
// the stored current amount.
func (s *goalService) goalProgress(goal *models.Goal) (int64, error) {
	if goal.Type != models.GoalTypeSpendingLimit {
		return goal.CurrentAmount, nil
	}

	var spent int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
			goal.UserID, models.TransactionTypeExpense, goal.StartDate, goal.WindowEnd(time.Now())).
		Scan(&spent).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}

// GetGoalByID retrieves a goal by ID.
func (s *goalService) GetGoalByID(goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal applies a partial update to a goal.
func (s *goalService) UpdateGoal(goalID uint, fields GoalUpdateFields) (*models.Goal, error) {
	goal, err := s.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}

	if fields.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if fields.TargetAmount != nil && *fields.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.TargetAmount != nil {
		updates["target_amount"] = *fields.TargetAmount
	}
	if fields.CurrentAmount != nil {
		updates["current_amount"] = *fields.CurrentAmount
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.Period != nil {
		updates["period"] = *fields.Period
	}
	if fields.StartDate != nil {
		updates["start_date"] = *fields.StartDate
	}
	if fields.EndDate != nil {
		updates["end_date"] = *fields.EndDate
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.db.Model(goal).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(goalID uint) error {
	goal, err := s.GetGoalByID(goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
