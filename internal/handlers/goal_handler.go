package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
)

// GoalHandler handles budget goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a budget goal
type CreateGoalRequest struct {
	UserID       uint              `json:"user_id" binding:"required"`
	Name         string            `json:"goal_name" binding:"required,max=100"`
	TargetAmount int64             `json:"target_amount" binding:"required,gt=0"`
	Type         models.GoalType   `json:"goal_type" binding:"omitempty,goal_type"`
	Period       models.GoalPeriod `json:"period" binding:"omitempty,goal_period"`
	StartDate    string            `json:"start_date"`
}

// CreateGoal handles the creation of a new budget goal
// @Summary     Create a budget goal
// @Description Create a spending limit or savings target for a user. Defaults to a monthly spending limit starting now; the end date is derived from the period.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} MessageResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := parseFlexibleTime(req.StartDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		startDate = parsed
	}

	goal, err := h.goalService.CreateGoal(req.UserID, req.Name, req.TargetAmount, req.Type, req.Period, startDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Budget goal created successfully",
		"goal_id": goal.ID,
	})
}

// GetUserGoals handles the retrieval of a user's goals with live progress
// @Summary     List goals
// @Description Get a user's budget goals with computed progress and over-budget status
// @Tags        goals
// @Produce     json
// @Param       user_id query int true "User ID"
// @Success     200 {array} services.GoalWithProgress "Goals with progress"
// @Failure     400 {object} ErrorResponse "Missing or invalid user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoalByID handles the retrieval of a single goal
// @Summary     Get goal by ID
// @Description Get a budget goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} models.Goal "Goal"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoalRequest represents the request payload for updating a budget goal.
type UpdateGoalRequest struct {
	Name          *string            `json:"goal_name" binding:"omitempty,max=100"`
	TargetAmount  *int64             `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *int64             `json:"current_amount" binding:"omitempty,gte=0"`
	Type          *models.GoalType   `json:"goal_type" binding:"omitempty,goal_type"`
	Period        *models.GoalPeriod `json:"period" binding:"omitempty,goal_period"`
	StartDate     *string            `json:"start_date"`
	EndDate       *string            `json:"end_date"`
}

// UpdateGoal handles updating an existing budget goal
// @Summary     Update goal
// @Description Update a budget goal. Absent fields are left unchanged.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to update"
// @Success     200 {object} MessageResponse "Goal updated"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.GoalUpdateFields{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Type:          req.Type,
		Period:        req.Period,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		fields.StartDate = &parsed
	}

	if req.EndDate != nil && *req.EndDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		fields.EndDate = &parsed
	}

	if _, err := h.goalService.UpdateGoal(goalID, fields); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Budget goal updated successfully",
		"affected_rows": 1,
	})
}

// DeleteGoal handles the deletion of a budget goal
// @Summary     Delete goal
// @Description Delete a budget goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path int true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Budget goal deleted successfully",
		"affected_rows": 1,
	})
}
