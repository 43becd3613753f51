package models

import "time"

// GoalType represents the kind of budget goal
type GoalType string

const (
	GoalTypeSpendingLimit GoalType = "spending_limit"
	GoalTypeSavingsTarget GoalType = "savings_target"
)

// GoalPeriod represents the length of a goal's tracking window
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// Goal represents a budget goal. Goals never affect account balances.
//
// CurrentAmount is only meaningful for savings targets, where it is a
// stored value maintained by the caller. For spending limits, progress
// is derived at read time from expense transactions in the goal window.
type Goal struct {
	Base
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	TargetAmount  int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Type          GoalType   `gorm:"not null" json:"type"`
	Period        GoalPeriod `gorm:"not null" json:"period"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// WindowEnd returns the end of the goal's tracking window, falling back
// to now when no end date is set.
func (g *Goal) WindowEnd(now time.Time) time.Time {
	if g.EndDate != nil {
		return *g.EndDate
	}
	return now
}
