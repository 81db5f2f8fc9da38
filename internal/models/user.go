package models

import "time"

type TargetLevel string

const (
	TargetLevelA1 TargetLevel = "A1"
	TargetLevelA2 TargetLevel = "A2"
	TargetLevelB1 TargetLevel = "B1"
	TargetLevelB2 TargetLevel = "B2"
	TargetLevelC1 TargetLevel = "C1"
	TargetLevelC2 TargetLevel = "C2"
)

type User struct {
	ID               string
	Email            string
	PasswordHash     []byte
	Name             string
	TargetLanguage   string
	TargetLevel      TargetLevel
	DailyGoalHours   float64
	WeeklyGoalHours  float64
	MonthlyGoalHours float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
