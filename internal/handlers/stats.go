package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/stats"
)

type summaryResponse struct {
	TodayMinutes   int     `json:"todayMinutes"`
	TodayHours     float64 `json:"todayHours"`
	TotalMinutes   int     `json:"totalMinutes"`
	TotalHours     float64 `json:"totalHours"`
	TotalSessions  int     `json:"totalSessions"`
	CurrentStreak  int     `json:"currentStreak"`
	DailyGoalHours float64 `json:"dailyGoalHours"`
}

func (h HandlerSet) StatsSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	summary, err := h.statsService.Summary(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("stats summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		TodayMinutes:   summary.TodayMinutes,
		TodayHours:     stats.Hours(summary.TodayMinutes),
		TotalMinutes:   summary.TotalMinutes,
		TotalHours:     stats.Hours(summary.TotalMinutes),
		TotalSessions:  summary.TotalSessions,
		CurrentStreak:  summary.CurrentStreak,
		DailyGoalHours: user.DailyGoalHours,
	})
}
