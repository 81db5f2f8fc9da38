package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
	"studytrack/api/internal/service"
)

const defaultSessionListLimit = 50

type createSessionRequest struct {
	Date       time.Time `json:"date" binding:"required"`
	Duration   int       `json:"duration" binding:"required,min=1"`
	StudyType  string    `json:"studyType" binding:"required,oneof=speaking reading writing listening grammar vocabulary"`
	Notes      *string   `json:"notes"`
	ResourceID *string   `json:"resourceId"`
}

type sessionResponse struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Duration   int       `json:"duration"`
	StudyType  string    `json:"studyType"`
	Notes      *string   `json:"notes,omitempty"`
	ResourceID *string   `json:"resourceId,omitempty"`
}

func (h HandlerSet) CreateStudySession(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.studyService.LogSession(c.Request.Context(), user.ID, service.LogSessionInput{
		Date:       req.Date,
		Duration:   req.Duration,
		StudyType:  models.StudyType(req.StudyType),
		Notes:      req.Notes,
		ResourceID: req.ResourceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownResource) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("create study session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": toSessionResponse(session)})
}

func (h HandlerSet) ListStudySessions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessions, err := h.studyService.ListSessions(c.Request.Context(), user.ID, filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list study sessions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, toSessionResponse(session))
	}

	c.JSON(http.StatusOK, gin.H{"sessions": resp})
}

// parseListFilter reads limit, from, to and order query parameters into a
// session list filter. The default lists the 50 newest sessions.
func parseListFilter(c *gin.Context) (repository.ListFilter, error) {
	filter := repository.ListFilter{Limit: defaultSessionListLimit}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return repository.ListFilter{}, errors.New("invalid limit")
		}
		filter.Limit = limit
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return repository.ListFilter{}, errors.New("invalid from date")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return repository.ListFilter{}, errors.New("invalid to date")
		}
		filter.To = &to
	}
	switch c.Query("order") {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		return repository.ListFilter{}, errors.New("invalid order")
	}

	return filter, nil
}

func toSessionResponse(session models.StudySession) sessionResponse {
	return sessionResponse{
		ID:         session.ID,
		Date:       session.Date,
		Duration:   session.Duration,
		StudyType:  string(session.StudyType),
		Notes:      session.Notes,
		ResourceID: session.ResourceID,
	}
}
