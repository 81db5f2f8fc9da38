package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/models"
	"studytrack/api/internal/service"
)

type createResourceRequest struct {
	Name        string  `json:"name" binding:"required"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Type        string  `json:"type" binding:"required,oneof=video podcast book course app website other"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=active completed"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes       *string `json:"notes"`
}

type resourceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         *string `json:"url,omitempty"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Rating      *int    `json:"rating,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (h HandlerSet) CreateResource(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	var req createResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.studyService.AddResource(c.Request.Context(), user.ID, service.AddResourceInput{
		Name:        req.Name,
		URL:         req.URL,
		Type:        models.ResourceType(req.Type),
		Description: req.Description,
		Status:      models.ResourceStatus(req.Status),
		Rating:      req.Rating,
		Notes:       req.Notes,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create resource failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"resource": toResourceResponse(resource)})
}

func (h HandlerSet) ListResources(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	resources, err := h.studyService.ListResources(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list resources failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	resp := make([]resourceResponse, 0, len(resources))
	for _, resource := range resources {
		resp = append(resp, toResourceResponse(resource))
	}

	c.JSON(http.StatusOK, gin.H{"resources": resp})
}

func toResourceResponse(resource models.Resource) resourceResponse {
	return resourceResponse{
		ID:          resource.ID,
		Name:        resource.Name,
		URL:         resource.URL,
		Type:        string(resource.Type),
		Description: resource.Description,
		Status:      string(resource.Status),
		Rating:      resource.Rating,
		Notes:       resource.Notes,
	}
}
