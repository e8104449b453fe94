package analytics

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetFixtureAnalytics(c *gin.Context)
	GetGlobalAnalytics(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetFixtureAnalytics godoc
// @Summary Ticket sales analytics for one fixture
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fixture ID"
// @Success 200 {object} response.StandardApiResponse{data=FixtureAnalytics}
// @Router /admin/analytics/fixtures/{id} [get]
func (ctrl *controller) GetFixtureAnalytics(c *gin.Context) {
	fixtureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid fixture ID format", nil)
		return
	}

	result, err := ctrl.service.GetFixtureAnalytics(c.Request.Context(), fixtureID)
	if err != nil {
		if errors.Is(err, ErrFixtureNotFound) {
			response.Error(c, http.StatusNotFound, "Fixture not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get analytics", nil)
		return
	}

	response.Success(c, http.StatusOK, "Analytics retrieved successfully", result)
}

// GetGlobalAnalytics godoc
// @Summary Sales and enrollment analytics across the platform
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=GlobalAnalytics}
// @Router /admin/analytics [get]
func (ctrl *controller) GetGlobalAnalytics(c *gin.Context) {
	result, err := ctrl.service.GetGlobalAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get analytics", nil)
		return
	}

	response.Success(c, http.StatusOK, "Analytics retrieved successfully", result)
}
