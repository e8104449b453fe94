package enrollments

import (
	"errors"
	"net/http"

	"varsity/internal/sections"
	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller interface {
	Enroll(c *gin.Context)
	Drop(c *gin.Context)
	GetSchedule(c *gin.Context)
	BrowseSections(c *gin.Context)
}

type controller struct {
	service  Service
	validate *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:  service,
		validate: validator.New(),
	}
}

func studentFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid user identity", nil)
		return uuid.Nil, false
	}

	return id, true
}

// Enroll godoc
// @Summary Join a section
// @Description Enrolls the student in a section. A schedule clash does not block enrollment; the response flags it.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Section to join"
// @Success 201 {object} response.StandardApiResponse{data=ScheduleEntry}
// @Failure 404 {object} response.StandardApiResponse
// @Failure 409 {object} response.StandardApiResponse
// @Router /enrollments [post]
func (ctrl *controller) Enroll(c *gin.Context) {
	studentID, ok := studentFromContext(c)
	if !ok {
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	sectionID, err := uuid.Parse(req.SectionID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid section ID format", nil)
		return
	}

	entry, err := ctrl.service.Enroll(c.Request.Context(), studentID, sectionID)
	if err != nil {
		switch {
		case errors.Is(err, sections.ErrSectionNotFound):
			response.Error(c, http.StatusNotFound, "Section not found", nil)
		case errors.Is(err, ErrAlreadyEnrolled):
			response.Error(c, http.StatusConflict, "Already enrolled in this section", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to enroll", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Enrolled successfully", entry)
}

// Drop godoc
// @Summary Drop a section
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /enrollments/{sectionId} [delete]
func (ctrl *controller) Drop(c *gin.Context) {
	studentID, ok := studentFromContext(c)
	if !ok {
		return
	}

	sectionID, err := uuid.Parse(c.Param("sectionId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid section ID format", nil)
		return
	}

	if err := ctrl.service.Drop(c.Request.Context(), studentID, sectionID); err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			response.Error(c, http.StatusNotFound, "Enrollment not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to drop section", nil)
		return
	}

	response.Success(c, http.StatusOK, "Section dropped successfully", nil)
}

// GetSchedule godoc
// @Summary Get the authenticated student's schedule
// @Description Lists enrolled sections, each flagged with the section IDs it clashes with.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=[]ScheduleEntry}
// @Router /enrollments [get]
func (ctrl *controller) GetSchedule(c *gin.Context) {
	studentID, ok := studentFromContext(c)
	if !ok {
		return
	}

	schedule, err := ctrl.service.GetSchedule(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get schedule", nil)
		return
	}

	response.Success(c, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// BrowseSections godoc
// @Summary Browse sections with enrollment and clash flags
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=[]SectionAvailability}
// @Router /enrollments/sections [get]
func (ctrl *controller) BrowseSections(c *gin.Context) {
	studentID, ok := studentFromContext(c)
	if !ok {
		return
	}

	result, err := ctrl.service.BrowseSections(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to browse sections", nil)
		return
	}

	response.Success(c, http.StatusOK, "Sections retrieved successfully", result)
}
