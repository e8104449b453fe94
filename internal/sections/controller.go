package sections

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	ListMine(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
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

// Create godoc
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSectionRequest true "Section details"
// @Success 201 {object} response.StandardApiResponse{data=SectionResponse}
// @Router /admin/sections [post]
func (ctrl *controller) Create(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	section, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create section", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Section created successfully", section)
}

// Get godoc
// @Summary Get a section by ID
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response.StandardApiResponse{data=SectionResponse}
// @Router /sections/{id} [get]
func (ctrl *controller) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ID format", nil)
		return
	}

	section, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			response.Error(c, http.StatusNotFound, "Section not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get section", nil)
		return
	}

	response.Success(c, http.StatusOK, "Section retrieved successfully", section)
}

// List godoc
// @Summary List all sections
// @Tags sections
// @Produce json
// @Success 200 {object} response.StandardApiResponse{data=[]SectionResponse}
// @Router /sections [get]
func (ctrl *controller) List(c *gin.Context) {
	sectionList, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list sections", nil)
		return
	}

	response.Success(c, http.StatusOK, "Sections retrieved successfully", sectionList)
}

// ListMine godoc
// @Summary List sections taught by the authenticated faculty member
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=[]SectionResponse}
// @Router /faculty/sections [get]
func (ctrl *controller) ListMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	facultyID, err := uuid.Parse(userID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid user identity", nil)
		return
	}

	sectionList, err := ctrl.service.GetByFaculty(c.Request.Context(), facultyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list sections", nil)
		return
	}

	response.Success(c, http.StatusOK, "Sections retrieved successfully", sectionList)
}

// Update godoc
// @Summary Update a section
// @Tags sections
// @Security BearerAuth
// @Router /admin/sections/{id} [put]
func (ctrl *controller) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ID format", nil)
		return
	}

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	section, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			response.Error(c, http.StatusNotFound, "Section not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update section", nil)
		return
	}

	response.Success(c, http.StatusOK, "Section updated successfully", section)
}

// Delete godoc
// @Summary Delete a section
// @Tags sections
// @Security BearerAuth
// @Router /admin/sections/{id} [delete]
func (ctrl *controller) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ID format", nil)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			response.Error(c, http.StatusNotFound, "Section not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete section", nil)
		return
	}

	response.Success(c, http.StatusOK, "Section deleted successfully", nil)
}
