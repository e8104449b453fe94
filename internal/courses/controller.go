package courses

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller interface {
	CreateCourse(c *gin.Context)
	GetCourse(c *gin.Context)
	ListCourses(c *gin.Context)
	UpdateCourse(c *gin.Context)
	DeleteCourse(c *gin.Context)

	CreateRoom(c *gin.Context)
	GetRoom(c *gin.Context)
	ListRooms(c *gin.Context)
	UpdateRoom(c *gin.Context)
	DeleteRoom(c *gin.Context)
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Security BearerAuth
// @Router /admin/courses [post]
func (ctrl *controller) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	course, err := ctrl.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create course", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Course created successfully", course)
}

// GetCourse godoc
// @Summary Get a course by ID
// @Tags courses
// @Router /courses/{id} [get]
func (ctrl *controller) GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	course, err := ctrl.service.GetCourseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "Course not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get course", nil)
		return
	}

	response.Success(c, http.StatusOK, "Course retrieved successfully", course)
}

// ListCourses godoc
// @Summary List all courses
// @Tags courses
// @Router /courses [get]
func (ctrl *controller) ListCourses(c *gin.Context) {
	courseList, err := ctrl.service.GetAllCourses(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list courses", nil)
		return
	}

	response.Success(c, http.StatusOK, "Courses retrieved successfully", courseList)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Security BearerAuth
// @Router /admin/courses/{id} [put]
func (ctrl *controller) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	course, err := ctrl.service.UpdateCourse(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "Course not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update course", nil)
		return
	}

	response.Success(c, http.StatusOK, "Course updated successfully", course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Security BearerAuth
// @Router /admin/courses/{id} [delete]
func (ctrl *controller) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "Course not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete course", nil)
		return
	}

	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Security BearerAuth
// @Router /admin/rooms [post]
func (ctrl *controller) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	room, err := ctrl.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create room", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Room created successfully", room)
}

// GetRoom godoc
// @Summary Get a room by ID
// @Tags rooms
// @Router /rooms/{id} [get]
func (ctrl *controller) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.service.GetRoomByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get room", nil)
		return
	}

	response.Success(c, http.StatusOK, "Room retrieved successfully", room)
}

// ListRooms godoc
// @Summary List all rooms
// @Tags rooms
// @Router /rooms [get]
func (ctrl *controller) ListRooms(c *gin.Context) {
	roomList, err := ctrl.service.GetAllRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list rooms", nil)
		return
	}

	response.Success(c, http.StatusOK, "Rooms retrieved successfully", roomList)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Security BearerAuth
// @Router /admin/rooms/{id} [put]
func (ctrl *controller) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	room, err := ctrl.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update room", nil)
		return
	}

	response.Success(c, http.StatusOK, "Room updated successfully", room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Security BearerAuth
// @Router /admin/rooms/{id} [delete]
func (ctrl *controller) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete room", nil)
		return
	}

	response.Success(c, http.StatusOK, "Room deleted successfully", nil)
}
