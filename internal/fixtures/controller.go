package fixtures

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller interface {
	// Teams
	CreateTeam(c *gin.Context)
	GetTeam(c *gin.Context)
	ListTeams(c *gin.Context)
	UpdateTeam(c *gin.Context)
	DeleteTeam(c *gin.Context)

	// Stadiums
	CreateStadium(c *gin.Context)
	GetStadium(c *gin.Context)
	ListStadiums(c *gin.Context)
	UpdateStadium(c *gin.Context)
	DeleteStadium(c *gin.Context)

	// Fixtures
	CreateFixture(c *gin.Context)
	GetFixture(c *gin.Context)
	ListFixtures(c *gin.Context)
	UpdateFixture(c *gin.Context)
	DeleteFixture(c *gin.Context)
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

// CreateTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTeamRequest true "Team details"
// @Success 201 {object} response.StandardApiResponse{data=Team}
// @Router /admin/teams [post]
func (ctrl *controller) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	team, err := ctrl.service.CreateTeam(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create team", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeam godoc
// @Summary Get a team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.StandardApiResponse{data=Team}
// @Router /teams/{id} [get]
func (ctrl *controller) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	team, err := ctrl.service.GetTeamByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			response.Error(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get team", nil)
		return
	}

	response.Success(c, http.StatusOK, "Team retrieved successfully", team)
}

// ListTeams godoc
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {object} response.StandardApiResponse{data=[]Team}
// @Router /teams [get]
func (ctrl *controller) ListTeams(c *gin.Context) {
	teams, err := ctrl.service.GetAllTeams(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list teams", nil)
		return
	}

	response.Success(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags teams
// @Security BearerAuth
// @Router /admin/teams/{id} [put]
func (ctrl *controller) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	team, err := ctrl.service.UpdateTeam(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			response.Error(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update team", nil)
		return
	}

	response.Success(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags teams
// @Security BearerAuth
// @Router /admin/teams/{id} [delete]
func (ctrl *controller) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteTeam(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			response.Error(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete team", nil)
		return
	}

	response.Success(c, http.StatusOK, "Team deleted successfully", nil)
}

// CreateStadium godoc
// @Summary Create a stadium
// @Tags stadiums
// @Security BearerAuth
// @Router /admin/stadiums [post]
func (ctrl *controller) CreateStadium(c *gin.Context) {
	var req CreateStadiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	stadium, err := ctrl.service.CreateStadium(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create stadium", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Stadium created successfully", stadium)
}

// GetStadium godoc
// @Summary Get a stadium by ID
// @Tags stadiums
// @Router /stadiums/{id} [get]
func (ctrl *controller) GetStadium(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	stadium, err := ctrl.service.GetStadiumByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStadiumNotFound) {
			response.Error(c, http.StatusNotFound, "Stadium not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get stadium", nil)
		return
	}

	response.Success(c, http.StatusOK, "Stadium retrieved successfully", stadium)
}

// ListStadiums godoc
// @Summary List all stadiums
// @Tags stadiums
// @Router /stadiums [get]
func (ctrl *controller) ListStadiums(c *gin.Context) {
	stadiums, err := ctrl.service.GetAllStadiums(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list stadiums", nil)
		return
	}

	response.Success(c, http.StatusOK, "Stadiums retrieved successfully", stadiums)
}

// UpdateStadium godoc
// @Summary Update a stadium
// @Tags stadiums
// @Security BearerAuth
// @Router /admin/stadiums/{id} [put]
func (ctrl *controller) UpdateStadium(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStadiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	stadium, err := ctrl.service.UpdateStadium(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrStadiumNotFound) {
			response.Error(c, http.StatusNotFound, "Stadium not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update stadium", nil)
		return
	}

	response.Success(c, http.StatusOK, "Stadium updated successfully", stadium)
}

// DeleteStadium godoc
// @Summary Delete a stadium
// @Tags stadiums
// @Security BearerAuth
// @Router /admin/stadiums/{id} [delete]
func (ctrl *controller) DeleteStadium(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteStadium(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrStadiumNotFound) {
			response.Error(c, http.StatusNotFound, "Stadium not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete stadium", nil)
		return
	}

	response.Success(c, http.StatusOK, "Stadium deleted successfully", nil)
}

// CreateFixture godoc
// @Summary Schedule a fixture
// @Tags fixtures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFixtureRequest true "Fixture details"
// @Success 201 {object} response.StandardApiResponse{data=FixtureResponse}
// @Router /admin/fixtures [post]
func (ctrl *controller) CreateFixture(c *gin.Context) {
	var req CreateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	fixture, err := ctrl.service.CreateFixture(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSameTeams):
			response.Error(c, http.StatusBadRequest, "A team cannot play against itself", nil)
		case errors.Is(err, ErrTeamNotFound):
			response.Error(c, http.StatusNotFound, "Team not found", nil)
		case errors.Is(err, ErrStadiumNotFound):
			response.Error(c, http.StatusNotFound, "Stadium not found", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create fixture", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Fixture created successfully", fixture)
}

// GetFixture godoc
// @Summary Get a fixture by ID
// @Tags fixtures
// @Produce json
// @Param id path string true "Fixture ID"
// @Success 200 {object} response.StandardApiResponse{data=FixtureResponse}
// @Router /fixtures/{id} [get]
func (ctrl *controller) GetFixture(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fixture, err := ctrl.service.GetFixtureByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrFixtureNotFound) {
			response.Error(c, http.StatusNotFound, "Fixture not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get fixture", nil)
		return
	}

	response.Success(c, http.StatusOK, "Fixture retrieved successfully", fixture)
}

// ListFixtures godoc
// @Summary List fixtures
// @Tags fixtures
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.StandardApiResponse{data=PaginatedFixtures}
// @Router /fixtures [get]
func (ctrl *controller) ListFixtures(c *gin.Context) {
	var query FixtureListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := ctrl.service.GetAllFixtures(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list fixtures", nil)
		return
	}

	response.Success(c, http.StatusOK, "Fixtures retrieved successfully", result)
}

// UpdateFixture godoc
// @Summary Update a fixture
// @Tags fixtures
// @Security BearerAuth
// @Router /admin/fixtures/{id} [put]
func (ctrl *controller) UpdateFixture(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	fixture, err := ctrl.service.UpdateFixture(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrFixtureNotFound):
			response.Error(c, http.StatusNotFound, "Fixture not found", nil)
		case errors.Is(err, ErrStadiumNotFound):
			response.Error(c, http.StatusNotFound, "Stadium not found", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update fixture", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Fixture updated successfully", fixture)
}

// DeleteFixture godoc
// @Summary Delete a fixture
// @Tags fixtures
// @Security BearerAuth
// @Router /admin/fixtures/{id} [delete]
func (ctrl *controller) DeleteFixture(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteFixture(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrFixtureNotFound) {
			response.Error(c, http.StatusNotFound, "Fixture not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete fixture", nil)
		return
	}

	response.Success(c, http.StatusOK, "Fixture deleted successfully", nil)
}
