package orders

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"
	"varsity/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller interface {
	CreateOrder(c *gin.Context)
	GetOrder(c *gin.Context)
	GetMyOrders(c *gin.Context)
	GetAllOrders(c *gin.Context)
	CancelOrder(c *gin.Context)
	CancelTicket(c *gin.Context)
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

func requesterFromContext(c *gin.Context) (uuid.UUID, users.Role, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return uuid.Nil, "", false
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid user identity", nil)
		return uuid.Nil, "", false
	}

	role, _ := c.Get("user_role")
	roleStr, _ := role.(string)

	return id, users.Role(roleStr), true
}

// CreateOrder godoc
// @Summary Buy tickets for a fixture
// @Description Allocates the next available seats, records the payment and confirms the order.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order details"
// @Success 201 {object} response.StandardApiResponse{data=OrderResponse}
// @Failure 404 {object} response.StandardApiResponse
// @Router /orders [post]
func (ctrl *controller) CreateOrder(c *gin.Context) {
	audienceID, _, ok := requesterFromContext(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	order, err := ctrl.service.CreateOrder(c.Request.Context(), audienceID, req)
	if err != nil {
		if errors.Is(err, ErrFixtureNotFound) {
			response.Error(c, http.StatusNotFound, "Fixture not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create order", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.StandardApiResponse{data=OrderResponse}
// @Router /orders/{id} [get]
func (ctrl *controller) GetOrder(c *gin.Context) {
	requesterID, role, ok := requesterFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order ID format", nil)
		return
	}

	order, err := ctrl.service.GetOrderByID(c.Request.Context(), orderID, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "Order not found", nil)
		case errors.Is(err, ErrNotOrderOwner):
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to get order", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Order retrieved successfully", order)
}

// GetMyOrders godoc
// @Summary List the authenticated user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=[]OrderResponse}
// @Router /orders [get]
func (ctrl *controller) GetMyOrders(c *gin.Context) {
	audienceID, _, ok := requesterFromContext(c)
	if !ok {
		return
	}

	orderList, err := ctrl.service.GetMyOrders(c.Request.Context(), audienceID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list orders", nil)
		return
	}

	response.Success(c, http.StatusOK, "Orders retrieved successfully", orderList)
}

// GetAllOrders godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=[]OrderResponse}
// @Router /admin/orders [get]
func (ctrl *controller) GetAllOrders(c *gin.Context) {
	orderList, err := ctrl.service.GetAllOrders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list orders", nil)
		return
	}

	response.Success(c, http.StatusOK, "Orders retrieved successfully", orderList)
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Frees the order's seats and refunds the payment. Admins can cancel any order; audience members only their own.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.StandardApiResponse{data=OrderResponse}
// @Router /orders/{id}/cancel [post]
func (ctrl *controller) CancelOrder(c *gin.Context) {
	requesterID, role, ok := requesterFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid order ID format", nil)
		return
	}

	order, err := ctrl.service.CancelOrder(c.Request.Context(), orderID, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "Order not found", nil)
		case errors.Is(err, ErrNotOrderOwner):
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel order", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Order cancelled successfully", order)
}

// CancelTicket godoc
// @Summary Cancel a single ticket
// @Description Deletes one ticket by ID. The response payload carries its own success flag.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CancelTicketRequest true "Ticket to cancel"
// @Success 200 {object} CancelTicketResponse
// @Router /tickets/cancel [post]
func (ctrl *controller) CancelTicket(c *gin.Context) {
	var req CancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Treat an unreadable body the same as a missing ticket id
		req.TicketID = ""
	}

	result, err := ctrl.service.CancelTicket(c.Request.Context(), req.TicketID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to cancel ticket", nil)
		return
	}

	c.JSON(http.StatusOK, result)
}
