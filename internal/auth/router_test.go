package auth

import (
	"net/http"
	"testing"

	"varsity/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_Methods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	controller := NewController(NewService(new(mockRepository), testJWTConfig()))
	RegisterRoutes(engine.Group("/api/v1"), controller, &config.Config{})

	methods := make(map[string]string)
	for _, route := range engine.Routes() {
		methods[route.Path] = route.Method
	}

	assert.Equal(t, http.MethodPost, methods["/api/v1/auth/register"])
	assert.Equal(t, http.MethodPost, methods["/api/v1/auth/login"])
	assert.Equal(t, http.MethodPut, methods["/api/v1/auth/change-password"])
	assert.Equal(t, http.MethodGet, methods["/api/v1/auth/me"])
}
