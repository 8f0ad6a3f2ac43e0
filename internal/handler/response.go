package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Unauthorized sends 401 error.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not Found"})
}

// Fail aborts the request with a 500 and records err for the request logger.
func Fail(c *gin.Context, err error) {
	_ = c.AbortWithError(http.StatusInternalServerError, err)
}
