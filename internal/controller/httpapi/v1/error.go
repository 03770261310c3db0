package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func notFoundResponse(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, response{Error: "not found", Message: msg})
}

func errorResponse(c *gin.Context, err error) {
	msg := err.Error()
	c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: msg})
}
