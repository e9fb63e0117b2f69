package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/contentloom/console/pkg/errors"
)

// The console frontend expects plain payloads on success and a bare
// `{message}` object on failure, so there is no response envelope here.

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error converts the error to its HTTP status and a `{message}` body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}
