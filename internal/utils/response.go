// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format is the one the point-of-sale frontend already speaks:
// list endpoints return bare arrays, mutations return a message object,
// failures return {"error": "..."}.

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Errore interno del server"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// AppErrorResponse translates a service error into its HTTP response using
// the closed error-kind mapping.
func AppErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, StatusForError(err), err.Error())
}
