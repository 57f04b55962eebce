package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 body of the form {"message": ..., key: payload}.
func OK(c *gin.Context, message, key string, payload interface{}) {
	c.JSON(http.StatusOK, gin.H{"message": message, key: payload})
}

// OKFields sends a 200 body with the message and the given fields spread at
// the top level, e.g. the role trend response.
func OKFields(c *gin.Context, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Message sends a 200 body carrying only a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Error sends an {"error": message} body with the given status code.
func Error(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, gin.H{"error": err.Error()})
}

// ErrorMessage is Error for failures that have no error value.
func ErrorMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ValidationFail sends a 400 with per-field binding errors alongside the
// standard error message.
func ValidationFail(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "please make sure all fields are filled out correctly",
		"fields": fields,
	})
}
