package utils

import (
	"github.com/gin-gonic/gin"
)

func envelope(status int, message string) gin.H {
	return gin.H{
		"status":  status,
		"message": message,
	}
}

// JSONResponse sends a structured JSON success envelope with an optional
// data payload
func JSONResponse(c *gin.Context, status int, data any, message string) {
	body := envelope(status, message)
	body["data"] = data
	c.JSON(status, body)
}

// JSONError sends a structured JSON error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	body := envelope(status, message)
	body["error"] = err.Error()
	c.JSON(status, body)
}
