package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

// RespondWithError aborts the request with the error page for statusCode,
// or its JSON form when the client asked for JSON.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.AbortWithStatusJSON(statusCode, ErrorResponse{
			Error:   HTTPStatusText(statusCode),
			Message: customMessage,
		})
		return
	}
	c.HTML(statusCode, errorTemplate(statusCode), gin.H{
		"error":    HTTPStatusText(statusCode),
		"message":  customMessage,
		"messages": []string{},
	})
	c.Abort()
}

func errorTemplate(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "404.html"
	}
	return "500.html"
}
