package middleware

import (
	"github.com/farellandr/fyyur/internal/queue"
	"github.com/gin-gonic/gin"
)

func PublisherMiddleware(publisher queue.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("publisher", publisher)
		c.Next()
	}
}

// GetPublisher never returns nil; without the middleware events are dropped.
func GetPublisher(c *gin.Context) queue.Publisher {
	publisher, exists := c.Get("publisher")
	if !exists {
		return queue.NopPublisher{}
	}
	return publisher.(queue.Publisher)
}
