package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// now is the instant past and upcoming shows are measured against.
var now = func() time.Time {
	return time.Now().UTC()
}

// render writes the named page, or its data as JSON when the client asks
// for application/json. Pending flash messages are attached as "messages".
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["messages"] = flash.Messages(c)
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, data)
		return
	}
	c.HTML(status, name, data)
}

func redirect(c *gin.Context, location string) {
	if err := flash.Flush(c); err != nil {
		log.Printf("flash: save before redirect to %s: %v", location, err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// failure builds the flash shown when a mutation did not go through.
func failure(subject string, err error) string {
	message := "An error occurred. " + subject
	switch repository.KindOf(err) {
	case repository.KindValidation:
		message += ": " + strings.TrimPrefix(err.Error(), repository.ErrValidation.Error()+": ")
	case repository.KindConstraint:
		message += ": the artist or venue does not exist"
	case repository.KindNotFound:
		message += ": it does not exist"
	}
	return message + "."
}

func publish(c *gin.Context, queueName string, event any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 5*time.Second)
	defer cancel()
	if err := middleware.GetPublisher(c).Publish(ctx, queueName, event); err != nil {
		log.Printf("queue: publish %s: %v", queueName, err)
	}
}

func newEventID() string {
	return uuid.New().String()
}
