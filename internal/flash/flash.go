// Package flash carries one-shot user messages across a redirect. Messages
// added during a request are shown by the page that request renders; when
// the request redirects instead, Flush hands them to a Store and the next
// request picks them up.
package flash

import (
	"log"

	"github.com/gin-gonic/gin"
)

const contextKey = "flash"

// CookieName is the cookie both stores use to tie a browser to its
// pending messages.
const CookieName = "fyyur_session"

type Store interface {
	// Load returns and forgets the messages saved for the client.
	Load(c *gin.Context) ([]string, error)
	// Save keeps messages for the client's next request.
	Save(c *gin.Context, messages []string) error
}

type bucket struct {
	store    Store
	messages []string
}

func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := &bucket{store: store}
		messages, err := store.Load(c)
		if err != nil {
			log.Printf("flash: load: %v", err)
		}
		b.messages = messages
		c.Set(contextKey, b)
		c.Next()
	}
}

// Add queues a message for the next rendered page.
func Add(c *gin.Context, message string) {
	if b := get(c); b != nil {
		b.messages = append(b.messages, message)
	}
}

// Messages returns every queued message and clears the queue.
func Messages(c *gin.Context) []string {
	b := get(c)
	if b == nil || len(b.messages) == 0 {
		return []string{}
	}
	messages := b.messages
	b.messages = nil
	return messages
}

// Flush saves queued messages for the next request. Call it before
// redirecting; headers cannot change once the response is written.
func Flush(c *gin.Context) error {
	b := get(c)
	if b == nil || len(b.messages) == 0 {
		return nil
	}
	messages := b.messages
	b.messages = nil
	return b.store.Save(c, messages)
}

func get(c *gin.Context) *bucket {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil
	}
	b, _ := v.(*bucket)
	return b
}
