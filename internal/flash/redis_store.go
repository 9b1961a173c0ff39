package flash

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisTTL = 10 * time.Minute

// RedisStore keeps pending messages in a Redis list keyed by a random
// session id stored in the client's cookie.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	secure bool
}

func NewRedisStore(rdb *redis.Client, prefix string, secure bool) *RedisStore {
	if prefix == "" {
		prefix = "flash"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, secure: secure}
}

func (s *RedisStore) Load(c *gin.Context) ([]string, error) {
	id, err := c.Cookie(CookieName)
	if err != nil || id == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	ctx := c.Request.Context()
	key := s.key(id)
	pipe := s.rdb.TxPipeline()
	get := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("load flashes: %w", err)
	}
	return get.Val(), nil
}

func (s *RedisStore) Save(c *gin.Context, messages []string) error {
	id, err := c.Cookie(CookieName)
	if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
		id = uuid.New().String()
	}

	values := make([]interface{}, 0, len(messages))
	for _, message := range messages {
		values = append(values, message)
	}

	ctx := c.Request.Context()
	key := s.key(id)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, redisTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save flashes: %w", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, id, 0, "/", "", s.secure, true)
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + ":" + id
}
