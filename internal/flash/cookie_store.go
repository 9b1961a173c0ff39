package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieTTL = 10 * time.Minute

type flashClaims struct {
	Messages []string `json:"messages"`
	jwt.RegisteredClaims
}

// CookieStore keeps pending messages in the client's cookie, signed with
// HS256 so they cannot be forged.
type CookieStore struct {
	secret []byte
	secure bool
}

func NewCookieStore(secret string, secure bool) (*CookieStore, error) {
	if secret == "" {
		return nil, errors.New("flash: cookie store needs a secret")
	}
	return &CookieStore{secret: []byte(secret), secure: secure}, nil
}

func (s *CookieStore) Load(c *gin.Context) ([]string, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, nil
	}
	s.setCookie(c, "", -1)

	claims := &flashClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse flash cookie: %w", err)
	}
	return claims.Messages, nil
}

func (s *CookieStore) Save(c *gin.Context, messages []string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cookieTTL)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign flash cookie: %w", err)
	}
	s.setCookie(c, signed, int(cookieTTL.Seconds()))
	return nil
}

func (s *CookieStore) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.secure, true)
}
