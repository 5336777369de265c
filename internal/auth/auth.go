// Package auth implements the bearer-token gate in front of the
// content API. Tokens are issued by the auth subsystem; this package
// only verifies them and surfaces the acting identity to handlers.
package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/config"
)

// identityKey is where Protect stores the acting user ID on the request
const identityKey = "userID"

// Gate validates bearer tokens and exposes the acting identity
type Gate struct {
	secret []byte
	issuer string
}

// NewGate creates a gate from the auth configuration
func NewGate(cfg *config.AuthConfig) *Gate {
	return &Gate{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// Sign issues a token for a user. The API itself never logs users in;
// this exists for the auth subsystem boundary and for tests.
func (g *Gate) Sign(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    g.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// parse validates a token string and extracts the user ID from the
// subject claim
func (g *Gate) parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("token missing subject")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID in token subject")
	}
	return userID, nil
}

// bearerToken pulls the token out of the Authorization header
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", fmt.Errorf("authorization header required")
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return parts[1], nil
}

// Protect enforces authentication: requests without a valid token are
// rejected with 401, otherwise the acting user ID is stored on the
// request context.
func (g *Gate) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError(err.Error()))
			return
		}

		userID, err := g.parse(tokenString)
		if err != nil {
			models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError(err.Error()))
			return
		}

		c.Set(identityKey, userID)
		c.Next()
	}
}

// Identity extracts the acting identity when a valid token is present
// but never rejects; public reads use it to personalize responses.
func (g *Gate) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, err := bearerToken(c); err == nil {
			if userID, err := g.parse(tokenString); err == nil {
				c.Set(identityKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the acting user ID stored by Protect or
// Identity
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
