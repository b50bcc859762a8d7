package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// IdentityKey is the gin context key holding the caller's member email.
const IdentityKey = "member_email"

// AuthMiddleware validates the HS256 bearer token and stores its subject
// under IdentityKey. Requests without a valid token are rejected.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		identity, err := parseIdentity(c.GetHeader("Authorization"), secret)
		if err != nil {
			logrus.WithField("request_id", c.GetString(RequestIDKey)).Debugf("authentication failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "AUTH-001",
				"message": domain.ErrAuthenticationRequired.Error(),
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func parseIdentity(header string, secret []byte) (string, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", errors.New("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
