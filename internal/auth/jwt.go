package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	PurposeAccess        = "access"
	PurposePasswordReset = "password_reset"

	contextKey = "admin"
)

var (
	ErrWrongPurpose = errors.New("token was issued for a different purpose")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

type Claims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the admin. Every token carries a
// unique ID so reset tokens can be marked as used.
func GenerateToken(adminID uint, email, purpose, secret string, ttl time.Duration) (string, *Claims, error) {
	if secret == "" {
		return "", nil, ErrEmptySecret
	}
	now := time.Now()
	claims := &Claims{
		AdminID: adminID,
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ParseToken verifies signature, expiry and purpose.
func ParseToken(tokenString, secret, purpose string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(contextKey, claims)
}

// ClaimsFromContext returns the claims stored by the auth middleware for this
// request, or nil.
func ClaimsFromContext(c *gin.Context) *Claims {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
