package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes: signup issues a short-lived token, signin a day-long
// one. Expiry is the only lifecycle bound; there is no revocation list.
const (
	SignupTokenTTL = time.Hour
	SigninTokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// UserClaims carries the authenticated identity inside the bearer token.
// Username and Email are only present on signup-issued tokens.
type UserClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTUtil signs and verifies bearer tokens with a symmetric key.
type JWTUtil struct {
	signingKey []byte
}

func New(signingKey string) *JWTUtil {
	return &JWTUtil{signingKey: []byte(signingKey)}
}

// Issue creates an HMAC-SHA256 signed token for the given identity.
func (j *JWTUtil) Issue(userID uint, username, email string, ttl time.Duration) (string, error) {
	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}

// Verify parses and validates a token, returning its claims. Malformed,
// expired and badly signed tokens all come back as ErrInvalidToken.
func (j *JWTUtil) Verify(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
