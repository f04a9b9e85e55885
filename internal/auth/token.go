/* Token helpers for the signed student-session cookie and the admin panel. */

package auth

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey []byte

// Signing key initialization, runs automatically at startup.
func init() {
	jwtKey = []byte(os.Getenv("SESSION_SECRET_KEY"))
	if len(jwtKey) == 0 {
		jwtKey = []byte("dev_session_key_change_me") // dev fallback (not for deployment)
		log.Println("Warning: SESSION_SECRET_KEY environment variable is not set. Using default key.")
	}
}

// SessionClaims carries the student identifier inside the session cookie.
// Signing the cookie keeps students from forging someone else's dataset id
// by editing the cookie value.
type SessionClaims struct {
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}

// AdminClaims marks a token as belonging to the instructor panel.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var ErrNotAdminToken = errors.New("auth: token has no admin role")

// NewSessionToken signs a student identifier into a cookie value. The long
// expiry keeps one dataset id stable across a whole course run.
func NewSessionToken(studentID string) (string, error) {
	expirationTime := time.Now().Add(120 * 24 * time.Hour)
	claims := &SessionClaims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "DatasetGenerator-api",
			Subject:   "student_session",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseSessionToken validates a session cookie and returns the student id.
func ParseSessionToken(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.StudentID, nil
}

// NewAdminToken issues a short-lived instructor token.
func NewAdminToken() (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "DatasetGenerator-api",
			Subject:   "admin_panel",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseAdminToken validates an instructor token.
func ParseAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Role != "admin" {
		return nil, ErrNotAdminToken
	}
	return claims, nil
}
