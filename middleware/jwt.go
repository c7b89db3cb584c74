package middleware

import (
	"fmt"
	"strings"
	"time"

	"pronocoach/config"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, firstname, role, email, studentID string) (string, error) {
	claims := jwt.MapClaims{
		"userId":    userID,
		"firstname": firstname,
		"role":      role,
		"email":     email,
		"studentId": studentID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// userIDFromBearer extracts the user id from a "Bearer <token>" header
// value. Returns 0 when the header is absent or the token invalid.
func userIDFromBearer(authHeader string) uint {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0
	}

	// JWT claims are decoded as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0
	}
	return uint(userID)
}
