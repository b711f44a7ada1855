package middleware

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Tej-ashwani/StudyNotion/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, email, accountType string) (string, error) {
	claims := jwt.MapClaims{
		"id":          userID,
		"email":       email,
		"accountType": accountType,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// extractToken looks for the token in the cookie, the request body, and the
// Authorization header, in that order.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies("token"); cookie != "" {
		return cookie
	}

	if len(c.Body()) > 0 {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(c.Body(), &body); err == nil && body.Token != "" {
			return body.Token
		}
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}

	return ""
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Token is missing", nil)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Token is invalid", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	// JWT number claims decode as float64
	userID, ok := claims["id"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	c.Locals("userId", uint(userID))
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}
	if accountType, ok := claims["accountType"].(string); ok {
		c.Locals("accountType", accountType)
	}

	return c.Next()
}

// requireRole gates a route on the account type carried in the token claims.
// Mismatches answer 401, matching the behaviour of the rest of the auth chain.
func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountType, ok := c.Locals("accountType").(string)
		if !ok || accountType != role {
			return JsonResponse(c, fiber.StatusUnauthorized, false,
				fmt.Sprintf("This is a protected route for %ss only", role), nil)
		}
		return c.Next()
	}
}

// IsStudent allows only Student accounts through
func IsStudent() fiber.Handler { return requireRole("Student") }

// IsInstructor allows only Instructor accounts through
func IsInstructor() fiber.Handler { return requireRole("Instructor") }

// IsAdmin allows only Admin accounts through
func IsAdmin() fiber.Handler { return requireRole("Admin") }

func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
