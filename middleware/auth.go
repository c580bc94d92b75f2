// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"cyberhunt/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "cyberhunt-secret-change-in-production"
	}
	return []byte(secret)
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(401, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(401, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}

	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("groupCode", claims["group_code"])

	return c.Next()
}

// AdminAuthMiddleware additionally requires the administrative group code.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	groupCode, ok := claims["group_code"].(string)
	if !ok || groupCode != models.AdminGroupCode {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin privileges required."})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("groupCode", groupCode)

	return c.Next()
}

// GetUserID extracts the authenticated user id from the request locals.
func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	// JWT numeric claims decode as float64.
	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}
	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

// GetGroupCode extracts the authenticated user's group from the locals.
func GetGroupCode(c *fiber.Ctx) (string, error) {
	groupCode := c.Locals("groupCode")
	if groupCode == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}
	if code, ok := groupCode.(string); ok {
		return code, nil
	}
	return "", fiber.NewError(401, "Invalid group code format")
}
