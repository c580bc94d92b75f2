// handlers/auth.go
package handlers

import (
	"errors"
	"os"
	"time"

	"cyberhunt/middleware"
	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Password  string `json:"password" validate:"required,min=6"`
	GroupCode string `json:"groupCode" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
	Error   string    `json:"error,omitempty"`
}

type UserInfo struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	GroupCode        string `json:"groupCode"`
	Progress         int    `json:"progress"`
	CurrentChallenge int    `json:"currentChallenge"`
	CompletedQuiz    bool   `json:"completedQuiz"`
}

func userInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:               user.ID,
		Username:         user.Username,
		GroupCode:        user.GroupCode,
		Progress:         user.Progress,
		CurrentChallenge: user.CurrentChallenge,
		CompletedQuiz:    user.CompletedQuiz,
	}
}

// Register creates a player account in one of the four groups.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Username, password and group code are required"})
	}

	// The admin designation is assigned at bootstrap, never self-service.
	if !models.IsValidGroupCode(req.GroupCode) {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid group code"})
	}

	if _, err := store.GetUserByUsername(req.Username); err == nil {
		return c.Status(409).JSON(AuthResponse{Success: false, Error: "Registration failed"})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Registration failed"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Registration failed"})
	}

	user := models.User{
		Username:         req.Username,
		Password:         string(hash),
		GroupCode:        req.GroupCode,
		CurrentChallenge: 1,
		LastQuizQuestion: 1,
	}
	if err := store.CreateUser(&user); err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Registration failed"})
	}

	token, err := generateToken(&user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.Status(201).JSON(AuthResponse{Success: true, Token: token, User: userInfo(&user)})
}

// Login authenticates a registered user.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Username and password required"})
	}

	user, err := store.GetUserByUsername(req.Username)
	if err != nil {
		// Same message whether the username exists or not.
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid credentials"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Success: true, Token: token, User: userInfo(user)})
}

// GetCurrentUser returns the authenticated user's own record.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := store.GetUser(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(userInfo(user))
}

func generateToken(user *models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "cyberhunt-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"group_code": user.GroupCode,
		"exp":        time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
