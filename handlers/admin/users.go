// handlers/admin/users.go
package admin

import (
	"errors"
	"strconv"

	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UpdateUserRequest struct {
	GroupCode        *string `json:"groupCode"`
	Password         *string `json:"password"`
	Progress         *int    `json:"progress"`
	CurrentChallenge *int    `json:"currentChallenge"`
	LastQuizQuestion *int    `json:"lastQuizQuestion"`
	CompletedQuiz    *bool   `json:"completedQuiz"`
}

// GetUsers lists every user with full progress state.
func GetUsers(c *fiber.Ctx) error {
	users, err := store.ListUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(users)
}

// GetUser returns a single user.
func GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := store.GetUser(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	return c.JSON(user)
}

// UpdateUser edits a user's group, password or progress state. Only the
// fields present in the request are touched.
func UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := store.GetUser(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.GroupCode != nil {
		if !models.IsValidGroupCode(*req.GroupCode) && *req.GroupCode != models.AdminGroupCode {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid group code"})
		}
		user.GroupCode = *req.GroupCode
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
		}
		user.Password = string(hash)
	}
	if req.Progress != nil {
		user.Progress = *req.Progress
	}
	if req.CurrentChallenge != nil {
		user.CurrentChallenge = *req.CurrentChallenge
	}
	if req.LastQuizQuestion != nil {
		user.LastQuizQuestion = *req.LastQuizQuestion
	}
	if req.CompletedQuiz != nil {
		user.CompletedQuiz = *req.CompletedQuiz
	}

	if err := store.SaveUser(user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}

// DeleteUser removes a user. Group aggregates pick the change up on their
// next recomputation.
func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := store.DeleteUser(uint(id)); errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"success": true})
}
