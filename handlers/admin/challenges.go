// handlers/admin/challenges.go
package admin

import (
	"errors"
	"strconv"

	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
)

type ChallengeRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
	CodeName    string `json:"codeName"`
	Order       int    `json:"order" validate:"required,min=1"`
}

// GetChallenges lists all challenges including answers.
func GetChallenges(c *fiber.Ctx) error {
	challenges, err := store.ListChallenges()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}
	return c.JSON(challenges)
}

// CreateChallenge adds a new challenge to the catalog.
func CreateChallenge(c *fiber.Ctx) error {
	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	challenge := models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		CodeName:    req.CodeName,
		Order:       req.Order,
	}
	if err := store.CreateChallenge(&challenge); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create challenge"})
	}

	return c.Status(201).JSON(challenge)
}

// UpdateChallenge edits an existing challenge.
func UpdateChallenge(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	challenge, err := store.GetChallenge(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenge"})
	}

	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	challenge.Title = req.Title
	challenge.Description = req.Description
	challenge.Answer = req.Answer
	challenge.CodeName = req.CodeName
	challenge.Order = req.Order
	if err := store.SaveChallenge(challenge); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update challenge"})
	}

	return c.JSON(challenge)
}

// DeleteChallenge removes a challenge from the catalog.
func DeleteChallenge(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	if err := store.DeleteChallenge(uint(id)); errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete challenge"})
	}

	return c.JSON(fiber.Map{"success": true})
}
