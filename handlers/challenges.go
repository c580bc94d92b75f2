// handlers/challenges.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"cyberhunt/middleware"
	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
)

type VerifyAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type VerifyAnswerResponse struct {
	Correct          bool   `json:"correct"`
	Message          string `json:"message"`
	Progress         *int   `json:"progress,omitempty"`
	NextChallenge    *int   `json:"nextChallenge,omitempty"`
	AlreadyCompleted bool   `json:"alreadyCompleted,omitempty"`
}

// GetChallenges lists all challenges with answers stripped.
func GetChallenges(c *fiber.Ctx) error {
	challenges, err := store.ListChallenges()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}

	public := make([]models.PublicChallenge, 0, len(challenges))
	for _, challenge := range challenges {
		public = append(public, challenge.Public())
	}
	return c.JSON(public)
}

// GetChallenge returns a single challenge with the answer stripped.
func GetChallenge(c *fiber.Ctx) error {
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

	return c.JSON(challenge.Public())
}

// VerifyChallenge checks a submitted answer against the group's answer key.
func VerifyChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge ID"})
	}

	var req VerifyAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid answer format"})
	}
	req.Answer = strings.TrimSpace(req.Answer)
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid answer format"})
	}

	result, err := game.VerifyChallenge(userID, uint(id), req.Answer)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify answer"})
	}

	if !result.Correct {
		return c.JSON(VerifyAnswerResponse{
			Correct: false,
			Message: "Incorrect answer. Try again!",
		})
	}

	message := "Correct answer!"
	if result.AlreadyCompleted {
		message = "Challenge already completed"
	}
	return c.JSON(VerifyAnswerResponse{
		Correct:          true,
		Message:          message,
		Progress:         &result.Progress,
		NextChallenge:    &result.NextChallenge,
		AlreadyCompleted: result.AlreadyCompleted,
	})
}
