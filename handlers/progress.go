// handlers/progress.go
package handlers

import (
	"cyberhunt/middleware"
	"cyberhunt/services"

	"github.com/gofiber/fiber/v2"
)

type ProgressResponse struct {
	Progress            int                     `json:"progress"`
	CurrentChallenge    int                     `json:"currentChallenge"`
	CompletedChallenges []string                `json:"completedChallenges"`
	CompletedQuiz       bool                    `json:"completedQuiz"`
	LastQuizQuestion    int                     `json:"lastQuizQuestion"`
	GroupProgress       *services.GroupSnapshot `json:"groupProgress"`
}

// GetProgress returns the caller's denormalized progress snapshot. The
// dashboard polls this every few seconds.
func GetProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := store.GetUser(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	snapshot, err := game.Snapshot(user.GroupCode)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	completed := user.CompletedChallenges
	if completed == nil {
		completed = []string{}
	}

	return c.JSON(ProgressResponse{
		Progress:            user.Progress,
		CurrentChallenge:    user.CurrentChallenge,
		CompletedChallenges: completed,
		CompletedQuiz:       user.CompletedQuiz,
		LastQuizQuestion:    user.LastQuizQuestion,
		GroupProgress:       snapshot,
	})
}
