// handlers/admin/quizzes.go
package admin

import (
	"errors"
	"strconv"

	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type QuizRequest struct {
	GroupCode     string   `json:"groupCode" validate:"required"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4"`
	CorrectOption *int     `json:"correctOption" validate:"required,min=0,max=3"`
	QuizIndex     int      `json:"quizIndex" validate:"required,min=1,max=3"`
}

// GetQuizzes lists every quiz question including correct options.
func GetQuizzes(c *fiber.Ctx) error {
	quizzes, err := store.ListQuizzes()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}
	return c.JSON(quizzes)
}

// CreateQuiz adds a quiz question for a group.
func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	quiz := models.Quiz{
		GroupCode:     req.GroupCode,
		Question:      req.Question,
		Options:       pq.StringArray(req.Options),
		CorrectOption: *req.CorrectOption,
		QuizIndex:     req.QuizIndex,
	}
	if err := store.CreateQuiz(&quiz); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(201).JSON(quiz)
}

// UpdateQuiz edits an existing quiz question.
func UpdateQuiz(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	quiz, err := store.GetQuiz(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quiz"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	quiz.GroupCode = req.GroupCode
	quiz.Question = req.Question
	quiz.Options = pq.StringArray(req.Options)
	quiz.CorrectOption = *req.CorrectOption
	quiz.QuizIndex = req.QuizIndex
	if err := store.SaveQuiz(quiz); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update quiz"})
	}

	return c.JSON(quiz)
}

// DeleteQuiz removes a quiz question.
func DeleteQuiz(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	if err := store.DeleteQuiz(uint(id)); errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	return c.JSON(fiber.Map{"success": true})
}
