// handlers/quiz.go
package handlers

import (
	"errors"
	"strconv"

	"cyberhunt/middleware"
	"cyberhunt/models"
	"cyberhunt/services"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
)

type QuizAnswerRequest struct {
	SelectedOption *int  `json:"selectedOption" validate:"required"`
	TimeElapsed    int64 `json:"timeElapsed"`
}

type QuizAnswerResponse struct {
	Correct   bool   `json:"correct"`
	Message   string `json:"message"`
	Completed bool   `json:"completed"`
	NextIndex int    `json:"nextIndex"`
}

// GetQuiz lists the caller's group quiz questions, correct options stripped.
func GetQuiz(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	quizzes, err := store.ListQuizzesByGroup(groupCode)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quiz"})
	}

	public := make([]models.PublicQuiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		public = append(public, quiz.Public())
	}
	return c.JSON(public)
}

// GetQuizQuestion returns one question (1..3) for the caller's group.
func GetQuizQuestion(c *fiber.Ctx) error {
	groupCode, err := middleware.GetGroupCode(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 1 || index > models.QuizQuestionCount {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid question index"})
	}

	quiz, err := store.GetQuizByGroupAndIndex(groupCode, index)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Question not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch question"})
	}

	return c.JSON(quiz.Public())
}

// AnswerQuiz submits an option for one quiz question.
func AnswerQuiz(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid question index"})
	}

	var req QuizAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Selected option is required"})
	}

	result, err := game.AnswerQuiz(userID, index, *req.SelectedOption, req.TimeElapsed)
	switch {
	case errors.Is(err, services.ErrInvalidQuestionIndex), errors.Is(err, services.ErrInvalidOption):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Question not found"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit answer"})
	}

	message := "Incorrect answer. Try again!"
	if result.Correct {
		message = "Correct answer!"
		if result.Completed {
			message = "Quiz completed!"
		}
	}

	return c.JSON(QuizAnswerResponse{
		Correct:   result.Correct,
		Message:   message,
		Completed: result.Completed,
		NextIndex: result.NextIndex,
	})
}

// ResetQuiz puts the caller back on question 1 after the client's coin
// budget runs out.
func ResetQuiz(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := game.ResetQuiz(userID)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset quiz"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"lastQuizQuestion": user.LastQuizQuestion,
		"completedQuiz":    user.CompletedQuiz,
	})
}
