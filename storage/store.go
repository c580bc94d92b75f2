// storage/store.go - Store abstraction over the game's persisted entities
package storage

import (
	"errors"

	"cyberhunt/models"
)

// ErrNotFound is returned when a requested record does not exist. Both
// backends return it, so callers can branch with errors.Is regardless of
// which store is wired in.
var ErrNotFound = errors.New("record not found")

// Store is the repository surface the game logic runs against. Handlers and
// services never touch a database or a global map directly; main wires in
// the GORM-backed store, tests wire in the in-memory one.
type Store interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	ListUsers() ([]models.User, error)
	ListUsersByGroup(groupCode string) ([]models.User, error)
	DeleteUser(id uint) error

	// Challenges
	GetChallenge(id uint) (*models.Challenge, error)
	GetChallengeByOrder(order int) (*models.Challenge, error)
	ListChallenges() ([]models.Challenge, error)
	CreateChallenge(challenge *models.Challenge) error
	SaveChallenge(challenge *models.Challenge) error
	DeleteChallenge(id uint) error

	// Quizzes
	GetQuiz(id uint) (*models.Quiz, error)
	GetQuizByGroupAndIndex(groupCode string, quizIndex int) (*models.Quiz, error)
	ListQuizzesByGroup(groupCode string) ([]models.Quiz, error)
	ListQuizzes() ([]models.Quiz, error)
	CreateQuiz(quiz *models.Quiz) error
	SaveQuiz(quiz *models.Quiz) error
	DeleteQuiz(id uint) error

	// Group progress
	GetGroupProgress(groupCode string) (*models.GroupProgress, error)
	SaveGroupProgress(progress *models.GroupProgress) error
}
