// storage/gorm.go - PostgreSQL Store backend
package storage

import (
	"errors"

	"cyberhunt/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- Users ----------

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStore) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ListUsersByGroup(groupCode string) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("group_code = ?", groupCode).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) DeleteUser(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- Challenges ----------

func (s *GormStore) GetChallenge(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &challenge, nil
}

func (s *GormStore) GetChallengeByOrder(order int) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.Where("challenge_order = ?", order).First(&challenge).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &challenge, nil
}

func (s *GormStore) ListChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := s.db.Order("challenge_order").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *GormStore) CreateChallenge(challenge *models.Challenge) error {
	return s.db.Create(challenge).Error
}

func (s *GormStore) SaveChallenge(challenge *models.Challenge) error {
	return s.db.Save(challenge).Error
}

func (s *GormStore) DeleteChallenge(id uint) error {
	result := s.db.Delete(&models.Challenge{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- Quizzes ----------

func (s *GormStore) GetQuiz(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &quiz, nil
}

func (s *GormStore) GetQuizByGroupAndIndex(groupCode string, quizIndex int) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("group_code = ? AND quiz_index = ?", groupCode, quizIndex).First(&quiz).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &quiz, nil
}

func (s *GormStore) ListQuizzesByGroup(groupCode string) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Where("group_code = ?", groupCode).Order("quiz_index").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *GormStore) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("group_code, quiz_index").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *GormStore) CreateQuiz(quiz *models.Quiz) error {
	return s.db.Create(quiz).Error
}

func (s *GormStore) SaveQuiz(quiz *models.Quiz) error {
	return s.db.Save(quiz).Error
}

func (s *GormStore) DeleteQuiz(id uint) error {
	result := s.db.Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- Group progress ----------

func (s *GormStore) GetGroupProgress(groupCode string) (*models.GroupProgress, error) {
	var progress models.GroupProgress
	if err := s.db.Where("group_code = ?", groupCode).First(&progress).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &progress, nil
}

// SaveGroupProgress upserts the single row for a group, keyed on group_code.
func (s *GormStore) SaveGroupProgress(progress *models.GroupProgress) error {
	if progress.ID != 0 {
		return s.db.Save(progress).Error
	}
	// Concurrent first writers for the same group race on the unique
	// group_code index; the conflict clause turns the loser into an update.
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed_quiz", "completion_time", "group_photo", "photo_id", "updated_at",
		}),
	}).Create(progress).Error
}
