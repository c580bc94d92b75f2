// storage/memory.go - In-memory Store backend
package storage

import (
	"sort"
	"sync"
	"time"

	"cyberhunt/models"
)

// MemStore keeps every entity in mutex-guarded maps. It backs the unit and
// handler tests and can run the whole game for a single-process event.
type MemStore struct {
	mu sync.RWMutex

	users         map[uint]*models.User
	challenges    map[uint]*models.Challenge
	quizzes       map[uint]*models.Quiz
	groupProgress map[string]*models.GroupProgress

	nextUserID      uint
	nextChallengeID uint
	nextQuizID      uint
	nextGroupID     uint
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:           make(map[uint]*models.User),
		challenges:      make(map[uint]*models.Challenge),
		quizzes:         make(map[uint]*models.Quiz),
		groupProgress:   make(map[string]*models.GroupProgress),
		nextUserID:      1,
		nextChallengeID: 1,
		nextQuizID:      1,
		nextGroupID:     1,
	}
}

// NewSeededMemStore returns an in-memory store pre-loaded with the built-in
// challenge catalog and quiz bank.
func NewSeededMemStore() *MemStore {
	s := NewMemStore()
	for _, c := range models.DefaultChallenges() {
		challenge := c
		_ = s.CreateChallenge(&challenge)
	}
	for _, q := range models.DefaultQuizzes() {
		quiz := q
		_ = s.CreateQuiz(&quiz)
	}
	return s
}

// ---------- Users ----------

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextUserID
	s.nextUserID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemStore) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemStore) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemStore) ListUsersByGroup(groupCode string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []models.User
	for _, user := range s.users {
		if user.GroupCode == groupCode {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemStore) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ---------- Challenges ----------

func (s *MemStore) GetChallenge(id uint) (*models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *challenge
	return &copied, nil
}

func (s *MemStore) GetChallengeByOrder(order int) (*models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, challenge := range s.challenges {
		if challenge.Order == order {
			copied := *challenge
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListChallenges() ([]models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenges := make([]models.Challenge, 0, len(s.challenges))
	for _, challenge := range s.challenges {
		challenges = append(challenges, *challenge)
	}
	sort.Slice(challenges, func(i, j int) bool { return challenges[i].Order < challenges[j].Order })
	return challenges, nil
}

func (s *MemStore) CreateChallenge(challenge *models.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge.ID = s.nextChallengeID
	s.nextChallengeID++
	challenge.CreatedAt = time.Now()
	copied := *challenge
	s.challenges[challenge.ID] = &copied
	return nil
}

func (s *MemStore) SaveChallenge(challenge *models.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.challenges[challenge.ID]; !ok {
		return ErrNotFound
	}
	copied := *challenge
	s.challenges[challenge.ID] = &copied
	return nil
}

func (s *MemStore) DeleteChallenge(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.challenges[id]; !ok {
		return ErrNotFound
	}
	delete(s.challenges, id)
	return nil
}

// ---------- Quizzes ----------

func (s *MemStore) GetQuiz(id uint) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *quiz
	return &copied, nil
}

func (s *MemStore) GetQuizByGroupAndIndex(groupCode string, quizIndex int) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, quiz := range s.quizzes {
		if quiz.GroupCode == groupCode && quiz.QuizIndex == quizIndex {
			copied := *quiz
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListQuizzesByGroup(groupCode string) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var quizzes []models.Quiz
	for _, quiz := range s.quizzes {
		if quiz.GroupCode == groupCode {
			quizzes = append(quizzes, *quiz)
		}
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].QuizIndex < quizzes[j].QuizIndex })
	return quizzes, nil
}

func (s *MemStore) ListQuizzes() ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quizzes := make([]models.Quiz, 0, len(s.quizzes))
	for _, quiz := range s.quizzes {
		quizzes = append(quizzes, *quiz)
	}
	sort.Slice(quizzes, func(i, j int) bool {
		if quizzes[i].GroupCode != quizzes[j].GroupCode {
			return quizzes[i].GroupCode < quizzes[j].GroupCode
		}
		return quizzes[i].QuizIndex < quizzes[j].QuizIndex
	})
	return quizzes, nil
}

func (s *MemStore) CreateQuiz(quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz.ID = s.nextQuizID
	s.nextQuizID++
	quiz.CreatedAt = time.Now()
	copied := *quiz
	s.quizzes[quiz.ID] = &copied
	return nil
}

func (s *MemStore) SaveQuiz(quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[quiz.ID]; !ok {
		return ErrNotFound
	}
	copied := *quiz
	s.quizzes[quiz.ID] = &copied
	return nil
}

func (s *MemStore) DeleteQuiz(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[id]; !ok {
		return ErrNotFound
	}
	delete(s.quizzes, id)
	return nil
}

// ---------- Group progress ----------

func (s *MemStore) GetGroupProgress(groupCode string) (*models.GroupProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	progress, ok := s.groupProgress[groupCode]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *progress
	return &copied, nil
}

func (s *MemStore) SaveGroupProgress(progress *models.GroupProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.groupProgress[progress.GroupCode]; ok {
		progress.ID = existing.ID
	} else {
		progress.ID = s.nextGroupID
		s.nextGroupID++
	}
	progress.UpdatedAt = time.Now()
	copied := *progress
	s.groupProgress[progress.GroupCode] = &copied
	return nil
}
