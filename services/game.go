// services/game.go - Hunt and quiz game logic
package services

import (
	"errors"
	"time"

	"cyberhunt/models"
	"cyberhunt/storage"

	"github.com/google/uuid"
)

const finalChallengeOrder = models.MaxChallengeOrder

var (
	ErrInvalidQuestionIndex = errors.New("question index out of range")
	ErrInvalidOption        = errors.New("selected option out of range")
)

// GameService carries the hunt's state transitions: challenge verification,
// the quiz state machine and group aggregation. All state goes through the
// injected store, so the same logic runs against PostgreSQL or memory.
type GameService struct {
	store storage.Store
}

func NewGameService(store storage.Store) *GameService {
	return &GameService{store: store}
}

// VerifyResult is the outcome of a challenge answer submission.
type VerifyResult struct {
	Correct          bool `json:"correct"`
	AlreadyCompleted bool `json:"alreadyCompleted,omitempty"`
	Progress         int  `json:"progress"`
	NextChallenge    int  `json:"nextChallenge"`
}

// VerifyChallenge checks a submitted answer for the given challenge and, on
// first success, advances the user's progress. Re-submitting a completed
// challenge is idempotent: it reports success without touching state.
func (s *GameService) VerifyChallenge(userID uint, challengeID uint, submitted string) (*VerifyResult, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	challenge, err := s.store.GetChallenge(challengeID)
	if err != nil {
		return nil, err
	}

	if user.HasCompleted(challenge.Order) {
		return &VerifyResult{
			Correct:          true,
			AlreadyCompleted: true,
			Progress:         user.Progress,
			NextChallenge:    user.CurrentChallenge,
		}, nil
	}

	secret := ResolveSecret(user.GroupCode, challenge.Order, challenge.Answer)
	if !secret.Matches(submitted) {
		return &VerifyResult{Correct: false}, nil
	}

	user.AddCompleted(challenge.Order)
	if err := s.store.SaveUser(user); err != nil {
		return nil, err
	}

	return &VerifyResult{
		Correct:       true,
		Progress:      user.Progress,
		NextChallenge: user.CurrentChallenge,
	}, nil
}

// QuizAnswerResult is the outcome of a quiz option submission.
type QuizAnswerResult struct {
	Correct   bool `json:"correct"`
	Completed bool `json:"completed"`
	NextIndex int  `json:"nextIndex"`
}

// AnswerQuiz runs one step of the quiz state machine for the user. A correct
// answer to the final question flips the absorbing completed flag and marks
// the user's group complete. Wrong answers leave the pointer untouched; the
// client's coin mechanic decides what to do next.
func (s *GameService) AnswerQuiz(userID uint, questionIndex, selectedOption int, elapsedMs int64) (*QuizAnswerResult, error) {
	if questionIndex < 1 || questionIndex > models.QuizQuestionCount {
		return nil, ErrInvalidQuestionIndex
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.store.GetQuizByGroupAndIndex(user.GroupCode, questionIndex)
	if err != nil {
		return nil, err
	}
	if selectedOption < 0 || selectedOption >= len(quiz.Options) {
		return nil, ErrInvalidOption
	}

	correct := selectedOption == quiz.CorrectOption

	if user.CompletedQuiz {
		// Completed is absorbing; answering again changes nothing.
		return &QuizAnswerResult{
			Correct:   correct,
			Completed: true,
			NextIndex: user.LastQuizQuestion,
		}, nil
	}

	if !correct {
		return &QuizAnswerResult{
			Correct:   false,
			Completed: false,
			NextIndex: user.LastQuizQuestion,
		}, nil
	}

	if questionIndex >= models.QuizQuestionCount {
		user.CompletedQuiz = true
		user.LastQuizQuestion = models.QuizQuestionCount
	} else if next := questionIndex + 1; next > user.LastQuizQuestion {
		user.LastQuizQuestion = next
	}

	if err := s.store.SaveUser(user); err != nil {
		return nil, err
	}

	if user.CompletedQuiz {
		if elapsedMs <= 0 {
			elapsedMs = time.Since(user.CreatedAt).Milliseconds()
		}
		// Zero means "not finished" in the group record, so clamp.
		if elapsedMs <= 0 {
			elapsedMs = 1
		}
		if err := s.markGroupComplete(user.GroupCode, elapsedMs); err != nil {
			return nil, err
		}
	}

	return &QuizAnswerResult{
		Correct:   true,
		Completed: user.CompletedQuiz,
		NextIndex: user.LastQuizQuestion,
	}, nil
}

// ResetQuiz puts the user back on question 1. Used by the client once its
// coin budget runs out. A completed quiz never resets.
func (s *GameService) ResetQuiz(userID uint) (*models.User, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if !user.CompletedQuiz && user.LastQuizQuestion != 1 {
		user.LastQuizQuestion = 1
		if err := s.store.SaveUser(user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// markGroupComplete upserts the group record with the completed flag. The
// completion time is set once by the first finisher and kept afterwards.
func (s *GameService) markGroupComplete(groupCode string, elapsedMs int64) error {
	progress, err := s.store.GetGroupProgress(groupCode)
	if errors.Is(err, storage.ErrNotFound) {
		progress = &models.GroupProgress{GroupCode: groupCode}
	} else if err != nil {
		return err
	}

	progress.CompletedQuiz = true
	if progress.CompletionTime == 0 {
		progress.CompletionTime = elapsedMs
	}
	return s.store.SaveGroupProgress(progress)
}

// GroupSnapshot is the read-only merged view of a group's state. Membership
// counts are recomputed from the live user set on every call, never cached.
type GroupSnapshot struct {
	GroupCode           string `json:"groupCode"`
	CompletedQuiz       bool   `json:"completedQuiz"`
	CompletionTime      int64  `json:"completionTime"`
	HasPhoto            bool   `json:"hasPhoto"`
	TotalMembers        int    `json:"totalMembers"`
	CompletedMembers    int    `json:"completedMembers"`
	AllMembersCompleted bool   `json:"allMembersCompleted"`
}

// Snapshot builds the merged view for one group.
func (s *GameService) Snapshot(groupCode string) (*GroupSnapshot, error) {
	members, err := s.store.ListUsersByGroup(groupCode)
	if err != nil {
		return nil, err
	}

	snapshot := &GroupSnapshot{GroupCode: groupCode}
	for _, member := range members {
		snapshot.TotalMembers++
		if member.CompletedQuiz {
			snapshot.CompletedMembers++
		}
	}
	snapshot.AllMembersCompleted = snapshot.TotalMembers > 0 &&
		snapshot.CompletedMembers == snapshot.TotalMembers

	progress, err := s.store.GetGroupProgress(groupCode)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		// No persisted record yet: merged fields stay at their zero values.
		return snapshot, nil
	}

	snapshot.CompletedQuiz = progress.CompletedQuiz
	snapshot.CompletionTime = progress.CompletionTime
	snapshot.HasPhoto = progress.HasPhoto()
	return snapshot, nil
}

// AllSnapshots builds the merged view for every player group.
func (s *GameService) AllSnapshots() (map[string]*GroupSnapshot, error) {
	snapshots := make(map[string]*GroupSnapshot, len(models.PlayerGroupCodes))
	for _, groupCode := range models.PlayerGroupCodes {
		snapshot, err := s.Snapshot(groupCode)
		if err != nil {
			return nil, err
		}
		snapshots[groupCode] = snapshot
	}
	return snapshots, nil
}

// SaveGroupPhoto stores the photo payload on the group record. Payload
// validation stays with the capture layer; this just persists it.
func (s *GameService) SaveGroupPhoto(groupCode, photoData string) error {
	progress, err := s.store.GetGroupProgress(groupCode)
	if errors.Is(err, storage.ErrNotFound) {
		progress = &models.GroupProgress{GroupCode: groupCode}
	} else if err != nil {
		return err
	}

	progress.GroupPhoto = photoData
	progress.PhotoID = uuid.NewString()
	return s.store.SaveGroupProgress(progress)
}

// GroupPhoto returns the stored photo payload for a group, or ErrNotFound
// when no photo has been saved.
func (s *GameService) GroupPhoto(groupCode string) (string, error) {
	progress, err := s.store.GetGroupProgress(groupCode)
	if err != nil {
		return "", err
	}
	if !progress.HasPhoto() {
		return "", storage.ErrNotFound
	}
	return progress.GroupPhoto, nil
}

// MemberProgress is the sanitized view of a teammate shown on the dashboard.
type MemberProgress struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	Progress         int    `json:"progress"`
	CurrentChallenge int    `json:"currentChallenge"`
	CompletedQuiz    bool   `json:"completedQuiz"`
}

// GroupMembers lists the public progress fields of every user in a group.
func (s *GameService) GroupMembers(groupCode string) ([]MemberProgress, error) {
	users, err := s.store.ListUsersByGroup(groupCode)
	if err != nil {
		return nil, err
	}
	members := make([]MemberProgress, 0, len(users))
	for _, user := range users {
		members = append(members, MemberProgress{
			ID:               user.ID,
			Username:         user.Username,
			Progress:         user.Progress,
			CurrentChallenge: user.CurrentChallenge,
			CompletedQuiz:    user.CompletedQuiz,
		})
	}
	return members, nil
}
