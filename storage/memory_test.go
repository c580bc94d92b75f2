package storage

import (
	"sync"
	"testing"

	"cyberhunt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreUserCRUD(t *testing.T) {
	store := NewMemStore()

	user := &models.User{Username: "runner1", GroupCode: "1", CurrentChallenge: 1, LastQuizQuestion: 1}
	require.NoError(t, store.CreateUser(user))
	assert.Equal(t, uint(1), user.ID)

	fetched, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "runner1", fetched.Username)

	byName, err := store.GetUserByUsername("runner1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	fetched.Progress = 40
	require.NoError(t, store.SaveUser(fetched))
	again, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, again.Progress)

	require.NoError(t, store.DeleteUser(user.ID))
	_, err = store.GetUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteUser(user.ID), ErrNotFound)
}

func TestMemStoreReturnsCopies(t *testing.T) {
	store := NewMemStore()
	user := &models.User{Username: "runner1", GroupCode: "1"}
	require.NoError(t, store.CreateUser(user))

	fetched, err := store.GetUser(user.ID)
	require.NoError(t, err)
	fetched.Progress = 80

	// Mutating a fetched record must not leak into the store.
	again, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Progress)
}

func TestMemStoreListUsersByGroup(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.CreateUser(&models.User{Username: "a", GroupCode: "1"}))
	require.NoError(t, store.CreateUser(&models.User{Username: "b", GroupCode: "2"}))
	require.NoError(t, store.CreateUser(&models.User{Username: "c", GroupCode: "1"}))
	require.NoError(t, store.CreateUser(&models.User{Username: "root", GroupCode: models.AdminGroupCode}))

	group1, err := store.ListUsersByGroup("1")
	require.NoError(t, err)
	require.Len(t, group1, 2)
	assert.Equal(t, "a", group1[0].Username)
	assert.Equal(t, "c", group1[1].Username)

	empty, err := store.ListUsersByGroup("4")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSeededMemStore(t *testing.T) {
	store := NewSeededMemStore()

	challenges, err := store.ListChallenges()
	require.NoError(t, err)
	require.Len(t, challenges, 5)
	for i, challenge := range challenges {
		assert.Equal(t, i+1, challenge.Order)
	}

	quizzes, err := store.ListQuizzes()
	require.NoError(t, err)
	assert.Len(t, quizzes, 12)

	for _, groupCode := range models.PlayerGroupCodes {
		group, err := store.ListQuizzesByGroup(groupCode)
		require.NoError(t, err)
		require.Len(t, group, 3)
		for i, quiz := range group {
			assert.Equal(t, i+1, quiz.QuizIndex)
			assert.Len(t, quiz.Options, 4)
		}
	}
}

func TestMemStoreGetChallengeByOrder(t *testing.T) {
	store := NewSeededMemStore()

	challenge, err := store.GetChallengeByOrder(3)
	require.NoError(t, err)
	assert.Equal(t, "BINARY_DECODE", challenge.Title)

	_, err = store.GetChallengeByOrder(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreGroupProgressUpsert(t *testing.T) {
	store := NewMemStore()

	_, err := store.GetGroupProgress("1")
	assert.ErrorIs(t, err, ErrNotFound)

	first := &models.GroupProgress{GroupCode: "1", CompletedQuiz: true, CompletionTime: 1000}
	require.NoError(t, store.SaveGroupProgress(first))
	firstID := first.ID

	// Saving again for the same group updates the existing row.
	second := &models.GroupProgress{GroupCode: "1", CompletedQuiz: true, CompletionTime: 1000, GroupPhoto: "data"}
	require.NoError(t, store.SaveGroupProgress(second))
	assert.Equal(t, firstID, second.ID)

	fetched, err := store.GetGroupProgress("1")
	require.NoError(t, err)
	assert.True(t, fetched.HasPhoto())
	assert.Equal(t, int64(1000), fetched.CompletionTime)
}

func TestMemStoreConcurrentVerifyStaysConsistent(t *testing.T) {
	store := NewMemStore()
	user := &models.User{Username: "runner1", GroupCode: "1", CurrentChallenge: 1, LastQuizQuestion: 1}
	require.NoError(t, store.CreateUser(user))

	// Duplicate submissions racing on the same challenge converge on one
	// completion because AddCompleted is idempotent.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := store.GetUser(user.ID)
			if err != nil {
				return
			}
			u.AddCompleted(1)
			_ = store.SaveUser(u)
		}()
	}
	wg.Wait()

	final, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, final.CompletedChallenges, 1)
	assert.Equal(t, 20, final.Progress)
	assert.Equal(t, 2, final.CurrentChallenge)
}
