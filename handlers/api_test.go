package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyberhunt/handlers"
	"cyberhunt/handlers/admin"
	"cyberhunt/models"
	"cyberhunt/routes"
	"cyberhunt/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) (*fiber.App, *storage.MemStore) {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	store := storage.NewSeededMemStore()
	handlers.Init(store)
	admin.Init(store)

	app := fiber.New()
	routes.SetupRoutes(app)
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doRequestList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func registerUser(t *testing.T, app *fiber.App, username, groupCode string) string {
	t.Helper()
	resp, body := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username":  username,
		"password":  "secret123",
		"groupCode": groupCode,
	})
	require.Equal(t, 201, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func adminToken(t *testing.T, app *fiber.App, store *storage.MemStore) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rootpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{
		Username:         "root",
		Password:         string(hash),
		GroupCode:        models.AdminGroupCode,
		CurrentChallenge: 1,
		LastQuizQuestion: 1,
	}))

	resp, body := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "root",
		"password": "rootpass",
	})
	require.Equal(t, 200, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerUser(t, app, "runner1", "1")
	assert.NotEmpty(t, token)

	// Duplicate username
	resp, _ := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "runner1", "password": "secret123", "groupCode": "2",
	})
	assert.Equal(t, 409, resp.StatusCode)

	// Wrong password
	resp, _ = doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "runner1", "password": "wrongpass",
	})
	assert.Equal(t, 401, resp.StatusCode)

	// Correct login
	resp, body := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "runner1", "password": "secret123",
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", user["groupCode"])
}

func TestRegisterRejectsAdminGroup(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "sneaky", "password": "secret123", "groupCode": "admin",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestEndpointsRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{
		"/api/challenges",
		"/api/progress",
		"/api/quiz",
		"/api/group-progress",
		"/api/group-members",
		"/api/all-groups-progress",
	}
	for _, path := range paths {
		resp, _ := doRequest(t, app, "GET", path, "", nil)
		assert.Equal(t, 401, resp.StatusCode, path)
	}
}

func TestChallengesStripAnswers(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	resp, list := doRequestList(t, app, "GET", "/api/challenges", token)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, list, 5)
	for _, challenge := range list {
		_, hasAnswer := challenge["answer"]
		assert.False(t, hasAnswer, "answer must never reach players")
		assert.NotEmpty(t, challenge["title"])
		assert.NotEmpty(t, challenge["codeName"])
	}

	resp, single := doRequest(t, app, "GET", "/api/challenges/1", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	_, hasAnswer := single["answer"]
	assert.False(t, hasAnswer)
	assert.Equal(t, "INIT_SEQUENCE", single["title"])
}

func TestVerifyChallengeScenario(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	// Fresh group-1 user submits the group password for challenge 1.
	resp, body := doRequest(t, app, "POST", "/api/challenges/1/verify", token, map[string]string{"answer": "Alpha123"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["correct"])
	assert.Equal(t, float64(20), body["progress"])
	assert.Equal(t, float64(2), body["nextChallenge"])

	// Identical second submission: still correct, nothing changes.
	resp, body = doRequest(t, app, "POST", "/api/challenges/1/verify", token, map[string]string{"answer": "Alpha123"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["correct"])
	assert.Equal(t, true, body["alreadyCompleted"])
	assert.Equal(t, float64(20), body["progress"])

	// Wrong submission carries a retry message and no progress fields.
	resp, body = doRequest(t, app, "POST", "/api/challenges/2/verify", token, map[string]string{"answer": "nope"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, body["correct"])
	assert.NotEmpty(t, body["message"])

	_, progress := doRequest(t, app, "GET", "/api/progress", token, nil)
	assert.Equal(t, float64(20), progress["progress"])
	assert.Equal(t, float64(2), progress["currentChallenge"])
}

func TestVerifyChallengeValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	resp, _ := doRequest(t, app, "POST", "/api/challenges/1/verify", token, map[string]string{"answer": ""})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/challenges/1/verify", token, map[string]string{"answer": "   "})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/challenges/abc/verify", token, map[string]string{"answer": "x"})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/challenges/99/verify", token, map[string]string{"answer": "x"})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestQuizStripsCorrectOption(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	resp, list := doRequestList(t, app, "GET", "/api/quiz", token)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, list, 3)
	for _, question := range list {
		_, hasCorrect := question["correctOption"]
		assert.False(t, hasCorrect, "correctOption must never reach players")
		assert.Len(t, question["options"], 4)
	}

	resp, single := doRequest(t, app, "GET", "/api/quiz/1", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	_, hasCorrect := single["correctOption"]
	assert.False(t, hasCorrect)

	resp, _ = doRequest(t, app, "GET", "/api/quiz/7", token, nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestQuizAnswerScenario(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	// Wrong option on question 1 keeps the pointer.
	resp, body := doRequest(t, app, "POST", "/api/quiz/1/answer", token, map[string]int{"selectedOption": 0})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, body["correct"])
	assert.Equal(t, false, body["completed"])
	assert.Equal(t, float64(1), body["nextIndex"])

	// Correct option (OOP) advances to question 2.
	resp, body = doRequest(t, app, "POST", "/api/quiz/1/answer", token, map[string]int{"selectedOption": 1})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["correct"])
	assert.Equal(t, false, body["completed"])
	assert.Equal(t, float64(2), body["nextIndex"])

	// Finish the quiz.
	resp, body = doRequest(t, app, "POST", "/api/quiz/2/answer", token, map[string]int{"selectedOption": 1})
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, true, body["correct"])

	resp, body = doRequest(t, app, "POST", "/api/quiz/3/answer", token, map[string]interface{}{"selectedOption": 2, "timeElapsed": 123456})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["correct"])
	assert.Equal(t, true, body["completed"])

	// Group record now shows a completed quiz with a non-zero time.
	resp, group := doRequest(t, app, "GET", "/api/group-progress", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, group["completedQuiz"])
	assert.Equal(t, float64(123456), group["completionTime"])
	assert.Equal(t, true, group["allMembersCompleted"])
}

func TestQuizAnswerValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	resp, _ := doRequest(t, app, "POST", "/api/quiz/1/answer", token, map[string]int{"selectedOption": 9})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/quiz/0/answer", token, map[string]int{"selectedOption": 1})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/quiz/1/answer", token, map[string]string{})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestQuizReset(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	_, _ = doRequest(t, app, "POST", "/api/quiz/1/answer", token, map[string]int{"selectedOption": 1})

	resp, body := doRequest(t, app, "POST", "/api/quiz/reset", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["lastQuizQuestion"])
}

func TestGroupPhotoRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "2")

	resp, _ := doRequest(t, app, "GET", "/api/group-photo", token, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp, body := doRequest(t, app, "POST", "/api/group-photo", token, map[string]string{"photoData": "data:image/png;base64,AAAA"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doRequest(t, app, "GET", "/api/group-photo", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "data:image/png;base64,AAAA", body["photoData"])

	resp, group := doRequest(t, app, "GET", "/api/group-progress", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, group["hasPhoto"])

	resp, _ = doRequest(t, app, "POST", "/api/group-photo", token, map[string]string{})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGroupMembersSameGroupOnly(t *testing.T) {
	app, _ := newTestApp(t)
	token1 := registerUser(t, app, "runner1", "1")
	registerUser(t, app, "runner2", "1")
	registerUser(t, app, "outsider", "2")

	resp, members := doRequestList(t, app, "GET", "/api/group-members", token1)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, members, 2)
	names := []string{members[0]["username"].(string), members[1]["username"].(string)}
	assert.ElementsMatch(t, []string{"runner1", "runner2"}, names)
	for _, member := range members {
		_, hasPassword := member["password"]
		assert.False(t, hasPassword)
	}
}

func TestAllGroupsProgress(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")
	registerUser(t, app, "runner2", "3")

	resp, body := doRequest(t, app, "GET", "/api/all-groups-progress", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, body, 4)

	group1, ok := body["1"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), group1["totalMembers"])
	assert.Equal(t, false, group1["allMembersCompleted"])

	group4, ok := body["4"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), group4["totalMembers"])
	assert.Equal(t, false, group4["allMembersCompleted"])
}

func TestAdminRoutesForbiddenForPlayers(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "runner1", "1")

	resp, _ := doRequest(t, app, "GET", "/api/admin/users", token, nil)
	assert.Equal(t, 403, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/api/admin/challenges", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAdminResponsesKeepAnswers(t *testing.T) {
	app, store := newTestApp(t)
	token := adminToken(t, app, store)

	resp, challenges := doRequestList(t, app, "GET", "/api/admin/challenges", token)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, challenges, 5)
	assert.Equal(t, "cyberstart", challenges[0]["answer"])

	resp, quizzes := doRequestList(t, app, "GET", "/api/admin/quizzes", token)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, quizzes, 12)
	for _, quiz := range quizzes {
		_, hasCorrect := quiz["correctOption"]
		assert.True(t, hasCorrect)
	}
}

func TestAdminChallengeCRUD(t *testing.T) {
	app, store := newTestApp(t)
	token := adminToken(t, app, store)

	resp, created := doRequest(t, app, "POST", "/api/admin/challenges", token, map[string]interface{}{
		"title":       "BONUS_ROUND",
		"description": "An extra stop for fast teams.",
		"answer":      "overtime",
		"codeName":    "Challenge 06: BONUS_ROUND",
		"order":       6,
	})
	require.Equal(t, 201, resp.StatusCode)
	id := fmt.Sprintf("%.0f", created["id"].(float64))

	resp, updated := doRequest(t, app, "PUT", "/api/admin/challenges/"+id, token, map[string]interface{}{
		"title":       "BONUS_ROUND",
		"description": "An extra stop for fast teams.",
		"answer":      "doubletime",
		"codeName":    "Challenge 06: BONUS_ROUND",
		"order":       6,
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "doubletime", updated["answer"])

	resp, _ = doRequest(t, app, "DELETE", "/api/admin/challenges/"+id, token, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp, _ = doRequest(t, app, "DELETE", "/api/admin/challenges/"+id, token, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestAdminDeleteUserFlipsGroupAggregate(t *testing.T) {
	app, store := newTestApp(t)
	playerToken := registerUser(t, app, "runner1", "1")

	// The sole member completes the quiz.
	for i, option := range []int{1, 1, 2} {
		resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/api/quiz/%d/answer", i+1), playerToken, map[string]int{"selectedOption": option})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, group := doRequest(t, app, "GET", "/api/all-groups-progress", playerToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	group1 := group["1"].(map[string]interface{})
	require.Equal(t, true, group1["allMembersCompleted"])

	user, err := store.GetUserByUsername("runner1")
	require.NoError(t, err)

	token := adminToken(t, app, store)
	resp, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/api/admin/users/%d", user.ID), token, nil)
	require.Equal(t, 200, resp.StatusCode)

	// Live recomputation: no members left, so the derived flag drops while
	// the persisted completedQuiz stays true.
	resp, group = doRequest(t, app, "GET", "/api/all-groups-progress", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	group1 = group["1"].(map[string]interface{})
	assert.Equal(t, false, group1["allMembersCompleted"])
	assert.Equal(t, float64(0), group1["totalMembers"])
	assert.Equal(t, true, group1["completedQuiz"])
}
