package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lemon-choi/RB-1/internal/quiz"
	"github.com/lemon-choi/RB-1/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := quiz.DefaultCatalog()
	require.NoError(t, err)
	results, err := quiz.DefaultResults()
	require.NoError(t, err)
	quizService := services.NewQuizService(nil, catalog, results, "")
	h := NewQuizHandler(quizService)

	r := gin.New()
	api := r.Group("/api/v1/quiz")
	{
		api.GET("/questions", h.ListQuestions)
		api.POST("/sessions", h.StartSession)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/answers", h.Answer)
		api.GET("/sessions/:id/result", h.GetResult)
		api.POST("/sessions/:id/restart", h.Restart)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, r *gin.Engine) services.SessionState {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var state services.SessionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.NotEmpty(t, state.ID)
	return state
}

func TestListQuestionsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quiz/questions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var questions []quiz.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	assert.Len(t, questions, 10)
	assert.Equal(t, 1, questions[0].ID)
}

func TestQuizFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)
	state := startSession(t, r)

	for !state.Completed {
		require.NotNil(t, state.Question)
		body := `{"option_id": "` + state.Question.Options[0].ID + `"}`
		w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/"+state.ID+"/answers", body)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	}

	require.NotNil(t, state.Result)
	assert.Equal(t, "CRSM_게이", state.Result.ID)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quiz/sessions/"+state.ID+"/result", "")
	require.Equal(t, http.StatusOK, w.Code)

	var result quiz.ResultEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "CRSM_게이", result.ID)
	assert.Equal(t, "CRSM", result.Subtitle)
}

func TestAnswerInvalidOptionEndpoint(t *testing.T) {
	r := newTestRouter(t)
	state := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/"+state.ID+"/answers", `{"option_id": "zz"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultBeforeCompletionEndpoint(t *testing.T) {
	r := newTestRouter(t)
	state := startSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quiz/sessions/"+state.ID+"/result", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnknownSessionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quiz/sessions/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/no-such-id/answers", `{"option_id": "a"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRestartEndpoint(t *testing.T) {
	r := newTestRouter(t)
	state := startSession(t, r)

	// Answer once, then restart back to the first question.
	body := `{"option_id": "` + state.Question.Options[0].ID + `"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/"+state.ID+"/answers", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/"+state.ID+"/restart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var restarted services.SessionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restarted))
	assert.Equal(t, 0, restarted.QuestionIndex)
	assert.False(t, restarted.Completed)
}

func TestAnswerMissingBodyEndpoint(t *testing.T) {
	r := newTestRouter(t)
	state := startSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/quiz/sessions/"+state.ID+"/answers", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
