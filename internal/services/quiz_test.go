package services

import (
	"testing"

	"github.com/lemon-choi/RB-1/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(t *testing.T, pinnedID string) *QuizService {
	t.Helper()
	catalog, err := quiz.DefaultCatalog()
	require.NoError(t, err)
	results, err := quiz.DefaultResults()
	require.NoError(t, err)
	// No db: these tests never touch the persistence paths.
	return NewQuizService(nil, catalog, results, pinnedID)
}

func completeWithFirstOptions(t *testing.T, svc *QuizService, sessionID string) *SessionState {
	t.Helper()
	state, err := svc.GetSession(sessionID)
	require.NoError(t, err)
	for !state.Completed {
		require.NotNil(t, state.Question)
		state, err = svc.Answer(sessionID, state.Question.Options[0].ID)
		require.NoError(t, err)
	}
	return state
}

func TestStartSession(t *testing.T) {
	svc := newTestQuizService(t, "")

	state := svc.StartSession()
	require.NotEmpty(t, state.ID)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Equal(t, 10, state.QuestionCount)
	assert.False(t, state.Completed)
	require.NotNil(t, state.Question)
	assert.Equal(t, 1, state.Question.ID)
	assert.Nil(t, state.Result)
}

func TestAnswerAdvancesAndCompletes(t *testing.T) {
	svc := newTestQuizService(t, "")
	state := svc.StartSession()

	final := completeWithFirstOptions(t, svc, state.ID)
	assert.True(t, final.Completed)
	assert.Nil(t, final.Question)
	require.NotNil(t, final.Result)
	assert.Equal(t, "CRSM_게이", final.Result.ID)

	result, err := svc.Result(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "CRSM_게이", result.ID)
}

func TestResultBeforeCompletion(t *testing.T) {
	svc := newTestQuizService(t, "")
	state := svc.StartSession()

	_, err := svc.Result(state.ID)
	assert.ErrorIs(t, err, quiz.ErrIllegalState)
}

func TestAnswerUnknownSession(t *testing.T) {
	svc := newTestQuizService(t, "")

	_, err := svc.Answer("no-such-session", "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAnswerInvalidOption(t *testing.T) {
	svc := newTestQuizService(t, "")
	state := svc.StartSession()

	_, err := svc.Answer(state.ID, "zz")
	assert.ErrorIs(t, err, quiz.ErrInvalidOption)

	// Rejected answers leave the session where it was.
	got, err := svc.GetSession(state.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.QuestionIndex)
}

func TestRestartResetsSession(t *testing.T) {
	svc := newTestQuizService(t, "")
	state := svc.StartSession()
	completeWithFirstOptions(t, svc, state.ID)

	restarted, err := svc.Restart(state.ID)
	require.NoError(t, err)
	assert.False(t, restarted.Completed)
	assert.Equal(t, 0, restarted.QuestionIndex)
	require.NotNil(t, restarted.Question)
	assert.Equal(t, 1, restarted.Question.ID)

	_, err = svc.Result(state.ID)
	assert.ErrorIs(t, err, quiz.ErrIllegalState)
}

func TestPinnedResultOverride(t *testing.T) {
	svc := newTestQuizService(t, "FAXP_팬섹슈얼")
	state := svc.StartSession()

	final := completeWithFirstOptions(t, svc, state.ID)
	require.NotNil(t, final.Result)
	// Live scoring says CRSM_게이; the pin wins.
	assert.Equal(t, "FAXP_팬섹슈얼", final.Result.ID)

	result, err := svc.Result(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "FAXP_팬섹슈얼", result.ID)
}

func TestUnknownPinnedResultFallsBackToLiveScoring(t *testing.T) {
	svc := newTestQuizService(t, "ZZZZ_없는결과")
	state := svc.StartSession()

	final := completeWithFirstOptions(t, svc, state.ID)
	require.NotNil(t, final.Result)
	assert.Equal(t, "CRSM_게이", final.Result.ID)
}

func TestSessionsAreIndependent(t *testing.T) {
	svc := newTestQuizService(t, "")
	a := svc.StartSession()
	b := svc.StartSession()
	require.NotEqual(t, a.ID, b.ID)

	_, err := svc.Answer(a.ID, a.Question.Options[0].ID)
	require.NoError(t, err)

	gotB, err := svc.GetSession(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.QuestionIndex)

	gotA, err := svc.GetSession(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotA.QuestionIndex)
}

func TestQuestionsAndResultsExposure(t *testing.T) {
	svc := newTestQuizService(t, "")

	questions := svc.Questions()
	require.Len(t, questions, 10)

	results := svc.Results()
	require.NotEmpty(t, results)
	assert.Equal(t, "FAXM_젠더플루이드", results[len(results)-1].ID)
}
