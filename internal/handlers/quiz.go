package handlers

import (
	"errors"
	"net/http"

	"github.com/lemon-choi/RB-1/internal/quiz"
	"github.com/lemon-choi/RB-1/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type AnswerRequest struct {
	OptionID string `json:"option_id" binding:"required" example:"a"`
}

// quizError maps engine errors to HTTP statuses. Invalid options and
// wrong-state calls are contract violations by the client, never
// silently defaulted.
func quizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, quiz.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, quiz.ErrIllegalState):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// ListQuestions godoc
// @Summary      List quiz questions
// @Description  The full ordered identity quiz question catalog
// @Tags         quiz
// @Produce      json
// @Success      200 {array} quiz.Question
// @Router       /api/v1/quiz/questions [get]
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.quizService.Questions())
}

// StartSession godoc
// @Summary      Start a quiz session
// @Description  Create a fresh session at the first question
// @Tags         quiz
// @Produce      json
// @Success      201 {object} services.SessionState
// @Router       /api/v1/quiz/sessions [post]
func (h *QuizHandler) StartSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.quizService.StartSession())
}

// GetSession godoc
// @Summary      Get session state
// @Tags         quiz
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz/sessions/{id} [get]
func (h *QuizHandler) GetSession(c *gin.Context) {
	state, err := h.quizService.GetSession(c.Param("id"))
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Answer godoc
// @Summary      Answer the current question
// @Description  Apply an option of the current question and advance; the last answer resolves the result
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body AnswerRequest true "Selected option"
// @Success      200 {object} services.SessionState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/sessions/{id}/answers [post]
func (h *QuizHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.quizService.Answer(c.Param("id"), req.OptionID)
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetResult godoc
// @Summary      Get the session result
// @Description  Only valid once every question is answered
// @Tags         quiz
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} quiz.ResultEntry
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/sessions/{id}/result [get]
func (h *QuizHandler) GetResult(c *gin.Context) {
	result, err := h.quizService.Result(c.Param("id"))
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Restart godoc
// @Summary      Restart a session
// @Description  Rewind to the first question with all totals reset to zero
// @Tags         quiz
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz/sessions/{id}/restart [post]
func (h *QuizHandler) Restart(c *gin.Context) {
	state, err := h.quizService.Restart(c.Param("id"))
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveResult godoc
// @Summary      Save a completed result to the user profile
// @Tags         quiz
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      201 {object} QuizResultRecord
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/sessions/{id}/save [post]
func (h *QuizHandler) SaveResult(c *gin.Context) {
	userID := c.GetUint("user_id")

	record, err := h.quizService.SaveResult(c.Param("id"), userID)
	if err != nil {
		quizError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ResultHistory godoc
// @Summary      List the user's saved quiz results
// @Tags         quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} QuizResultRecord
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/profile/quiz-results [get]
func (h *QuizHandler) ResultHistory(c *gin.Context) {
	userID := c.GetUint("user_id")

	records, err := h.quizService.ResultHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
