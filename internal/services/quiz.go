package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/lemon-choi/RB-1/internal/models"
	"github.com/lemon-choi/RB-1/internal/quiz"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound means the session id is unknown or expired.
var ErrSessionNotFound = errors.New("quiz session not found")

// sessionTTL is how long an idle session survives before pruning.
const sessionTTL = time.Hour

type quizSession struct {
	session    *quiz.Session
	lastActive time.Time
}

// QuizService runs identity quiz sessions over the in-memory engine.
// Sessions live server-side, keyed by uuid; each owns its own tally so
// concurrent users never share scoring state. The question and result
// catalogs are immutable and shared. The database is only touched when
// a signed-in user saves a completed result.
type QuizService struct {
	db       *gorm.DB
	catalog  *quiz.Catalog
	results  *quiz.ResultCatalog
	pinnedID string

	mu       sync.Mutex
	sessions map[string]*quizSession
}

func NewQuizService(db *gorm.DB, catalog *quiz.Catalog, results *quiz.ResultCatalog, pinnedResultID string) *QuizService {
	if pinnedResultID != "" {
		if _, ok := results.EntryByID(pinnedResultID); ok {
			log.Printf("quiz: pinned result mode active, every quiz resolves to %s", pinnedResultID)
		} else {
			log.Printf("quiz: ignoring unknown pinned result id %q, using live scoring", pinnedResultID)
			pinnedResultID = ""
		}
	}
	return &QuizService{
		db:       db,
		catalog:  catalog,
		results:  results,
		pinnedID: pinnedResultID,
		sessions: make(map[string]*quizSession),
	}
}

// Questions returns the full ordered question list.
func (s *QuizService) Questions() []quiz.Question {
	return s.catalog.Questions()
}

// Results returns the full result catalog.
func (s *QuizService) Results() []quiz.ResultEntry {
	return s.results.Entries()
}

// SessionState is the API view of a session: the question awaiting an
// answer, or the resolved result once completed.
type SessionState struct {
	ID            string            `json:"id"`
	QuestionIndex int               `json:"question_index"`
	QuestionCount int               `json:"question_count"`
	Completed     bool              `json:"completed"`
	Question      *quiz.Question    `json:"question,omitempty"`
	Result        *quiz.ResultEntry `json:"result,omitempty"`
}

func (s *QuizService) state(id string, qs *quizSession) *SessionState {
	st := &SessionState{
		ID:            id,
		QuestionIndex: qs.session.QuestionIndex(),
		QuestionCount: qs.session.QuestionCount(),
		Completed:     qs.session.Completed(),
	}
	if qs.session.Completed() {
		result := s.finalResult(qs.session)
		st.Result = &result
	} else {
		q, err := qs.session.CurrentQuestion()
		if err == nil {
			st.Question = &q
		}
	}
	return st
}

// finalResult applies the pinned-result override when configured; the
// engine itself always scores honestly.
func (s *QuizService) finalResult(sess *quiz.Session) quiz.ResultEntry {
	result, err := sess.Result()
	if err != nil {
		// Callers check Completed first; reaching this is a bug.
		log.Printf("quiz: result read in incomplete state: %v", err)
		return quiz.ResultEntry{}
	}
	if s.pinnedID != "" {
		if pinned, ok := s.results.EntryByID(s.pinnedID); ok {
			return pinned
		}
	}
	return result
}

// StartSession creates a session at the first question.
func (s *QuizService) StartSession() *SessionState {
	id := uuid.NewString()
	qs := &quizSession{
		session:    quiz.NewSession(s.catalog, s.results),
		lastActive: time.Now(),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[id] = qs
	s.mu.Unlock()

	return s.state(id, qs)
}

// GetSession returns the current state of a session.
func (s *QuizService) GetSession(sessionID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qs, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return s.state(sessionID, qs), nil
}

// Answer applies an option to the session's current question.
func (s *QuizService) Answer(sessionID, optionID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qs, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := qs.session.Answer(optionID); err != nil {
		return nil, err
	}
	return s.state(sessionID, qs), nil
}

// Result returns the resolved entry of a completed session.
func (s *QuizService) Result(sessionID string) (*quiz.ResultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qs, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if !qs.session.Completed() {
		return nil, quiz.ErrIllegalState
	}
	result := s.finalResult(qs.session)
	return &result, nil
}

// Restart rewinds a session to the first question with zeroed totals.
func (s *QuizService) Restart(sessionID string) (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qs, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	qs.session.Restart()
	return s.state(sessionID, qs), nil
}

// SaveResult stores a completed session's outcome on a user profile.
func (s *QuizService) SaveResult(sessionID string, userID uint) (*models.QuizResultRecord, error) {
	result, err := s.Result(sessionID)
	if err != nil {
		return nil, err
	}

	record := models.QuizResultRecord{
		UserID:   userID,
		ResultID: result.ID,
		Code:     result.Subtitle,
		Label:    result.Title,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ResultHistory lists a user's saved results, newest first.
func (s *QuizService) ResultHistory(userID uint) ([]models.QuizResultRecord, error) {
	var records []models.QuizResultRecord
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *QuizService) lookupLocked(sessionID string) (*quizSession, error) {
	qs, ok := s.sessions[sessionID]
	if !ok || time.Since(qs.lastActive) > sessionTTL {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	qs.lastActive = time.Now()
	return qs, nil
}

func (s *QuizService) pruneLocked() {
	for id, qs := range s.sessions {
		if time.Since(qs.lastActive) > sessionTTL {
			delete(s.sessions, id)
		}
	}
}
