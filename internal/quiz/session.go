package quiz

// Session walks one user through the catalog: Awaiting(0) → Awaiting(1)
// → ... → Completed. Answering advances, Restart returns to the start
// with a zeroed tally, and there is no back transition. A Session is
// owned by a single caller and is not safe for concurrent use; the
// catalogs it points at are immutable and shared freely.
type Session struct {
	catalog   *Catalog
	results   *ResultCatalog
	index     int
	tally     Tally
	completed bool
	result    ResultEntry
}

// NewSession starts a session at the first question with all totals at zero.
func NewSession(catalog *Catalog, results *ResultCatalog) *Session {
	return &Session{
		catalog: catalog,
		results: results,
		tally:   NewTally(),
	}
}

// Completed reports whether the last question has been answered.
func (s *Session) Completed() bool { return s.completed }

// QuestionIndex returns the zero-based index of the question awaiting
// an answer. Meaningless once the session is completed.
func (s *Session) QuestionIndex() int { return s.index }

// QuestionCount returns the total number of questions.
func (s *Session) QuestionCount() int { return s.catalog.QuestionCount() }

// Tally returns a snapshot of the current totals.
func (s *Session) Tally() Tally { return s.tally.Clone() }

// CurrentQuestion returns the question awaiting an answer.
// ErrIllegalState once the session is completed.
func (s *Session) CurrentQuestion() (Question, error) {
	if s.completed {
		return Question{}, ErrIllegalState
	}
	return s.catalog.Question(s.index)
}

// Answer applies the selected option of the current question and
// advances the state machine; the final answer resolves the result.
// On error the session is left unchanged.
func (s *Session) Answer(optionID string) error {
	if s.completed {
		return ErrIllegalState
	}
	q, err := s.catalog.Question(s.index)
	if err != nil {
		return err
	}
	next, err := s.tally.Apply(q, optionID)
	if err != nil {
		return err
	}
	s.tally = next
	if s.index == s.catalog.QuestionCount()-1 {
		s.completed = true
		s.result = s.results.Resolve(s.tally)
		return nil
	}
	s.index++
	return nil
}

// Result returns the resolved entry. ErrIllegalState while questions
// remain unanswered.
func (s *Session) Result() (ResultEntry, error) {
	if !s.completed {
		return ResultEntry{}, ErrIllegalState
	}
	return s.result, nil
}

// Restart rewinds to the first question and zeroes every total.
func (s *Session) Restart() {
	s.index = 0
	s.tally = NewTally()
	s.completed = false
	s.result = ResultEntry{}
}
