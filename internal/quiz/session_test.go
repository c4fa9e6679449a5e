package quiz

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	results, err := DefaultResults()
	if err != nil {
		t.Fatalf("DefaultResults: %v", err)
	}
	return NewSession(catalog, results)
}

func TestSessionFirstOptionWalkthrough(t *testing.T) {
	s := newTestSession(t)

	for !s.Completed() {
		q, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("CurrentQuestion at index %d: %v", s.QuestionIndex(), err)
		}
		if err := s.Answer(q.Options[0].ID); err != nil {
			t.Fatalf("Answer at question %d: %v", q.ID, err)
		}
	}

	// First options throughout: gender -3, romantic +3, sexual +2,
	// openness +1, romantic_target +2.
	tally := s.Tally()
	if got := ClassificationCode(tally); got != "CRSP" {
		t.Errorf("code = %q, want CRSP", got)
	}
	if got := DescriptiveLabel(tally); got != "게이" {
		t.Errorf("label = %q, want 게이", got)
	}

	result, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	// CRSP_게이 has no exact entry; title match lands on CRSM_게이.
	if result.ID != "CRSM_게이" {
		t.Errorf("result = %q, want CRSM_게이", result.ID)
	}
}

func TestSessionResultBeforeCompletion(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Result(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
}

func TestSessionAnswerAfterCompletion(t *testing.T) {
	s := newTestSession(t)
	for !s.Completed() {
		q, _ := s.CurrentQuestion()
		if err := s.Answer(q.Options[0].ID); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	if err := s.Answer("a"); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState, got %v", err)
	}
	if _, err := s.CurrentQuestion(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState from CurrentQuestion, got %v", err)
	}
}

func TestSessionInvalidOptionLeavesStateUnchanged(t *testing.T) {
	s := newTestSession(t)
	if err := s.Answer("nope"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if s.QuestionIndex() != 0 {
		t.Errorf("index advanced to %d after rejected answer", s.QuestionIndex())
	}
	for c, v := range s.Tally() {
		if v != 0 {
			t.Errorf("category %s = %d after rejected answer", c, v)
		}
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(t)
	for !s.Completed() {
		q, _ := s.CurrentQuestion()
		if err := s.Answer(q.Options[len(q.Options)-1].ID); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	s.Restart()

	if s.Completed() {
		t.Fatal("session still completed after restart")
	}
	if s.QuestionIndex() != 0 {
		t.Errorf("index = %d after restart, want 0", s.QuestionIndex())
	}
	for c, v := range s.Tally() {
		if v != 0 {
			t.Errorf("category %s = %d after restart, want 0", c, v)
		}
	}
	if _, err := s.Result(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("Result after restart: expected ErrIllegalState, got %v", err)
	}
}

func TestSessionProgress(t *testing.T) {
	s := newTestSession(t)
	if s.QuestionCount() != 10 {
		t.Fatalf("QuestionCount = %d, want 10", s.QuestionCount())
	}
	q, _ := s.CurrentQuestion()
	if err := s.Answer(q.Options[0].ID); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if s.QuestionIndex() != 1 {
		t.Errorf("index = %d after one answer, want 1", s.QuestionIndex())
	}
}
