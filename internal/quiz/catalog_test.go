package quiz

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	if c.QuestionCount() != 10 {
		t.Fatalf("expected 10 questions, got %d", c.QuestionCount())
	}

	first, err := c.Question(0)
	if err != nil {
		t.Fatalf("Question(0): %v", err)
	}
	if first.ID != 1 || len(first.Options) != 3 {
		t.Errorf("unexpected first question: id=%d options=%d", first.ID, len(first.Options))
	}

	last, err := c.Question(9)
	if err != nil {
		t.Fatalf("Question(9): %v", err)
	}
	if last.ID != 10 {
		t.Errorf("expected question id 10 at index 9, got %d", last.ID)
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	c, _ := DefaultCatalog()
	for _, idx := range []int{-1, 10, 100} {
		if _, err := c.Question(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Question(%d): expected ErrOutOfRange, got %v", idx, err)
		}
	}
}

func TestNewCatalogRejectsBadData(t *testing.T) {
	cases := []struct {
		name      string
		questions []Question
	}{
		{"empty catalog", nil},
		{"question without options", []Question{{ID: 1, Text: "q"}}},
		{"empty option id", []Question{{ID: 1, Text: "q", Options: []Option{{ID: "", Text: "o"}}}}},
		{"duplicate option ids", []Question{{ID: 1, Text: "q", Options: []Option{
			{ID: "a", Text: "x"},
			{ID: "a", Text: "y"},
		}}}},
		{"unknown category", []Question{{ID: 1, Text: "q", Options: []Option{
			{ID: "a", Text: "x", Scores: []Contribution{{Category: "charisma", Value: 1}}},
		}}}},
	}
	for _, tc := range cases {
		if _, err := NewCatalog(tc.questions); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestCatalogQuestionsIsACopy(t *testing.T) {
	c, _ := DefaultCatalog()
	qs := c.Questions()
	qs[0].Text = "mutated"

	orig, _ := c.Question(0)
	if orig.Text == "mutated" {
		t.Fatal("Questions() must not expose catalog internals")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}
	if _, err := ParseCategory("vibes"); err == nil {
		t.Error("expected error for unknown category")
	}
}
