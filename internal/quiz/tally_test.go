package quiz

import (
	"errors"
	"testing"
)

func TestNewTallyHasEveryCategoryAtZero(t *testing.T) {
	tally := NewTally()
	if len(tally) != len(Categories()) {
		t.Fatalf("expected %d categories, got %d", len(Categories()), len(tally))
	}
	for _, c := range Categories() {
		v, ok := tally[c]
		if !ok {
			t.Errorf("category %s missing from fresh tally", c)
		}
		if v != 0 {
			t.Errorf("category %s = %d, want 0", c, v)
		}
	}
}

func TestApplySumsContributions(t *testing.T) {
	q := Question{ID: 1, Text: "q", Options: []Option{
		{ID: "a", Text: "o", Scores: []Contribution{
			{Category: CategoryGenderAlignment, Value: 2},
			{Category: CategoryGenderAlignment, Value: 3},
			{Category: CategoryExpression, Value: -1},
		}},
	}}

	next, err := NewTally().Apply(q, "a")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next[CategoryGenderAlignment] != 5 {
		t.Errorf("gender_alignment = %d, want 5", next[CategoryGenderAlignment])
	}
	if next[CategoryExpression] != -1 {
		t.Errorf("expression = %d, want -1", next[CategoryExpression])
	}
	if next[CategoryRomanticTarget] != 0 {
		t.Errorf("untouched category changed: %d", next[CategoryRomanticTarget])
	}
}

func TestApplyIsPure(t *testing.T) {
	q := Question{ID: 1, Text: "q", Options: []Option{
		{ID: "a", Text: "o", Scores: []Contribution{{Category: CategorySexualAttraction, Value: 7}}},
	}}

	before := NewTally()
	after, err := before.Apply(q, "a")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if before[CategorySexualAttraction] != 0 {
		t.Error("Apply mutated its receiver")
	}
	if after[CategorySexualAttraction] != 7 {
		t.Errorf("sexual_attraction = %d, want 7", after[CategorySexualAttraction])
	}
}

func TestApplyUnknownOption(t *testing.T) {
	c, _ := DefaultCatalog()
	q, _ := c.Question(0)

	if _, err := NewTally().Apply(q, "z"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewTally()
	b := a.Clone()
	b[CategoryGenderAlignment] = 42
	if a[CategoryGenderAlignment] != 0 {
		t.Fatal("Clone shares storage with original")
	}
}
