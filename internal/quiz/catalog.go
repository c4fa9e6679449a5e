package quiz

import "fmt"

// Contribution is one (category, value) score a selected option adds.
type Contribution struct {
	Category Category `json:"category"`
	Value    int      `json:"value"`
}

// Option is one of a question's mutually exclusive answers.
type Option struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Scores []Contribution `json:"scores"`
}

// Question is one step of the quiz. Option order is presentation order
// only; it never affects scoring.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

func (q Question) option(optionID string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is the fixed, ordered question sequence. It is validated once
// at construction and read-only afterwards, so a single instance is
// safe to share across any number of concurrent sessions.
type Catalog struct {
	questions []Question
}

// NewCatalog validates and freezes a question list. Data problems
// (empty catalog, optionless questions, duplicate option ids, unknown
// categories) are caught here rather than at scoring time.
func NewCatalog(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz: catalog must contain at least one question")
	}
	for _, q := range questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("quiz: question %d has no options", q.ID)
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				return nil, fmt.Errorf("quiz: question %d has an option with empty id", q.ID)
			}
			if seen[o.ID] {
				return nil, fmt.Errorf("quiz: question %d has duplicate option id %q", q.ID, o.ID)
			}
			seen[o.ID] = true
			for _, s := range o.Scores {
				if !s.Category.valid() {
					return nil, fmt.Errorf("quiz: question %d option %q: unknown score category %q", q.ID, o.ID, s.Category)
				}
			}
		}
	}
	c := &Catalog{questions: make([]Question, len(questions))}
	copy(c.questions, questions)
	return c, nil
}

// QuestionCount returns the number of questions in the catalog.
func (c *Catalog) QuestionCount() int {
	return len(c.questions)
}

// Question returns the question at index, in catalog order.
func (c *Catalog) Question(index int) (Question, error) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, fmt.Errorf("%w: %d (count %d)", ErrOutOfRange, index, len(c.questions))
	}
	return c.questions[index], nil
}

// Questions returns a copy of the full ordered question list.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}
