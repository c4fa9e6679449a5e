package quiz

// Tally holds the running per-category totals of one quiz session.
// Every known category is present from initialization, so downstream
// threshold checks read an unanswered category as 0, never as missing.
// Totals are plain ints with no clamping.
type Tally map[Category]int

// NewTally returns a tally with every category at zero.
func NewTally() Tally {
	t := make(Tally, len(allCategories))
	for _, c := range allCategories {
		t[c] = 0
	}
	return t
}

// Clone returns an independent copy.
func (t Tally) Clone() Tally {
	out := make(Tally, len(t))
	for c, v := range t {
		out[c] = v
	}
	return out
}

// Apply adds the contributions of the selected option to a copy of the
// tally and returns it; the receiver is left untouched so callers can
// keep snapshots. ErrInvalidOption if the id is not on the question.
func (t Tally) Apply(q Question, optionID string) (Tally, error) {
	opt, ok := q.option(optionID)
	if !ok {
		return nil, ErrInvalidOption
	}
	next := t.Clone()
	for _, s := range opt.Scores {
		next[s.Category] += s.Value
	}
	return next, nil
}
