package quiz

import "fmt"

// Resource is a follow-up link attached to a result.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ResultEntry is one record of the result catalog. ID is always
// "{subtitle}_{title}", e.g. "CAXM_에이섹슈얼". Details may contain
// simple markup (bold, line breaks) that the front end renders.
type ResultEntry struct {
	ID          string     `json:"id"`
	Subtitle    string     `json:"subtitle"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Details     string     `json:"details"`
	Resources   []Resource `json:"resources"`
}

// ResultCatalog is the fixed set of publishable results. Entry order
// matters twice: partial matches take the first hit in catalog order,
// and the last entry is the designated default when nothing matches.
type ResultCatalog struct {
	entries []ResultEntry
}

// NewResultCatalog freezes a result list. It must be non-empty because
// the last entry doubles as the resolution default.
func NewResultCatalog(entries []ResultEntry) (*ResultCatalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("quiz: result catalog must contain at least one entry")
	}
	c := &ResultCatalog{entries: make([]ResultEntry, len(entries))}
	copy(c.entries, entries)
	return c, nil
}

// Entries returns a copy of the catalog in order.
func (c *ResultCatalog) Entries() []ResultEntry {
	out := make([]ResultEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// EntryByID returns the entry with the given id, if present.
func (c *ResultCatalog) EntryByID(id string) (ResultEntry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return ResultEntry{}, false
}

// Axis threshold rules. The first three branch on <= 0, the fourth on
// >= 1; for integer totals these are the same cut. Keep the integer
// comparisons, do not replace them with a float approximation.

func genderAlignmentCode(score int) byte {
	if score <= 0 {
		return 'C'
	}
	return 'F'
}

func romanticAttractionCode(score int) byte {
	if score <= 0 {
		return 'A'
	}
	return 'R'
}

func sexualAttractionCode(score int) byte {
	if score <= 0 {
		return 'X'
	}
	return 'S'
}

func relationshipOpennessCode(score int) byte {
	if score >= 1 {
		return 'P'
	}
	return 'M'
}

// ClassificationCode derives the four-letter code from a tally, one
// character per axis in fixed order.
func ClassificationCode(t Tally) string {
	return string([]byte{
		genderAlignmentCode(t[CategoryGenderAlignment]),
		romanticAttractionCode(t[CategoryRomanticAttraction]),
		sexualAttractionCode(t[CategorySexualAttraction]),
		relationshipOpennessCode(t[CategoryRelationshipOpenness]),
	})
}

// DescriptiveLabel maps the romantic_target total to an orientation
// label by exact integer match. Anything outside the table, negatives
// included, falls through to 퀘스쳐닝 (questioning).
func DescriptiveLabel(t Tally) string {
	switch t[CategoryRomanticTarget] {
	case 1:
		return "레즈비언"
	case 2:
		return "게이"
	case 3:
		return "바이섹슈얼"
	case 4:
		return "팬섹슈얼"
	case 0:
		return "에이섹슈얼"
	default:
		return "퀘스쳐닝"
	}
}

// Resolve maps a final tally to a result entry. It is total by design:
// exact id match first, then the first entry whose subtitle equals the
// code, then the first whose title equals the label, and finally the
// last catalog entry as the deliberate default. It never fails.
func (c *ResultCatalog) Resolve(t Tally) ResultEntry {
	code := ClassificationCode(t)
	label := DescriptiveLabel(t)
	id := code + "_" + label

	for _, e := range c.entries {
		if e.ID == id {
			return e
		}
	}
	for _, e := range c.entries {
		if e.Subtitle == code {
			return e
		}
	}
	for _, e := range c.entries {
		if e.Title == label {
			return e
		}
	}
	return c.entries[len(c.entries)-1]
}
