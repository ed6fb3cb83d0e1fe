package domain

import (
	"strings"

	m "github.com/mouse-blink/savelicense/internal/model"
)

// licenseSeparator is written between two license texts: one blank line.
const licenseSeparator = "\n\n"

// LicenseSet is an insertion-ordered set of unique license texts. A new set
// is created for every run.
type LicenseSet struct {
	seen  map[m.LicenseText]struct{}
	texts []m.LicenseText
}

// NewLicenseSet returns an empty set.
func NewLicenseSet() *LicenseSet {
	return &LicenseSet{seen: make(map[m.LicenseText]struct{})}
}

// Add inserts text unless already present and reports which of the two
// happened.
func (s *LicenseSet) Add(text m.LicenseText) m.Operation {
	if s.Has(text) {
		return m.OperationMerge
	}

	s.seen[text] = struct{}{}
	s.texts = append(s.texts, text)

	return m.OperationAdd
}

// Has reports whether text is in the set.
func (s *LicenseSet) Has(text m.LicenseText) bool {
	_, ok := s.seen[text]
	return ok
}

// Len returns the number of unique texts.
func (s *LicenseSet) Len() int {
	return len(s.texts)
}

// Texts returns the unique texts in first-seen order.
func (s *LicenseSet) Texts() []m.LicenseText {
	texts := make([]m.LicenseText, len(s.texts))
	copy(texts, s.texts)

	return texts
}

// Join renders the set as the content of the output file.
func (s *LicenseSet) Join() string {
	parts := make([]string, 0, len(s.texts))
	for _, text := range s.texts {
		parts = append(parts, string(text))
	}

	return strings.Join(parts, licenseSeparator)
}
