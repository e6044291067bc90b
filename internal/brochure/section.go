package brochure

import (
	"strings"
	"unicode"
)

// Label identifies the kind of content a section holds.
type Label string

const (
	LabelPolicyDetails Label = "policy_details"
	LabelCoverage      Label = "coverage"
	LabelExclusions    Label = "exclusions"
	LabelPremiumInfo   Label = "premium_info"
	LabelClaimsProcess Label = "claims_process"
	LabelOther         Label = "other"
)

// Section is a labeled contiguous span of the document text. Heading holds
// the line that opened the section (empty for leading text), Text the body.
type Section struct {
	Label   Label
	Heading string
	Text    string
}

// VocabEntry maps a heading phrase to a section label.
type VocabEntry struct {
	Phrase string // lowercase
	Label  Label
}

// Vocabulary is the ordered heading synonym table. When several phrases
// match one heading line, the longest phrase wins.
type Vocabulary struct {
	Entries []VocabEntry
}

// DefaultVocabulary returns the heading phrases recognized in insurance
// brochures. Phrases must be lowercase; matching is substring-based against
// the normalized heading line.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{Entries: []VocabEntry{
		{Phrase: "policy details", Label: LabelPolicyDetails},
		{Phrase: "policy information", Label: LabelPolicyDetails},
		{Phrase: "policy schedule", Label: LabelPolicyDetails},
		{Phrase: "about this policy", Label: LabelPolicyDetails},
		{Phrase: "introduction", Label: LabelPolicyDetails},

		{Phrase: "what is covered", Label: LabelCoverage},
		{Phrase: "benefits covered", Label: LabelCoverage},
		{Phrase: "covered benefits", Label: LabelCoverage},
		{Phrase: "risks covered", Label: LabelCoverage},
		{Phrase: "coverage", Label: LabelCoverage},
		{Phrase: "benefits", Label: LabelCoverage},
		{Phrase: "sum assured", Label: LabelCoverage},
		{Phrase: "sum insured", Label: LabelCoverage},

		{Phrase: "what is not covered", Label: LabelExclusions},
		{Phrase: "not covered", Label: LabelExclusions},
		{Phrase: "exclusions", Label: LabelExclusions},
		{Phrase: "exclusion", Label: LabelExclusions},
		{Phrase: "limitations", Label: LabelExclusions},

		{Phrase: "premium", Label: LabelPremiumInfo},
		{Phrase: "payment details", Label: LabelPremiumInfo},
		{Phrase: "payment information", Label: LabelPremiumInfo},

		{Phrase: "claims process", Label: LabelClaimsProcess},
		{Phrase: "claim procedure", Label: LabelClaimsProcess},
		{Phrase: "how to claim", Label: LabelClaimsProcess},
		{Phrase: "claims", Label: LabelClaimsProcess},
	}}
}

// Match returns the label for a normalized heading line. When multiple
// phrases match, the longest one wins.
func (v Vocabulary) Match(normalized string) (Label, bool) {
	best := ""
	var label Label
	for _, e := range v.Entries {
		if len(e.Phrase) > len(best) && strings.Contains(normalized, e.Phrase) {
			best = e.Phrase
			label = e.Label
		}
	}
	return label, best != ""
}

// MatchExact returns the label whose phrase equals the normalized line.
func (v Vocabulary) MatchExact(normalized string) (Label, bool) {
	for _, e := range v.Entries {
		if e.Phrase == normalized {
			return e.Label, true
		}
	}
	return "", false
}

const maxHeadingLen = 60

// Classify splits document text into ordered, labeled sections. Sections
// cover the document without gaps or overlaps; every input line lands in
// exactly one section, heading lines included. Leading text before the
// first recognized heading is labeled other, and a document with no
// headings is a single other section. Empty text yields no sections.
func Classify(text string, vocab Vocabulary) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sections []Section
	cur := Section{Label: LabelOther}
	var body []string

	flush := func() {
		// The only empty flush is a document starting directly with a
		// heading; everything else is kept, blank lines included, so the
		// sections reassemble to the exact input.
		if cur.Heading == "" && len(body) == 0 {
			return
		}
		cur.Text = strings.Join(body, "\n")
		sections = append(sections, cur)
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if label, ok := matchHeading(line, vocab); ok {
			flush()
			cur = Section{Label: label, Heading: line}
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// matchHeading decides whether a line opens a new section. A heading is a
// short line without a label-colon-value shape or sentence punctuation
// that either matches the vocabulary (typed label) or is in ALL CAPS
// (label other).
func matchHeading(line string, vocab Vocabulary) (Label, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len([]rune(trimmed)) > maxHeadingLen {
		return "", false
	}
	if strings.ContainsAny(trimmed[len(trimmed)-1:], ".!?,;") {
		return "", false
	}
	if len(strings.Fields(trimmed)) > 6 {
		return "", false
	}
	if isLabelValueLine(trimmed) {
		return "", false
	}
	norm := normalizeHeading(trimmed)
	if isItemLine(trimmed) {
		// Numbered headings such as "5. Exclusions" normalize to a bare
		// vocabulary phrase; anything longer is list content.
		if label, ok := vocab.MatchExact(norm); ok {
			return label, true
		}
		return "", false
	}
	if label, ok := vocab.Match(norm); ok {
		return label, true
	}
	if isAllCaps(trimmed) {
		return LabelOther, true
	}
	return "", false
}

// isLabelValueLine reports whether a line looks like "Label: value" with a
// non-empty value. Such lines are content, never headings.
func isLabelValueLine(line string) bool {
	idx := strings.Index(line, ":")
	if idx <= 0 || idx == len(line)-1 {
		return false
	}
	return strings.TrimSpace(line[idx+1:]) != ""
}

// isItemLine reports whether a line starts with a bullet or list marker.
func isItemLine(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case '-', '*':
		return true
	}
	r := []rune(line)
	if r[0] == '•' || r[0] == '▪' || r[0] == '‣' {
		return true
	}
	// Numbered list: "1." or "2)".
	i := 0
	for i < len(r) && unicode.IsDigit(r[i]) {
		i++
	}
	if i > 0 && i < len(r) && (r[i] == '.' || r[i] == ')') {
		return true
	}
	return false
}

// normalizeHeading lowercases a heading line and strips list numbering,
// surrounding punctuation, and a trailing colon.
func normalizeHeading(line string) string {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.TrimRight(s, ":")
	// Strip leading numbering such as "5." or "2)".
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '.' || r == ')' || r == ' '
	})
	s = strings.Trim(s, " \t-–—&")
	return s
}

// isAllCaps reports whether every letter in the line is uppercase and the
// line contains at least two letters.
func isAllCaps(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters >= 2
}
