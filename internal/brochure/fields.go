package brochure

import (
	"fmt"
	"regexp"
	"strings"
)

// Field is one extracted key/value candidate, attributed to the section
// label it belongs to in the assembled result.
type Field struct {
	Name    string
	Value   string
	Section Label
}

// Patterns is the immutable regex configuration driving field extraction.
// Tests may substitute their own instance; production code uses
// DefaultPatterns.
type Patterns struct {
	LabelValue    *regexp.Regexp // "Label: value" lines
	PolicyNumber  *regexp.Regexp
	TollFree      *regexp.Regexp
	Bullet        *regexp.Regexp // itemized list lines
	Currency      *regexp.Regexp // amount with optional frequency qualifier
	FrequencyOnly *regexp.Regexp // "monthly premium", "annual basis"
	GracePeriod   *regexp.Regexp
	Documents     *regexp.Regexp
	Contact       *regexp.Regexp
	Timeframe     *regexp.Regexp
	PolicyKeyword *regexp.Regexp // gates label:value capture in other sections
}

// DefaultPatterns returns the heuristics used against real brochures.
func DefaultPatterns() Patterns {
	return Patterns{
		LabelValue:    regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 /&().'-]{0,50}?)\s*:\s+(.+)$`),
		PolicyNumber:  regexp.MustCompile(`(?i)policy\s*(?:number|no\.?|#)\s*:?\s*([A-Z0-9][A-Z0-9/-]{2,})`),
		TollFree:      regexp.MustCompile(`(?i)toll\s*free\s*(?:number)?\s*:?\s*([0-9][0-9 -]{5,})`),
		Bullet:        regexp.MustCompile(`^\s*(?:[•▪‣*-]|\d+[.)])\s+(.+)$`),
		Currency:      regexp.MustCompile(`(?i)((?:₹|\$|€|£|Rs\.?|INR|USD)\s*\d[\d,]*(?:\.\d+)?)(?:\s*(monthly|quarterly|half-yearly|yearly|annually|annual|per\s+month|per\s+annum))?`),
		FrequencyOnly: regexp.MustCompile(`(?i)\b(monthly|quarterly|half-yearly|yearly|annually|annual)\b\s*(?:premium|payment|basis|instal?lments?)`),
		GracePeriod:   regexp.MustCompile(`(?i)grace\s*period\s*(?:of\s*)?:?\s*(\d+\s*(?:days?|months?))`),
		Documents:     regexp.MustCompile(`(?i)(?:required|necessary)\s+documents?[^:]*:\s*(.+)`),
		Contact:       regexp.MustCompile(`(?i)(?:contact|call|reach|helpline)\D{0,20}?([0-9][0-9 -]{5,})`),
		Timeframe:     regexp.MustCompile(`(?i)(?:settled?|settlement|processed)\D{0,30}within\s*(\d+\s*(?:days?|hours?|weeks?))`),
		PolicyKeyword: regexp.MustCompile(`(?i)\b(policy|plan|insurer|insurance|issued|issue|contact|date|expiry|valid)\b`),
	}
}

// ExtractFields pulls the key/value candidates relevant to a section's
// label. Absence of matches is normal and yields an empty slice, never an
// error. Sections labeled other are scanned for policy-detail and premium
// patterns only, since brochures routinely put both before any recognized
// heading.
func ExtractFields(sec Section, pats Patterns) []Field {
	switch sec.Label {
	case LabelPolicyDetails:
		return extractPolicyDetails(sec.Text, pats, false)
	case LabelCoverage:
		return extractItems(sec.Text, pats, LabelCoverage)
	case LabelExclusions:
		return extractItems(sec.Text, pats, LabelExclusions)
	case LabelPremiumInfo:
		return extractPremiumInfo(sec.Text, pats, true)
	case LabelClaimsProcess:
		return extractClaimsProcess(sec.Text, pats)
	case LabelOther:
		fields := extractPolicyDetails(sec.Text, pats, true)
		return append(fields, extractPremiumInfo(sec.Text, pats, false)...)
	}
	return nil
}

// extractPolicyDetails captures label-colon-value lines plus the policy
// number and toll-free patterns. With gated set, only labels containing a
// policy keyword are kept, which is how leading untyped text is scanned.
func extractPolicyDetails(text string, pats Patterns, gated bool) []Field {
	var fields []Field
	for _, line := range strings.Split(text, "\n") {
		if m := pats.LabelValue.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if gated && !pats.PolicyKeyword.MatchString(name) {
				continue
			}
			fields = append(fields, Field{
				Name:    name,
				Value:   strings.TrimSpace(m[2]),
				Section: LabelPolicyDetails,
			})
			continue
		}
		if m := pats.PolicyNumber.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Policy Number",
				Value:   m[1],
				Section: LabelPolicyDetails,
			})
		}
		if m := pats.TollFree.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Toll Free",
				Value:   strings.TrimSpace(m[1]),
				Section: LabelPolicyDetails,
			})
		}
	}
	return fields
}

// extractItems turns itemized benefit or exclusion lines into fields. The
// leading phrase before a colon or dash names the field; the remainder is
// its value. Plain lines become a named field with an empty value.
func extractItems(text string, pats Patterns, label Label) []Field {
	var fields []Field
	for _, line := range strings.Split(text, "\n") {
		item := strings.TrimSpace(line)
		if m := pats.Bullet.FindStringSubmatch(line); m != nil {
			item = strings.TrimSpace(m[1])
		}
		if len(item) < 3 {
			continue
		}
		name, value := splitItem(item)
		fields = append(fields, Field{Name: name, Value: value, Section: label})
	}
	return fields
}

// splitItem divides an item into a name and value at the first colon or
// spaced dash separator.
func splitItem(item string) (string, string) {
	if i := strings.Index(item, ":"); i > 0 {
		return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:])
	}
	if i := strings.Index(item, " - "); i > 0 {
		return strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+3:])
	}
	return item, ""
}

// extractPremiumInfo captures currency amounts with their frequency
// qualifier, paired with the nearest preceding label phrase, plus grace
// period and payment frequency mentions. With full set, plain label:value
// lines are kept too (due dates and the like); the scan over untyped
// leading text keeps only pattern hits.
func extractPremiumInfo(text string, pats Patterns, full bool) []Field {
	var fields []Field
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		name := ""
		rest := line
		if m := pats.LabelValue.FindStringSubmatch(line); m != nil {
			name = strings.TrimSpace(m[1])
			rest = m[2]
		}

		matched := false
		for _, m := range pats.Currency.FindAllStringSubmatch(rest, -1) {
			matched = true
			value := strings.TrimSpace(m[1])
			if m[2] != "" {
				value += " " + strings.ToLower(m[2])
			}
			fields = append(fields, Field{
				Name:    premiumFieldName(name, lines, i),
				Value:   value,
				Section: LabelPremiumInfo,
			})
		}

		if m := pats.GracePeriod.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Grace Period",
				Value:   strings.TrimSpace(m[1]),
				Section: LabelPremiumInfo,
			})
			matched = true
		}
		if m := pats.FrequencyOnly.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Payment Frequency",
				Value:   strings.ToLower(m[1]),
				Section: LabelPremiumInfo,
			})
			matched = true
		}

		// Label:value lines without an amount still carry premium facts
		// such as due dates.
		if full && !matched && name != "" {
			fields = append(fields, Field{
				Name:    name,
				Value:   strings.TrimSpace(rest),
				Section: LabelPremiumInfo,
			})
		}
	}
	return fields
}

// premiumFieldName resolves the label an amount is paired with: the label
// on the same line, else the nearest preceding short phrase, else
// "Premium".
func premiumFieldName(sameLine string, lines []string, idx int) string {
	if sameLine != "" {
		return sameLine
	}
	for i := idx - 1; i >= 0 && i >= idx-3; i-- {
		prev := strings.TrimSpace(lines[i])
		if prev == "" {
			continue
		}
		if len(prev) <= 40 && !strings.ContainsAny(prev, ".:") {
			return prev
		}
		break
	}
	return "Premium"
}

// extractClaimsProcess captures the claim steps, required documents,
// contact number, and settlement timeframe.
func extractClaimsProcess(text string, pats Patterns) []Field {
	var fields []Field
	step := 0
	for _, line := range strings.Split(text, "\n") {
		if m := pats.Documents.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Required Documents",
				Value:   strings.TrimSpace(m[1]),
				Section: LabelClaimsProcess,
			})
			continue
		}
		if m := pats.Timeframe.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Settlement Timeframe",
				Value:   strings.TrimSpace(m[1]),
				Section: LabelClaimsProcess,
			})
		}
		if m := pats.Contact.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{
				Name:    "Contact",
				Value:   strings.TrimSpace(m[1]),
				Section: LabelClaimsProcess,
			})
		}
		if m := pats.Bullet.FindStringSubmatch(line); m != nil {
			item := strings.TrimSpace(m[1])
			if len(item) < 3 {
				continue
			}
			step++
			fields = append(fields, Field{
				Name:    fmt.Sprintf("Step %d", step),
				Value:   item,
				Section: LabelClaimsProcess,
			})
		}
	}
	return fields
}
