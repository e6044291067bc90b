package brochure

// Result is the structured output for one brochure. Every key is always
// present in the JSON body, empty or not, so consumers get a stable schema.
type Result struct {
	PolicyDetails map[string]string `json:"policy_details"`
	Coverage      map[string]string `json:"coverage"`
	Exclusions    map[string]string `json:"exclusions"`
	PremiumInfo   map[string]string `json:"premium_info"`
	ClaimsProcess map[string]string `json:"claims_process"`
}

// NewResult returns a Result with all field sets allocated.
func NewResult() Result {
	return Result{
		PolicyDetails: map[string]string{},
		Coverage:      map[string]string{},
		Exclusions:    map[string]string{},
		PremiumInfo:   map[string]string{},
		ClaimsProcess: map[string]string{},
	}
}

// Assemble merges extracted fields into one Result, grouped by section
// label. The first occurrence of a field name wins, so output is
// deterministic for a given field order.
func Assemble(fields []Field) Result {
	res := NewResult()
	for _, f := range fields {
		m := res.fieldSet(f.Section)
		if m == nil {
			continue
		}
		if _, ok := m[f.Name]; !ok {
			m[f.Name] = f.Value
		}
	}
	return res
}

func (r Result) fieldSet(label Label) map[string]string {
	switch label {
	case LabelPolicyDetails:
		return r.PolicyDetails
	case LabelCoverage:
		return r.Coverage
	case LabelExclusions:
		return r.Exclusions
	case LabelPremiumInfo:
		return r.PremiumInfo
	case LabelClaimsProcess:
		return r.ClaimsProcess
	}
	return nil
}

// Processor runs the full text pipeline: classify sections, extract
// fields, assemble the result. It holds only immutable configuration and
// is safe for concurrent use.
type Processor struct {
	vocab Vocabulary
	pats  Patterns
}

// NewProcessor builds a Processor from explicit configuration.
func NewProcessor(vocab Vocabulary, pats Patterns) *Processor {
	return &Processor{vocab: vocab, pats: pats}
}

// Process transforms extracted document text into a Result. It is a pure
// function of its input and the Processor's configuration.
func (p *Processor) Process(text string) Result {
	var fields []Field
	for _, sec := range Classify(text, p.vocab) {
		fields = append(fields, ExtractFields(sec, p.pats)...)
	}
	return Assemble(fields)
}
