package brochure

import (
	"testing"
)

func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func TestExtractFields_PolicyDetailsLabelValue(t *testing.T) {
	sec := Section{
		Label: LabelPolicyDetails,
		Text:  "Policy Name: SecureLife Total Health\nIssued by: Acme General Insurance\nDate of Issue: 01/04/2024",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %+v", len(fields), fields)
	}

	want := map[string]string{
		"Policy Name":   "SecureLife Total Health",
		"Issued by":     "Acme General Insurance",
		"Date of Issue": "01/04/2024",
	}
	for name, value := range want {
		f, ok := findField(fields, name)
		if !ok {
			t.Errorf("missing field %q", name)
			continue
		}
		if f.Value != value {
			t.Errorf("field %q: expected value %q, got %q", name, value, f.Value)
		}
		if f.Section != LabelPolicyDetails {
			t.Errorf("field %q: expected section policy_details, got %q", name, f.Section)
		}
	}
}

func TestExtractFields_PolicyNumberWithoutColon(t *testing.T) {
	sec := Section{
		Label: LabelPolicyDetails,
		Text:  "Refer to policy number SL2024889 in all correspondence.",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Policy Number")
	if !ok {
		t.Fatalf("expected Policy Number field, got %+v", fields)
	}
	if f.Value != "SL2024889" {
		t.Errorf("expected value SL2024889, got %q", f.Value)
	}
}

func TestExtractFields_TollFreeContact(t *testing.T) {
	sec := Section{
		Label: LabelPolicyDetails,
		Text:  "Call our toll free 1800 266 0700 for assistance.",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Toll Free")
	if !ok {
		t.Fatalf("expected Toll Free field, got %+v", fields)
	}
	if f.Value != "1800 266 0700" {
		t.Errorf("expected value %q, got %q", "1800 266 0700", f.Value)
	}
}

func TestExtractFields_OtherSectionGatesOnPolicyKeywords(t *testing.T) {
	sec := Section{
		Label: LabelOther,
		Text:  "Policy Name: SecureLife\nRandom Note: ignore me",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d: %+v", len(fields), fields)
	}
	if fields[0].Name != "Policy Name" || fields[0].Value != "SecureLife" {
		t.Errorf("unexpected field %+v", fields[0])
	}
	if fields[0].Section != LabelPolicyDetails {
		t.Errorf("expected section policy_details, got %q", fields[0].Section)
	}
}

func TestExtractFields_CoverageItems(t *testing.T) {
	sec := Section{
		Label: LabelCoverage,
		Text:  "• Hospitalization Expenses: up to sum insured\n- Day care procedures\n1. Ambulance charges - Rs. 2,000 per event",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %+v", len(fields), fields)
	}

	f, _ := findField(fields, "Hospitalization Expenses")
	if f.Value != "up to sum insured" {
		t.Errorf("expected colon-split value, got %q", f.Value)
	}
	f, ok := findField(fields, "Day care procedures")
	if !ok || f.Value != "" {
		t.Errorf("expected bare item with empty value, got %+v", f)
	}
	f, _ = findField(fields, "Ambulance charges")
	if f.Value != "Rs. 2,000 per event" {
		t.Errorf("expected dash-split value, got %q", f.Value)
	}
	for _, f := range fields {
		if f.Section != LabelCoverage {
			t.Errorf("field %q: expected section coverage, got %q", f.Name, f.Section)
		}
	}
}

func TestExtractFields_ExclusionsBareLines(t *testing.T) {
	sec := Section{
		Label: LabelExclusions,
		Text:  "Pre-existing conditions\nCosmetic surgery\n\nx",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields (short line dropped), got %d: %+v", len(fields), fields)
	}
	if _, ok := findField(fields, "Pre-existing conditions"); !ok {
		t.Error("missing Pre-existing conditions")
	}
	if _, ok := findField(fields, "Cosmetic surgery"); !ok {
		t.Error("missing Cosmetic surgery")
	}
}

func TestExtractFields_PremiumAmountWithQualifier(t *testing.T) {
	sec := Section{
		Label: LabelPremiumInfo,
		Text:  "Premium: $50 monthly",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Premium")
	if !ok {
		t.Fatalf("expected Premium field, got %+v", fields)
	}
	if f.Value != "$50 monthly" {
		t.Errorf("expected value %q, got %q", "$50 monthly", f.Value)
	}
}

func TestExtractFields_PremiumNearestPrecedingLabel(t *testing.T) {
	sec := Section{
		Label: LabelPremiumInfo,
		Text:  "Annual Premium\n₹12,000",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Annual Premium")
	if !ok {
		t.Fatalf("expected amount paired with preceding label, got %+v", fields)
	}
	if f.Value != "₹12,000" {
		t.Errorf("expected value ₹12,000, got %q", f.Value)
	}
}

func TestExtractFields_PremiumDefaultsName(t *testing.T) {
	sec := Section{
		Label: LabelPremiumInfo,
		Text:  "Rs. 5,500 yearly",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Premium")
	if !ok {
		t.Fatalf("expected default Premium name, got %+v", fields)
	}
	if f.Value != "Rs. 5,500 yearly" {
		t.Errorf("expected value with qualifier, got %q", f.Value)
	}
}

func TestExtractFields_GracePeriodAndFrequency(t *testing.T) {
	sec := Section{
		Label: LabelPremiumInfo,
		Text:  "A grace period of 30 days applies.\nPayable on a monthly basis.",
	}
	fields := ExtractFields(sec, DefaultPatterns())

	f, ok := findField(fields, "Grace Period")
	if !ok || f.Value != "30 days" {
		t.Errorf("expected Grace Period=30 days, got %+v", f)
	}
	f, ok = findField(fields, "Payment Frequency")
	if !ok || f.Value != "monthly" {
		t.Errorf("expected Payment Frequency=monthly, got %+v", f)
	}
}

func TestExtractFields_PremiumLabelValueWithoutAmount(t *testing.T) {
	sec := Section{
		Label: LabelPremiumInfo,
		Text:  "Due Date: 5th of every month",
	}
	fields := ExtractFields(sec, DefaultPatterns())
	f, ok := findField(fields, "Due Date")
	if !ok || f.Value != "5th of every month" {
		t.Errorf("expected Due Date field, got %+v", fields)
	}
}

func TestExtractFields_OtherSectionSkipsPlainLabelValuePremium(t *testing.T) {
	// In untyped leading text only currency patterns count as premium
	// facts; arbitrary label:value lines must not leak into premium_info.
	sec := Section{
		Label: LabelOther,
		Text:  "Policy Name: SecureLife\nPremium: $50 monthly",
	}
	fields := ExtractFields(sec, DefaultPatterns())

	var premium []Field
	for _, f := range fields {
		if f.Section == LabelPremiumInfo {
			premium = append(premium, f)
		}
	}
	if len(premium) != 1 {
		t.Fatalf("expected exactly 1 premium field, got %+v", premium)
	}
	if premium[0].Name != "Premium" || premium[0].Value != "$50 monthly" {
		t.Errorf("unexpected premium field %+v", premium[0])
	}
}

func TestExtractFields_ClaimsProcess(t *testing.T) {
	sec := Section{
		Label: LabelClaimsProcess,
		Text: "1. Intimate the insurer about hospitalization\n" +
			"2. Submit the claim form with bills\n" +
			"Required documents: ID proof, policy copy, discharge summary\n" +
			"Claims are settled within 15 days.\n" +
			"Call the helpline at 1800-123-4567 for help.",
	}
	fields := ExtractFields(sec, DefaultPatterns())

	f, ok := findField(fields, "Step 1")
	if !ok || f.Value != "Intimate the insurer about hospitalization" {
		t.Errorf("expected Step 1, got %+v", f)
	}
	if _, ok := findField(fields, "Step 2"); !ok {
		t.Error("missing Step 2")
	}
	f, ok = findField(fields, "Required Documents")
	if !ok || f.Value != "ID proof, policy copy, discharge summary" {
		t.Errorf("expected Required Documents, got %+v", f)
	}
	f, ok = findField(fields, "Settlement Timeframe")
	if !ok || f.Value != "15 days" {
		t.Errorf("expected Settlement Timeframe=15 days, got %+v", f)
	}
	f, ok = findField(fields, "Contact")
	if !ok || f.Value != "1800-123-4567" {
		t.Errorf("expected Contact=1800-123-4567, got %+v", f)
	}
}

func TestExtractFields_NoMatchesIsEmptyNotError(t *testing.T) {
	sections := []Section{
		{Label: LabelPolicyDetails, Text: "nothing structured here"},
		{Label: LabelPremiumInfo, Text: "no amounts mentioned"},
		{Label: LabelClaimsProcess, Text: "prose without steps"},
		{Label: LabelOther, Text: "leading prose"},
	}
	for _, sec := range sections {
		if got := ExtractFields(sec, DefaultPatterns()); len(got) != 0 {
			t.Errorf("section %q: expected no fields, got %+v", sec.Label, got)
		}
	}
}
