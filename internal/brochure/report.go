package brochure

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// advisories are the standing notes appended to every report.
var advisories = []string{
	"This policy is subject to the terms and conditions mentioned in the policy document",
	"All benefits are subject to policy terms and conditions",
	"Please read the policy document carefully for complete details",
	"For any queries, please contact the insurer at the provided contact number",
	"Maintain regular premium payments to keep the policy active",
}

// RenderMarkdown formats a Result as a human-readable Markdown report.
// Fields within each section are emitted in sorted name order so the
// report is deterministic.
func RenderMarkdown(res Result) string {
	var b strings.Builder
	b.WriteString("# Insurance Brochure Summary\n")

	writeSection(&b, "Introduction", res.PolicyDetails)
	writeSection(&b, "Coverage Overview", res.Coverage)
	writeSection(&b, "Premium & Payment Details", res.PremiumInfo)
	writeSection(&b, "Exclusions & Limitations", res.Exclusions)
	writeSection(&b, "Claims Process", res.ClaimsProcess)

	b.WriteString("\n## Additional Information\n\n")
	for _, note := range advisories {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, fields map[string]string) {
	b.WriteString("\n## " + title + "\n\n")
	if len(fields) == 0 {
		b.WriteString("_No information found._\n")
		return
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fields[name] == "" {
			fmt.Fprintf(b, "- %s\n", name)
			continue
		}
		fmt.Fprintf(b, "- **%s**: %s\n", name, fields[name])
	}
}

// RenderHTML converts the Markdown report to HTML.
func RenderHTML(res Result) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(RenderMarkdown(res)), &buf); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}
	return buf.String(), nil
}
