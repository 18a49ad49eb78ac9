package review

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brunogum/content-guardian/pkg/models"
)

// extractStatus scans the completion text for the enumerated status field and
// maps the token onto the canonical tri-state. The match is case-insensitive.
// A missing or unrecognized token maps to "warning": an answer the engine
// cannot interpret is a caution signal, not a success.
func extractStatus(text, field string, vocab [3]string) models.ModuleStatus {
	// Longest token first so e.g. PASS_WITH_WARNINGS is not shadowed by PASS.
	tokens := []string{vocab[0], vocab[1], vocab[2]}
	sort.Slice(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(field) + `\s*:\s*(` + strings.Join(quoted, "|") + `)`)

	match := re.FindStringSubmatch(text)
	if match == nil {
		return models.WarningModuleStatus
	}
	switch {
	case strings.EqualFold(match[1], vocab[0]):
		return models.SuccessModuleStatus
	case strings.EqualFold(match[1], vocab[1]):
		return models.WarningModuleStatus
	case strings.EqualFold(match[1], vocab[2]):
		return models.ErrorModuleStatus
	}
	return models.WarningModuleStatus
}

// extractSection returns the trimmed, non-empty lines of the named section.
// The section runs from its header up to the next known header or the end of
// the text. A missing section yields nil.
func extractSection(text, header string, stopHeaders []string) []string {
	headRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(header) + `\s*:`)
	loc := headRe.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	body := text[loc[1]:]

	end := len(body)
	for _, stop := range stopHeaders {
		stopRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(stop) + `\s*:`)
		if l := stopRe.FindStringIndex(body); l != nil && l[0] < end {
			end = l[0]
		}
	}
	body = body[:end]

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
