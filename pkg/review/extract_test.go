package review

import (
	"testing"

	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractStatus(t *testing.T) {
	vocab := [3]string{"PASS", "PASS_WITH_WARNINGS", "FAIL"}

	t.Run("TriLevelMapping", func(t *testing.T) {
		assert.Equal(t, models.SuccessModuleStatus, extractStatus("OVERALL_ASSESSMENT: PASS", "OVERALL_ASSESSMENT", vocab))
		assert.Equal(t, models.WarningModuleStatus, extractStatus("OVERALL_ASSESSMENT: PASS_WITH_WARNINGS", "OVERALL_ASSESSMENT", vocab))
		assert.Equal(t, models.ErrorModuleStatus, extractStatus("OVERALL_ASSESSMENT: FAIL", "OVERALL_ASSESSMENT", vocab))
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, models.SuccessModuleStatus, extractStatus("overall_assessment: pass", "OVERALL_ASSESSMENT", vocab))
		assert.Equal(t, models.WarningModuleStatus, extractStatus("Overall_Assessment:   pass_with_warnings", "OVERALL_ASSESSMENT", vocab))
	})

	t.Run("LongerTokenNotShadowedByPrefix", func(t *testing.T) {
		// PASS is a prefix of PASS_WITH_WARNINGS; the longer token must win.
		got := extractStatus("Verdict below.\nOVERALL_ASSESSMENT: PASS_WITH_WARNINGS\n", "OVERALL_ASSESSMENT", vocab)
		assert.Equal(t, models.WarningModuleStatus, got)
	})

	t.Run("MissingFieldDefaultsToWarning", func(t *testing.T) {
		assert.Equal(t, models.WarningModuleStatus, extractStatus("Looks good to me!", "OVERALL_ASSESSMENT", vocab))
	})

	t.Run("UnknownTokenDefaultsToWarning", func(t *testing.T) {
		assert.Equal(t, models.WarningModuleStatus, extractStatus("OVERALL_ASSESSMENT: MAYBE", "OVERALL_ASSESSMENT", vocab))
	})

	t.Run("EmptyCompletionDefaultsToWarning", func(t *testing.T) {
		assert.Equal(t, models.WarningModuleStatus, extractStatus("", "OVERALL_ASSESSMENT", vocab))
	})

	t.Run("ModuleSpecificVocabulary", func(t *testing.T) {
		risk := [3]string{"LOW", "MEDIUM", "HIGH"}
		assert.Equal(t, models.SuccessModuleStatus, extractStatus("HALLUCINATION_RISK: LOW", "HALLUCINATION_RISK", risk))
		assert.Equal(t, models.ErrorModuleStatus, extractStatus("HALLUCINATION_RISK: high", "HALLUCINATION_RISK", risk))
	})
}

func TestExtractSection(t *testing.T) {
	stops := []string{"SUMMARY", "ISSUES_FOUND", "OVERALL_ASSESSMENT"}

	t.Run("BoundedByNextHeader", func(t *testing.T) {
		text := "SUMMARY: fine.\nRECOMMENDATIONS:\n1. First fix\n\n2. Second fix\nOVERALL_ASSESSMENT: PASS\n"
		lines := extractSection(text, "RECOMMENDATIONS", stops)
		assert.Equal(t, []string{"1. First fix", "2. Second fix"}, lines)
	})

	t.Run("RunsToEndOfText", func(t *testing.T) {
		text := "RECOMMENDATIONS:\n- tighten the intro\n- add sources\n"
		lines := extractSection(text, "RECOMMENDATIONS", stops)
		assert.Equal(t, []string{"- tighten the intro", "- add sources"}, lines)
	})

	t.Run("MissingSection", func(t *testing.T) {
		assert.Nil(t, extractSection("SUMMARY: fine.\nOVERALL_ASSESSMENT: PASS", "RECOMMENDATIONS", stops))
	})

	t.Run("EmptySection", func(t *testing.T) {
		assert.Empty(t, extractSection("RECOMMENDATIONS:\nOVERALL_ASSESSMENT: PASS", "RECOMMENDATIONS", stops))
	})

	t.Run("LinesAreTrimmed", func(t *testing.T) {
		text := "RECOMMENDATIONS:\n   padded fix   \n\t\n"
		lines := extractSection(text, "RECOMMENDATIONS", stops)
		assert.Equal(t, []string{"padded fix"}, lines)
	})
}
