package review_test

import (
	"context"
	"strings"
	"testing"

	"github.com/brunogum/content-guardian/internal/testutil"
	"github.com/brunogum/content-guardian/pkg/llm"
	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/brunogum/content-guardian/pkg/review"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logger struct{}

func (l logger) Infof(format string, args ...interface{}) {
	// no-op
}

func (l logger) Warnf(format string, args ...interface{}) {
	// no-op
}

func (l logger) Errorf(format string, args ...interface{}) {
	// no-op
}

func newTestModule(id string, client llm.Client) *review.Module {
	return review.NewModule(review.Config{
		ID:          id,
		Description: id + " test module",
		Template:    "Analyze the content below.",
		StatusField: "OVERALL_ASSESSMENT",
		Vocabulary:  [3]string{"PASS", "PASS_WITH_WARNINGS", "FAIL"},
		FixesHeader: "RECOMMENDATIONS",
		Headers:     []string{"SUMMARY", "CLAIMS_REVIEWED", "ISSUES_FOUND", "RECOMMENDATIONS"},
		Defaults:    llm.GenerationOptions{Model: "test-model", MaxTokens: 500, Temperature: 0.2},
	}, client, logger{})
}

func TestModuleProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyContentShortCircuits", func(t *testing.T) {
		mock := llm.NewMockClient()
		m := newTestModule("fact-check", mock)

		for _, content := range []string{"", "   ", "\n\t "} {
			res := m.Process(ctx, models.ContentInput{Content: content}, models.ModuleOptions{})
			assert.Equal(t, models.ErrorModuleStatus, res.Status)
			assert.Contains(t, res.Report, "Invalid input")
			assert.NotEmpty(t, res.RecommendedFixes)
		}
		assert.Equal(t, 0, mock.Calls(), "provider must not be contacted for invalid input")
	})

	t.Run("StatusTokenMapping", func(t *testing.T) {
		cases := []struct {
			token    string
			expected models.ModuleStatus
		}{
			{"PASS", models.SuccessModuleStatus},
			{"PASS_WITH_WARNINGS", models.WarningModuleStatus},
			{"FAIL", models.ErrorModuleStatus},
		}
		for _, tc := range cases {
			mock := llm.NewMockClient("SUMMARY: reviewed.\nOVERALL_ASSESSMENT: " + tc.token)
			m := newTestModule("fact-check", mock)
			res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})
			assert.Equal(t, tc.expected, res.Status, "token %s", tc.token)
		}
	})

	t.Run("MissingTokenDefaultsToWarning", func(t *testing.T) {
		mock := llm.NewMockClient("The content looks fine to me overall.")
		m := newTestModule("fact-check", mock)
		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})
		assert.Equal(t, models.WarningModuleStatus, res.Status)
	})

	t.Run("ReportKeptVerbatim", func(t *testing.T) {
		completion := testutil.WarnCompletion("OVERALL_ASSESSMENT", "PASS_WITH_WARNINGS")
		mock := llm.NewMockClient(completion)
		m := newTestModule("fact-check", mock)
		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})
		assert.Equal(t, completion, res.Report)
	})

	t.Run("RecommendationsExtraction", func(t *testing.T) {
		mock := llm.NewMockClient(testutil.WarnCompletion("OVERALL_ASSESSMENT", "PASS_WITH_WARNINGS"))
		m := newTestModule("fact-check", mock)
		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})

		require.Len(t, res.RecommendedFixes, 3)
		assert.Equal(t, "1. Cite a source for the cost-reduction trend.", res.RecommendedFixes[0])
		assert.Equal(t, "2. Link the EU AI Act reference to the official text.", res.RecommendedFixes[1])
		assert.Equal(t, `3. Qualify the claim about regulation "catching up".`, res.RecommendedFixes[2])
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		mock := llm.NewMockClient().FailWith(errors.New("rate limit exceeded"))
		m := newTestModule("fact-check", mock)
		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})

		assert.Equal(t, models.ErrorModuleStatus, res.Status)
		assert.Contains(t, res.Report, "rate limit exceeded")
		require.Len(t, res.RecommendedFixes, 2)
		assert.NotEmpty(t, res.Metadata.PromptUsed)
		assert.False(t, res.Metadata.Timestamp.IsZero())
	})

	t.Run("CustomPromptReplacesTemplate", func(t *testing.T) {
		mock := llm.NewMockClient("OVERALL_ASSESSMENT: PASS")
		m := newTestModule("fact-check", mock)
		m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{CustomPrompt: "Only check the dates."})

		prompts := mock.Prompts()
		require.Len(t, prompts, 1)
		assert.True(t, strings.HasPrefix(prompts[0], "Only check the dates."))
		assert.NotContains(t, prompts[0], "Analyze the content below.")
	})

	t.Run("PromptCarriesContentBlock", func(t *testing.T) {
		mock := llm.NewMockClient("OVERALL_ASSESSMENT: PASS")
		m := newTestModule("fact-check", mock)
		input := testutil.SampleArticle()
		m.Process(ctx, input, models.ModuleOptions{})

		prompts := mock.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], "Title: The Future of Artificial Intelligence")
		assert.Contains(t, prompts[0], "Author: Jane Doe")
		assert.Contains(t, prompts[0], "Content type: article")
		assert.Contains(t, prompts[0], "Target audience: general readers")
		assert.Contains(t, prompts[0], input.Content)
	})

	t.Run("AdditionalContextRenderedInStableOrder", func(t *testing.T) {
		input := testutil.SampleArticle()
		input.AdditionalContext = map[string]string{
			"series":   "Modern Computing",
			"edition":  "2nd",
			"language": "en",
		}

		var first string
		for i := 0; i < 5; i++ {
			mock := llm.NewMockClient("OVERALL_ASSESSMENT: PASS")
			m := newTestModule("fact-check", mock)
			res := m.Process(ctx, input, models.ModuleOptions{})
			if i == 0 {
				first = res.Metadata.PromptUsed
				assert.Contains(t, first, "edition: 2nd\nlanguage: en\nseries: Modern Computing\n")
				continue
			}
			assert.Equal(t, first, res.Metadata.PromptUsed, "identical input must compose an identical prompt")
		}
	})

	t.Run("ModelOverrideRecordedInMetadata", func(t *testing.T) {
		mock := llm.NewMockClient("OVERALL_ASSESSMENT: PASS")
		m := newTestModule("fact-check", mock)
		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{Model: "gpt-4o"})
		assert.Equal(t, "gpt-4o", res.Metadata.ModelVersion)
	})

	t.Run("EndToEndWarningScenario", func(t *testing.T) {
		completion := testutil.WarnCompletion("OVERALL_ASSESSMENT", "PASS_WITH_WARNINGS")
		mock := llm.NewMockClient(completion)
		m := newTestModule("fact-check", mock)

		res := m.Process(ctx, testutil.SampleArticle(), models.ModuleOptions{})
		assert.Equal(t, models.WarningModuleStatus, res.Status)
		assert.Len(t, res.RecommendedFixes, 3)
		assert.Equal(t, completion, res.Report)
		assert.Equal(t, "fact-check", res.ModuleID)
	})
}

func TestDefaultModules(t *testing.T) {
	mods := review.DefaultModules(llm.NewMockClient(), logger{})
	require.Len(t, mods, 10)

	seen := make(map[string]bool)
	for _, m := range mods {
		assert.NotEmpty(t, m.ID())
		assert.NotEmpty(t, m.Description())
		assert.False(t, seen[m.ID()], "duplicate module id %s", m.ID())
		seen[m.ID()] = true
	}
	assert.True(t, seen[review.FactCheckModuleID])
	assert.True(t, seen[review.HallucinationModuleID])
	assert.True(t, seen[review.TraceabilityModuleID])
}
