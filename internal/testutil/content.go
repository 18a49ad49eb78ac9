package testutil

import "github.com/brunogum/content-guardian/pkg/models"

// SampleArticle returns the AI-overview article used across the test suite.
func SampleArticle() models.ContentInput {
	return models.ContentInput{
		Title:          "The Future of Artificial Intelligence",
		Author:         "Jane Doe",
		ContentType:    models.ArticleContentType,
		TargetAudience: "general readers",
		Content: `Artificial intelligence has moved from research labs into everyday life.
Language models draft emails, summarize meetings and answer questions in
natural language. Image models illustrate articles in seconds.

The next decade will be shaped by three forces. First, models keep getting
cheaper to run, which pushes them into products that could never justify the
cost before. Second, regulation is catching up: the EU AI Act entered into
force in 2024 and similar frameworks are under discussion elsewhere. Third,
the gap between what models say and what is actually true remains the
technology's central weakness.

None of this means human judgment is obsolete. It means the judgment moves
up a level: from producing the first draft to deciding what the draft is for
and whether it can be trusted.`,
	}
}

// PassCompletion is a canned completion whose assessment token maps to success.
func PassCompletion(statusField, passToken string) string {
	return `SUMMARY: The content is factually sound and well sourced.
CLAIMS_REVIEWED:
- Language models are used for drafting and summarization.
ISSUES_FOUND: None
RECOMMENDATIONS:
` + statusField + `: ` + passToken
}

// WarnCompletion is a canned completion with a warning-tier token and three
// recommendation lines.
func WarnCompletion(statusField, warnToken string) string {
	return `SUMMARY: Mostly accurate, but several claims need sources.
CLAIMS_REVIEWED:
- The EU AI Act entered into force in 2024.
- Models keep getting cheaper to run.
ISSUES_FOUND:
- The cost-reduction claim is stated without a source.
RECOMMENDATIONS:
1. Cite a source for the cost-reduction trend.
2. Link the EU AI Act reference to the official text.
3. Qualify the claim about regulation "catching up".
` + statusField + `: ` + warnToken
}

// FailCompletion is a canned completion whose assessment token maps to error.
func FailCompletion(statusField, failToken string) string {
	return `SUMMARY: The content contains unsupported and incorrect claims.
CLAIMS_REVIEWED:
- Several dates and attributions.
ISSUES_FOUND:
- The central statistic is wrong.
RECOMMENDATIONS:
1. Rework the statistics section.
` + statusField + `: ` + failToken
}
