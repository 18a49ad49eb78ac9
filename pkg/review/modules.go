package review

import "github.com/brunogum/content-guardian/pkg/llm"

// Module ids of the standard catalog.
const (
	FactCheckModuleID      = "fact-check"
	EthicsModuleID         = "ethics"
	ToneModuleID           = "tone"
	PlotLogicModuleID      = "plot-logic"
	ReaderFeedbackModuleID = "reader-feedback"
	LayoutPreviewModuleID  = "layout-preview"
	ImagePromptsModuleID   = "image-prompts"
	ExportFormatModuleID   = "export-format"
	TraceabilityModuleID   = "traceability"
	HallucinationModuleID  = "hallucination"
)

// DefaultModel is used when neither the module config nor the caller names one.
const DefaultModel = "gpt-4o-mini"

// DefaultModules builds the ten standard review modules against the given
// completion client.
func DefaultModules(client llm.Client, logger Logger) []*Module {
	configs := []Config{
		factCheckConfig,
		ethicsConfig,
		toneConfig,
		plotLogicConfig,
		readerFeedbackConfig,
		layoutPreviewConfig,
		imagePromptsConfig,
		exportFormatConfig,
		traceabilityConfig,
		hallucinationConfig,
	}
	mods := make([]*Module, 0, len(configs))
	for _, cfg := range configs {
		mods = append(mods, NewModule(cfg, client, logger))
	}
	return mods
}

var factCheckConfig = Config{
	ID:          FactCheckModuleID,
	Description: "Verifies factual claims, dates, names and statistics against general knowledge",
	Template: `You are a meticulous fact-checker reviewing a manuscript before publication.
Examine the content below and:
1. Identify every verifiable factual claim (dates, names, places, statistics, events).
2. Flag claims that are incorrect, outdated or unverifiable.
3. Note claims that need a citation or a primary source.

Format your answer with exactly these sections:
SUMMARY: one paragraph overview of factual quality.
CLAIMS_REVIEWED: the claims you examined, one per line.
ISSUES_FOUND: problematic claims with a short explanation each, or "None".
RECOMMENDATIONS: concrete corrections, one per line.
OVERALL_ASSESSMENT: PASS | PASS_WITH_WARNINGS | FAIL`,
	StatusField: "OVERALL_ASSESSMENT",
	Vocabulary:  [3]string{"PASS", "PASS_WITH_WARNINGS", "FAIL"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "CLAIMS_REVIEWED", "ISSUES_FOUND", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 2000, Temperature: 0.2},
}

var ethicsConfig = Config{
	ID:          EthicsModuleID,
	Description: "Screens for bias, stereotyping, discriminatory language and ethical concerns",
	Template: `You are an ethics reviewer for a publishing house.
Review the content below for:
1. Bias or stereotyping of groups or individuals.
2. Discriminatory, demeaning or exclusionary language.
3. Content that could cause harm to vulnerable readers.
4. Undisclosed conflicts of interest or manipulative framing.

Format your answer with exactly these sections:
SUMMARY: one paragraph overview.
CONCERNS: each concern with the offending passage, or "None".
RECOMMENDATIONS: concrete rewording or removal suggestions, one per line.
ETHICAL_ASSESSMENT: ACCEPTABLE | NEEDS_REVISION | PROBLEMATIC`,
	StatusField: "ETHICAL_ASSESSMENT",
	Vocabulary:  [3]string{"ACCEPTABLE", "NEEDS_REVISION", "PROBLEMATIC"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "CONCERNS", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.3},
}

var toneConfig = Config{
	ID:          ToneModuleID,
	Description: "Checks consistency of voice, register and emotional tone across the text",
	Template: `You are a developmental editor focused on voice and tone.
Review the content below and:
1. Characterize the dominant tone and register.
2. Point out passages where the tone shifts abruptly or clashes with the rest.
3. Judge whether the tone fits the stated content type and target audience.

Format your answer with exactly these sections:
SUMMARY: one paragraph characterization of the voice.
SHIFTS: passages with tone breaks and why they jar, or "None".
SUGGESTED_ADJUSTMENTS: concrete rewrites, one per line.
TONE_ASSESSMENT: CONSISTENT | MINOR_DEVIATIONS | INCONSISTENT`,
	StatusField: "TONE_ASSESSMENT",
	Vocabulary:  [3]string{"CONSISTENT", "MINOR_DEVIATIONS", "INCONSISTENT"},
	FixesHeader: "SUGGESTED_ADJUSTMENTS",
	Headers:     []string{"SUMMARY", "SHIFTS", "SUGGESTED_ADJUSTMENTS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.4},
}

var plotLogicConfig = Config{
	ID:          PlotLogicModuleID,
	Description: "Finds plot holes, broken causality, timeline errors and unresolved threads",
	Template: `You are a story editor reviewing narrative logic.
Review the content below and:
1. Reconstruct the causal chain of events.
2. Flag contradictions, timeline errors and unmotivated character decisions.
3. List setups without payoff and threads left unresolved.
For non-fiction, treat the argument structure as the plot: flag leaps of logic
and unsupported conclusions.

Format your answer with exactly these sections:
SUMMARY: one paragraph overview of structural soundness.
ISSUES_FOUND: each logic problem with its location, or "None".
RECOMMENDATIONS: concrete fixes, one per line.
PLOT_ASSESSMENT: COHERENT | MINOR_GAPS | BROKEN`,
	StatusField: "PLOT_ASSESSMENT",
	Vocabulary:  [3]string{"COHERENT", "MINOR_GAPS", "BROKEN"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "ISSUES_FOUND", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 2000, Temperature: 0.5},
}

var readerFeedbackConfig = Config{
	ID:          ReaderFeedbackModuleID,
	Description: "Simulates a first-time reader and reports confusion points and pacing problems",
	Template: `You are simulating a first-time reader from the stated target audience.
Read the content below and report:
1. Passages where you got confused, lost or had to re-read.
2. Terms or references you did not understand.
3. Where your attention flagged (pacing problems).
4. Questions you were left with at the end.

Format your answer with exactly these sections:
SUMMARY: one paragraph reading experience report.
CONFUSION_POINTS: each confusing passage and why, or "None".
RECOMMENDATIONS: concrete clarifications, one per line.
CLARITY_ASSESSMENT: CLEAR | SOMEWHAT_CONFUSING | CONFUSING`,
	StatusField: "CLARITY_ASSESSMENT",
	Vocabulary:  [3]string{"CLEAR", "SOMEWHAT_CONFUSING", "CONFUSING"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "CONFUSION_POINTS", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.6},
}

var layoutPreviewConfig = Config{
	ID:          LayoutPreviewModuleID,
	Description: "Assesses structure, headings, paragraph length and print/ebook layout readiness",
	Template: `You are a book designer assessing layout readiness.
Review the content below and:
1. Evaluate heading hierarchy and section balance.
2. Flag walls of text, orphan headings and over-long paragraphs.
3. Note elements that need special layout treatment (tables, quotes, lists, code).
4. Judge suitability for both print and reflowable ebook rendering.

Format your answer with exactly these sections:
SUMMARY: one paragraph layout overview.
STRUCTURE_NOTES: observations on the document structure, or "None".
RECOMMENDATIONS: concrete layout fixes, one per line.
LAYOUT_ASSESSMENT: PRINT_READY | ADJUSTMENTS_NEEDED | UNSUITABLE`,
	StatusField: "LAYOUT_ASSESSMENT",
	Vocabulary:  [3]string{"PRINT_READY", "ADJUSTMENTS_NEEDED", "UNSUITABLE"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "STRUCTURE_NOTES", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.3},
}

var imagePromptsConfig = Config{
	ID:          ImagePromptsModuleID,
	Description: "Proposes illustration concepts and generation prompts for key scenes",
	Template: `You are an art director planning illustrations for the content below.
1. Identify the scenes or concepts that would benefit most from an image.
2. For each, write a detailed image-generation prompt (subject, composition,
   style, mood, lighting).
3. Flag any scene whose depiction would be problematic for the target audience.

Format your answer with exactly these sections:
SUMMARY: one paragraph on the visual potential of the content.
IMAGE_PROMPTS: one generation prompt per line, prefixed with the scene name.
RECOMMENDATIONS: placement and style guidance, one per line.
OVERALL_ASSESSMENT: PASS | PASS_WITH_WARNINGS | FAIL`,
	StatusField: "OVERALL_ASSESSMENT",
	Vocabulary:  [3]string{"PASS", "PASS_WITH_WARNINGS", "FAIL"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "IMAGE_PROMPTS", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 2000, Temperature: 0.8},
}

var exportFormatConfig = Config{
	ID:          ExportFormatModuleID,
	Description: "Checks readiness for EPUB/PDF/print export and flags formatting hazards",
	Template: `You are a production editor preparing content for export.
Review the content below for export readiness:
1. Characters or constructs that break EPUB or PDF conversion.
2. Inconsistent emphasis, quotation or list formatting.
3. Missing front-matter elements implied by the content type.
4. Anything that will render differently across formats.

Format your answer with exactly these sections:
SUMMARY: one paragraph export overview.
FORMAT_ISSUES: each formatting hazard with its location, or "None".
RECOMMENDATIONS: concrete pre-export fixes, one per line.
EXPORT_READINESS: READY | MINOR_FIXES | NOT_READY`,
	StatusField: "EXPORT_READINESS",
	Vocabulary:  [3]string{"READY", "MINOR_FIXES", "NOT_READY"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "FORMAT_ISSUES", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.2},
}

var traceabilityConfig = Config{
	ID:          TraceabilityModuleID,
	Description: "Builds provenance metadata: sources cited, quotes, and attribution gaps",
	Template: `You are an archivist building a traceability record for the content below.
1. List every source, work or person the text cites or quotes.
2. Flag quotes and borrowed ideas without attribution.
3. Produce a metadata block (title, author, content type, audience, derived
   keywords) suitable for a publication record.

Format your answer with exactly these sections:
SUMMARY: one paragraph provenance overview.
METADATA_BLOCK: key: value lines for the publication record.
ATTRIBUTION_GAPS: unattributed material, or "None".
RECOMMENDATIONS: attribution fixes, one per line.
OVERALL_ASSESSMENT: PASS | PASS_WITH_WARNINGS | FAIL`,
	StatusField: "OVERALL_ASSESSMENT",
	Vocabulary:  [3]string{"PASS", "PASS_WITH_WARNINGS", "FAIL"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "METADATA_BLOCK", "ATTRIBUTION_GAPS", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 1500, Temperature: 0.2},
}

var hallucinationConfig = Config{
	ID:          HallucinationModuleID,
	Description: "Detects fabricated citations, invented entities and confidently wrong claims",
	Template: `You are a reviewer specialized in detecting machine-generated fabrications.
Review the content below and:
1. Flag citations, studies, quotes or statistics that look invented.
2. Flag named entities (people, institutions, products) that may not exist.
3. Flag confidently stated claims that contradict well-established knowledge.
Distinguish between "likely fabricated" and "needs verification".

Format your answer with exactly these sections:
SUMMARY: one paragraph risk overview.
SUSPECT_CLAIMS: each suspect item with your confidence, or "None".
RECOMMENDATIONS: verification steps, one per line.
HALLUCINATION_RISK: LOW | MEDIUM | HIGH`,
	StatusField: "HALLUCINATION_RISK",
	Vocabulary:  [3]string{"LOW", "MEDIUM", "HIGH"},
	FixesHeader: "RECOMMENDATIONS",
	Headers:     []string{"SUMMARY", "SUSPECT_CLAIMS", "RECOMMENDATIONS"},
	Defaults:    llm.GenerationOptions{Model: DefaultModel, MaxTokens: 2000, Temperature: 0.2},
}
