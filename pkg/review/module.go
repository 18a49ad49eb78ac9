// Package review implements the editorial review engine: a generic LLM-backed
// analysis module, the controller that registers and runs modules, and the
// named workflow presets.
package review

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brunogum/content-guardian/pkg/llm"
	"github.com/brunogum/content-guardian/pkg/models"
)

// Logger defines the logging interface for the review engine.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Config parameterizes a review module. Ten instances of Module, each with its
// own Config, make up the standard catalog; the execution path is identical for
// all of them.
type Config struct {
	ID          string   // Registry id (e.g., "fact-check")
	Description string   // One-line capability summary for the module directory
	Template    string   // Default analysis prompt, replaced by ModuleOptions.CustomPrompt
	StatusField string   // Name of the enumerated status field the prompt requests
	Vocabulary  [3]string // Status tokens in order: success, warning, error
	FixesHeader string   // Section header mined for recommended fixes
	Headers     []string // All section headers the prompt requests, used as block bounds
	Defaults    llm.GenerationOptions
}

// Module reviews content from one editorial angle via a single completion
// round trip. Process never returns a Go error: every failure mode is folded
// into a ModuleResult with status "error".
type Module struct {
	cfg    Config
	client llm.Client
	logger Logger
}

func NewModule(cfg Config, client llm.Client, logger Logger) *Module {
	return &Module{cfg: cfg, client: client, logger: logger}
}

// ID returns the registry id of the module.
func (m *Module) ID() string { return m.cfg.ID }

// Description returns the directory description of the module.
func (m *Module) Description() string { return m.cfg.Description }

// Process runs the full module pipeline: validate, compose prompt, complete,
// extract, package.
func (m *Module) Process(ctx context.Context, input models.ContentInput, opts models.ModuleOptions) models.ModuleResult {
	model := m.resolveModel(opts)

	if !input.HasContent() {
		m.logger.Errorf("[%s] rejected input: content is empty", m.cfg.ID)
		return models.ModuleResult{
			ModuleID: m.cfg.ID,
			Status:   models.ErrorModuleStatus,
			Report:   "Invalid input: content must be a non-empty string.",
			RecommendedFixes: []string{
				"Provide a non-empty content field",
				"Verify the content survived upload and encoding",
			},
			Metadata: models.ResultMetadata{
				Timestamp:    time.Now(),
				ModelVersion: model,
			},
		}
	}

	prompt := m.buildPrompt(input, opts)
	gen := m.generationOptions(opts)

	if opts.Verbose {
		m.logger.Infof("[%s] prompt composed (%d chars), requesting completion from %s", m.cfg.ID, len(prompt), model)
	} else {
		m.logger.Infof("[%s] requesting completion from %s", m.cfg.ID, model)
	}

	text, err := m.client.GenerateCompletion(ctx, prompt, gen)
	if err != nil {
		m.logger.Errorf("[%s] completion failed: %v", m.cfg.ID, err)
		return models.ModuleResult{
			ModuleID: m.cfg.ID,
			Status:   models.ErrorModuleStatus,
			Report:   fmt.Sprintf("Module execution failed: %v", err),
			RecommendedFixes: []string{
				"Retry the request",
				"Check the completion provider connectivity and credentials",
			},
			Metadata: models.ResultMetadata{
				Timestamp:    time.Now(),
				PromptUsed:   prompt,
				ModelVersion: model,
			},
		}
	}

	status := extractStatus(text, m.cfg.StatusField, m.cfg.Vocabulary)
	fixes := extractSection(text, m.cfg.FixesHeader, m.stopHeaders())
	m.logger.Infof("[%s] completed with status %s (%d recommended fixes)", m.cfg.ID, status, len(fixes))

	return models.ModuleResult{
		ModuleID:         m.cfg.ID,
		Status:           status,
		Report:           text,
		RecommendedFixes: fixes,
		Metadata: models.ResultMetadata{
			Timestamp:    time.Now(),
			PromptUsed:   prompt,
			ModelVersion: model,
		},
	}
}

// buildPrompt concatenates the analysis template with the rendered content block.
func (m *Module) buildPrompt(input models.ContentInput, opts models.ModuleOptions) string {
	template := m.cfg.Template
	if opts.CustomPrompt != "" {
		template = opts.CustomPrompt
	}

	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n\n---\n\n")
	if input.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", input.Title)
	}
	if input.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", input.Author)
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = models.OtherContentType
	}
	fmt.Fprintf(&b, "Content type: %s\n", contentType)
	if input.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", input.TargetAudience)
	}
	// Sorted so the composed prompt is stable for identical input.
	keys := make([]string, 0, len(input.AdditionalContext))
	for k := range input.AdditionalContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, input.AdditionalContext[k])
	}
	b.WriteString("\nCONTENT:\n")
	b.WriteString(input.Content)
	return b.String()
}

func (m *Module) resolveModel(opts models.ModuleOptions) string {
	if opts.Model != "" {
		return opts.Model
	}
	return m.cfg.Defaults.Model
}

func (m *Module) generationOptions(opts models.ModuleOptions) llm.GenerationOptions {
	gen := m.cfg.Defaults
	gen.Model = m.resolveModel(opts)
	if opts.MaxTokens > 0 {
		gen.MaxTokens = opts.MaxTokens
	}
	return gen
}

// stopHeaders returns every known header except the fixes header itself,
// plus the status field. They bound the recommended-fixes block.
func (m *Module) stopHeaders() []string {
	stops := make([]string, 0, len(m.cfg.Headers)+1)
	for _, h := range m.cfg.Headers {
		if strings.EqualFold(h, m.cfg.FixesHeader) {
			continue
		}
		stops = append(stops, h)
	}
	stops = append(stops, m.cfg.StatusField)
	return stops
}
