package models

import "time"

type ModuleStatus string

const (
	SuccessModuleStatus ModuleStatus = "success"
	WarningModuleStatus ModuleStatus = "warning"
	ErrorModuleStatus   ModuleStatus = "error"
)

// WorstOf folds two statuses with error dominating warning dominating success.
func WorstOf(a, b ModuleStatus) ModuleStatus {
	if a == ErrorModuleStatus || b == ErrorModuleStatus {
		return ErrorModuleStatus
	}
	if a == WarningModuleStatus || b == WarningModuleStatus {
		return WarningModuleStatus
	}
	return SuccessModuleStatus
}

// ModuleOptions carries per-invocation overrides for a single module run.
type ModuleOptions struct {
	Verbose      bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`             // Emit step-level logs at info instead of debug
	MaxTokens    int    `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`       // Completion token cap; 0 uses the module default
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`                 // Model name override; empty uses the module default
	CustomPrompt string `json:"custom_prompt,omitempty" yaml:"custom_prompt,omitempty"` // Replaces the module's default analysis template
}

// ResultMetadata records how a result was produced.
type ResultMetadata struct {
	Timestamp    time.Time `json:"timestamp"`     // When the result was assembled
	PromptUsed   string    `json:"prompt_used"`   // Literal prompt sent to the provider
	ModelVersion string    `json:"model_version"` // Resolved model name
}

// ModuleResult is the outcome of one module reviewing one ContentInput.
// It is created fresh per invocation and never mutated afterwards.
type ModuleResult struct {
	ModuleID         string         `json:"module_id"`                   // Registry id of the producing module
	Status           ModuleStatus   `json:"status"`                      // Canonical tri-state outcome
	Report           string         `json:"report"`                      // Raw completion text, kept verbatim
	RecommendedFixes []string       `json:"recommended_fixes,omitempty"` // Ordered, trimmed, non-empty lines
	Metadata         ResultMetadata `json:"metadata"`
}
