package models

import "time"

// WorkflowOptions describes a multi-module review run.
// The zero value of Parallel keeps the default sequential execution.
type WorkflowOptions struct {
	Modules     []string                 `json:"modules" yaml:"modules"`                                 // Ordered module ids; duplicates allowed
	Parallel    bool                     `json:"parallel,omitempty" yaml:"parallel,omitempty"`           // Run all modules concurrently instead of in order
	StopOnError bool                     `json:"stop_on_error,omitempty" yaml:"stop_on_error,omitempty"` // Sequential mode only: halt after the first error result
	Options     map[string]ModuleOptions `json:"options,omitempty" yaml:"options,omitempty"`             // Per-module option overrides, keyed by module id
}

// WorkflowResult aggregates the module results of one workflow run.
type WorkflowResult struct {
	WorkflowID string         `json:"workflow_id"` // Unique per run
	Timestamp  time.Time      `json:"timestamp"`   // Run start time
	Status     ModuleStatus   `json:"status"`      // Worst-of across collected results
	Results    []ModuleResult `json:"results"`     // In completion order
	Summary    string         `json:"summary"`     // Generated prose overview
}

// ModuleInfo is the directory entry advertised for a registered module.
type ModuleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
