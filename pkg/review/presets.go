package review

import "github.com/brunogum/content-guardian/pkg/models"

// Workflow presets are pure data: named module-id lists grouped by use case.

// ComprehensiveWorkflow runs every standard module.
func ComprehensiveWorkflow() models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules: []string{
			FactCheckModuleID,
			EthicsModuleID,
			ToneModuleID,
			PlotLogicModuleID,
			ReaderFeedbackModuleID,
			LayoutPreviewModuleID,
			ImagePromptsModuleID,
			ExportFormatModuleID,
			TraceabilityModuleID,
			HallucinationModuleID,
		},
	}
}

// FactualIntegrityWorkflow covers factual claims, fabrications and provenance.
func FactualIntegrityWorkflow() models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules: []string{FactCheckModuleID, HallucinationModuleID, TraceabilityModuleID},
	}
}

// EthicalReviewWorkflow covers bias, tone and provenance.
func EthicalReviewWorkflow() models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules: []string{EthicsModuleID, ToneModuleID, TraceabilityModuleID},
	}
}

// ReaderExperienceWorkflow covers how the text lands with its audience.
func ReaderExperienceWorkflow() models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules: []string{ToneModuleID, PlotLogicModuleID, ReaderFeedbackModuleID, TraceabilityModuleID},
	}
}

// PublicationPrepWorkflow covers layout, illustration and export readiness.
func PublicationPrepWorkflow() models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules: []string{LayoutPreviewModuleID, ImagePromptsModuleID, ExportFormatModuleID, TraceabilityModuleID},
	}
}

// NewCustomWorkflow builds an ad hoc workflow with explicit sequencing and
// error policy.
func NewCustomWorkflow(moduleIDs []string, parallel, stopOnError bool, options map[string]models.ModuleOptions) models.WorkflowOptions {
	return models.WorkflowOptions{
		Modules:     moduleIDs,
		Parallel:    parallel,
		StopOnError: stopOnError,
		Options:     options,
	}
}

// Presets maps preset names to their workflow constructors, for front doors
// that resolve workflows by name.
var Presets = map[string]func() models.WorkflowOptions{
	"comprehensive":     ComprehensiveWorkflow,
	"factual-integrity": FactualIntegrityWorkflow,
	"ethical-review":    EthicalReviewWorkflow,
	"reader-experience": ReaderExperienceWorkflow,
	"publication-prep":  PublicationPrepWorkflow,
}
