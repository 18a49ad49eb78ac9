package review

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brunogum/content-guardian/pkg/llm"
	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Controller owns the module registry and executes single-module and workflow
// requests. Registration happens once at startup; afterwards the registry is
// only read, so concurrent workflow runs need no coordination beyond the map
// lock.
type Controller struct {
	logger  Logger
	mu      sync.RWMutex
	modules map[string]*Module
	order   []string // registration order, for stable directory listings
}

func NewController(logger Logger) *Controller {
	return &Controller{
		logger:  logger,
		modules: make(map[string]*Module),
	}
}

// NewDefaultController returns a controller with the ten standard modules
// registered.
func NewDefaultController(client llm.Client, logger Logger) *Controller {
	c := NewController(logger)
	for _, m := range DefaultModules(client, logger) {
		c.RegisterModule(m)
	}
	return c
}

// RegisterModule inserts a module by id. Re-registering an existing id
// overwrites it with a warning; last registration wins.
func (c *Controller) RegisterModule(m *Module) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.modules[m.ID()]; exists {
		c.logger.Warnf("module '%s' already registered, overwriting", m.ID())
	} else {
		c.order = append(c.order, m.ID())
	}
	c.modules[m.ID()] = m
}

// GetModule looks up a module by id.
func (c *Controller) GetModule(id string) (*Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.modules[id]
	return m, ok
}

// ListModules returns the {id, description} directory of all registered
// modules in registration order.
func (c *Controller) ListModules() []models.ModuleInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	infos := make([]models.ModuleInfo, 0, len(c.order))
	for _, id := range c.order {
		m := c.modules[id]
		infos = append(infos, models.ModuleInfo{ID: m.ID(), Description: m.Description()})
	}
	return infos
}

// RunModule executes one module. An unregistered id is the only hard failure;
// once the module exists this method never returns a non-nil error; even a
// panicking module is converted into an error-status result.
func (c *Controller) RunModule(ctx context.Context, id string, input models.ContentInput, opts models.ModuleOptions) (models.ModuleResult, error) {
	m, ok := c.GetModule(id)
	if !ok {
		return models.ModuleResult{}, errors.Errorf("module '%s' not found", id)
	}

	result := func() (res models.ModuleResult) {
		defer func() {
			if r := recover(); r != nil {
				c.logger.Errorf("[%s] module panicked: %v", id, r)
				res = models.ModuleResult{
					ModuleID: id,
					Status:   models.ErrorModuleStatus,
					Report:   fmt.Sprintf("Module execution failed: %v", r),
					RecommendedFixes: []string{
						"Retry the request",
						"Check the completion provider connectivity and credentials",
					},
					Metadata: models.ResultMetadata{
						Timestamp:    time.Now(),
						ModelVersion: opts.Model,
					},
				}
			}
		}()
		return m.Process(ctx, input, opts)
	}()
	return result, nil
}

// RunWorkflow executes a set of modules against one input, sequentially by
// default or all at once when Parallel is set, and folds the per-module
// statuses into a single worst-of workflow status.
func (c *Controller) RunWorkflow(ctx context.Context, input models.ContentInput, wf models.WorkflowOptions) (models.WorkflowResult, error) {
	if len(wf.Modules) == 0 {
		return models.WorkflowResult{}, errors.New("workflow requires at least one module")
	}

	workflowID := uuid.NewString()
	started := time.Now()
	mode := "sequential"
	if wf.Parallel {
		mode = "parallel"
	}
	c.logger.Infof("workflow %s started (%s, %d modules)", workflowID, mode, len(wf.Modules))

	var results []models.ModuleResult
	status := models.SuccessModuleStatus
	if wf.Parallel {
		results, status = c.runParallel(ctx, input, wf)
	} else {
		results, status = c.runSequential(ctx, input, wf)
	}

	// The running status already accounts for failed dispatches; fold in the
	// collected results so the worst-of law holds regardless of mode.
	for _, r := range results {
		status = models.WorstOf(status, r.Status)
	}

	result := models.WorkflowResult{
		WorkflowID: workflowID,
		Timestamp:  started,
		Status:     status,
		Results:    results,
		Summary:    buildSummary(results),
	}
	c.logger.Infof("workflow %s finished with status %s (%d results)", workflowID, status, len(results))
	return result, nil
}

// runSequential iterates the module list in order. An error-status result (or
// a failed dispatch, e.g. an unknown id) sets the running status to error and,
// when StopOnError is set, halts the loop before the next module is invoked.
func (c *Controller) runSequential(ctx context.Context, input models.ContentInput, wf models.WorkflowOptions) ([]models.ModuleResult, models.ModuleStatus) {
	var results []models.ModuleResult
	status := models.SuccessModuleStatus

	for _, moduleID := range wf.Modules {
		res, err := c.RunModule(ctx, moduleID, input, wf.Options[moduleID])
		if err != nil {
			c.logger.Errorf("workflow dispatch failed for module '%s': %v", moduleID, err)
			status = models.ErrorModuleStatus
			if wf.StopOnError {
				break
			}
			continue
		}
		results = append(results, res)
		if res.Status == models.ErrorModuleStatus {
			status = models.ErrorModuleStatus
			if wf.StopOnError {
				break
			}
		} else if res.Status == models.WarningModuleStatus && status != models.ErrorModuleStatus {
			status = models.WarningModuleStatus
		}
	}
	return results, status
}

// runParallel dispatches every module concurrently and joins all of them.
// Result order follows the requested module list, which keeps it deterministic
// for a given workflow definition. A failed dispatch contributes no result but
// forces the running status to error; in-flight siblings are never canceled.
func (c *Controller) runParallel(ctx context.Context, input models.ContentInput, wf models.WorkflowOptions) ([]models.ModuleResult, models.ModuleStatus) {
	type slot struct {
		res models.ModuleResult
		err error
	}
	slots := make([]slot, len(wf.Modules))

	var wg sync.WaitGroup
	for i, moduleID := range wf.Modules {
		wg.Add(1)
		go func(i int, moduleID string) {
			defer wg.Done()
			res, err := c.RunModule(ctx, moduleID, input, wf.Options[moduleID])
			slots[i] = slot{res: res, err: err}
		}(i, moduleID)
	}
	wg.Wait()

	var results []models.ModuleResult
	status := models.SuccessModuleStatus
	for i, s := range slots {
		if s.err != nil {
			c.logger.Errorf("workflow dispatch failed for module '%s': %v", wf.Modules[i], s.err)
			status = models.ErrorModuleStatus
			continue
		}
		results = append(results, s.res)
		status = models.WorstOf(status, s.res.Status)
	}
	return results, status
}

// buildSummary renders deterministic prose from the collected results:
// a processed-count header, per-status counts, and an issues block listing
// every non-success result with the first line of its report and how many
// recommended fixes it produced.
func buildSummary(results []models.ModuleResult) string {
	var success, warning, errorCount int
	for _, r := range results {
		switch r.Status {
		case models.SuccessModuleStatus:
			success++
		case models.WarningModuleStatus:
			warning++
		case models.ErrorModuleStatus:
			errorCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Workflow processed %d module(s).\n", len(results))
	fmt.Fprintf(&b, "Success: %d\n", success)
	fmt.Fprintf(&b, "Warning: %d\n", warning)
	fmt.Fprintf(&b, "Error: %d\n", errorCount)

	if warning > 0 || errorCount > 0 {
		b.WriteString("\nIssues found:\n")
		for _, r := range results {
			if r.Status == models.SuccessModuleStatus {
				continue
			}
			firstLine := r.Report
			if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
				firstLine = firstLine[:idx]
			}
			fmt.Fprintf(&b, "- [%s] %s: %s (%d recommended fixes)\n",
				strings.ToUpper(string(r.Status)), r.ModuleID, strings.TrimSpace(firstLine), len(r.RecommendedFixes))
		}
	}
	return b.String()
}
