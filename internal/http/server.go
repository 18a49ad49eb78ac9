package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brunogum/content-guardian/internal/log"
	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/brunogum/content-guardian/pkg/review"
)

// StartServer exposes the review controller over HTTP.
func StartServer(port string, ctrl *review.Controller) error {
	http.HandleFunc("/health", HealthHandler)
	http.HandleFunc("/modules", ModulesHandler(ctrl))
	http.HandleFunc("/review", ReviewHandler(ctrl))
	http.HandleFunc("/workflow", WorkflowHandler(ctrl))
	http.HandleFunc("/logs", LogsHandler)

	log.GetLogger().Infof("Starting content-guardian server on :%s", port)
	return http.ListenAndServe(":"+port, nil)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "content-guardian server is running")
}

func ModulesHandler(ctrl *review.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, ctrl.ListModules())
	}
}

// reviewRequest is the single-module execution request body.
type reviewRequest struct {
	ModuleID string               `json:"module_id"`
	Content  models.ContentInput  `json:"content"`
	Options  models.ModuleOptions `json:"options"`
}

func ReviewHandler(ctrl *review.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		result, err := ctrl.RunModule(r.Context(), req.ModuleID, req.Content, req.Options)
		if err != nil {
			// Unknown module is the only failure RunModule surfaces.
			log.GetLogger().Errorf("Failed to run module: %v", err)
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, result)
	}
}

// workflowRequest is the multi-module execution request body. A named preset
// can stand in for an explicit module list.
type workflowRequest struct {
	Content  models.ContentInput    `json:"content"`
	Workflow models.WorkflowOptions `json:"workflow"`
	Preset   string                 `json:"preset,omitempty"`
}

func WorkflowHandler(ctrl *review.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req workflowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		wf := req.Workflow
		if req.Preset != "" {
			preset, ok := review.Presets[req.Preset]
			if !ok {
				http.Error(w, fmt.Sprintf("Unknown preset '%s'", req.Preset), http.StatusBadRequest)
				return
			}
			p := preset()
			p.Parallel = wf.Parallel
			p.StopOnError = wf.StopOnError
			p.Options = wf.Options
			wf = p
		}
		result, err := ctrl.RunWorkflow(r.Context(), req.Content, wf)
		if err != nil {
			log.GetLogger().Errorf("Failed to run workflow: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, result)
	}
}

func LogsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := log.Memory().ExportJSON()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to export logs: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.GetLogger().Errorf("Failed to write logs response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.GetLogger().Errorf("Failed to encode response: %v", err)
	}
}
