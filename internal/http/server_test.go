package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internal_http "github.com/brunogum/content-guardian/internal/http"
	"github.com/brunogum/content-guardian/internal/testutil"
	"github.com/brunogum/content-guardian/pkg/llm"
	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/brunogum/content-guardian/pkg/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

func newServer(client llm.Client) *httptest.Server {
	ctrl := review.NewDefaultController(client, noopLogger{})
	mux := http.NewServeMux()
	mux.HandleFunc("/health", internal_http.HealthHandler)
	mux.HandleFunc("/modules", internal_http.ModulesHandler(ctrl))
	mux.HandleFunc("/review", internal_http.ReviewHandler(ctrl))
	mux.HandleFunc("/workflow", internal_http.WorkflowHandler(ctrl))
	return httptest.NewServer(mux)
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestServer(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ModulesDirectory", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/modules")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var infos []models.ModuleInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
		assert.Len(t, infos, 10)
		for _, info := range infos {
			assert.NotEmpty(t, info.ID)
			assert.NotEmpty(t, info.Description)
		}
	})

	t.Run("ReviewSingleModule", func(t *testing.T) {
		srv := newServer(llm.NewMockClient(testutil.PassCompletion("OVERALL_ASSESSMENT", "PASS")))
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/review", map[string]interface{}{
			"module_id": review.FactCheckModuleID,
			"content":   testutil.SampleArticle(),
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result models.ModuleResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, review.FactCheckModuleID, result.ModuleID)
		assert.Equal(t, models.SuccessModuleStatus, result.Status)
	})

	t.Run("ReviewUnknownModule", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/review", map[string]interface{}{
			"module_id": "DoesNotExist",
			"content":   testutil.SampleArticle(),
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "DoesNotExist")
	})

	t.Run("WorkflowExplicitModules", func(t *testing.T) {
		srv := newServer(llm.NewMockClient(testutil.PassCompletion("OVERALL_ASSESSMENT", "PASS")))
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/workflow", map[string]interface{}{
			"content": testutil.SampleArticle(),
			"workflow": map[string]interface{}{
				"modules": []string{review.FactCheckModuleID},
			},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result models.WorkflowResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, models.SuccessModuleStatus, result.Status)
		assert.Len(t, result.Results, 1)
		assert.NotEmpty(t, result.WorkflowID)
	})

	t.Run("WorkflowByPreset", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/workflow", map[string]interface{}{
			"content": testutil.SampleArticle(),
			"preset":  "factual-integrity",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result models.WorkflowResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Len(t, result.Results, 3)
	})

	t.Run("WorkflowUnknownPreset", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/workflow", map[string]interface{}{
			"content": testutil.SampleArticle(),
			"preset":  "nope",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("WorkflowEmptyModules", func(t *testing.T) {
		srv := newServer(llm.NewMockClient())
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/workflow", map[string]interface{}{
			"content":  testutil.SampleArticle(),
			"workflow": map[string]interface{}{},
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
