package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/brunogum/content-guardian/internal/http"
	"github.com/brunogum/content-guardian/internal/log"
	"github.com/brunogum/content-guardian/pkg/llm"
	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/brunogum/content-guardian/pkg/report"
	"github.com/brunogum/content-guardian/pkg/review"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func SetupCLI(rootCmd *cobra.Command) {
	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "List the registered review modules",
		Run: func(cmd *cobra.Command, args []string) {
			ctrl := buildController()
			for _, info := range ctrl.ListModules() {
				fmt.Fprintf(os.Stdout, "- %s: %s\n", info.ID, info.Description)
			}
		},
	}

	reviewCmd := &cobra.Command{
		Use:   "review [module-id]",
		Short: "Run a single review module against a content file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := contentFromFlags(cmd)
			opts := models.ModuleOptions{}
			opts.Model, _ = cmd.Flags().GetString("model")
			opts.MaxTokens, _ = cmd.Flags().GetInt("max-tokens")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			ctrl := buildController()
			result, err := ctrl.RunModule(cmd.Context(), args[0], input, opts)
			if err != nil {
				log.GetLogger().Errorf("Failed to run module: %v", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			printJSON(result)
		},
	}
	reviewCmd.Flags().String("model", "", "Model override for this run")
	reviewCmd.Flags().Int("max-tokens", 0, "Completion token cap (0 = module default)")
	reviewCmd.Flags().Bool("verbose", false, "Verbose step logging")

	workflowCmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run a preset or custom review workflow against a content file",
		Run: func(cmd *cobra.Command, args []string) {
			input := contentFromFlags(cmd)
			wf := workflowFromFlags(cmd)

			ctrl := buildController()
			result, err := ctrl.RunWorkflow(cmd.Context(), input, wf)
			if err != nil {
				log.GetLogger().Errorf("Failed to run workflow: %v", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			out, _ := cmd.Flags().GetString("out")
			if out != "" {
				html, err := report.RenderHTML(input, result)
				if err != nil {
					log.GetLogger().Errorf("Failed to render report: %v", err)
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "Error: failed to write report: %v\n", err)
					os.Exit(1)
				}
				fmt.Fprintf(os.Stdout, "Wrote review report to %s\n", out)
			}
			fmt.Fprintf(os.Stdout, "Workflow %s finished with status %s\n\n%s\n", result.WorkflowID, result.Status, result.Summary)
		},
	}
	workflowCmd.Flags().String("preset", "", "Preset name: comprehensive, factual-integrity, ethical-review, reader-experience, publication-prep")
	workflowCmd.Flags().String("file", "", "YAML workflow definition file")
	workflowCmd.Flags().Bool("parallel", false, "Run modules concurrently")
	workflowCmd.Flags().Bool("stop-on-error", false, "Halt a sequential workflow after the first error result")
	workflowCmd.Flags().String("out", "", "Write an HTML review report to this path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}
			ctrl := buildController()
			if err := http.StartServer(port, ctrl); err != nil {
				log.GetLogger().Errorf("Server failed: %v", err)
				os.Exit(1)
			}
		},
	}
	serveCmd.Flags().String("port", "", "Port to listen on (default $PORT or 8080)")

	for _, c := range []*cobra.Command{reviewCmd, workflowCmd} {
		c.Flags().String("content", "", "Path to the content file (required)")
		c.Flags().String("title", "", "Content title")
		c.Flags().String("author", "", "Content author")
		c.Flags().String("audience", "", "Target audience")
		c.Flags().String("type", "article", "Content type: book, article, essay or other")
	}

	rootCmd.AddCommand(modulesCmd, reviewCmd, workflowCmd, serveCmd)
}

// buildController wires the completion client from the environment. Setting
// GUARDIAN_MOCK=1 swaps in the mock client for offline runs.
func buildController() *review.Controller {
	logger := log.GetLogger()

	var client llm.Client
	if os.Getenv("GUARDIAN_MOCK") == "1" {
		client = llm.NewMockClient()
	} else {
		model := os.Getenv("GUARDIAN_MODEL")
		if model == "" {
			model = review.DefaultModel
		}
		c, err := llm.NewOpenAIClient(llm.Settings{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   model,
		})
		if err != nil {
			logger.Errorf("Failed to build completion client: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v (set OPENAI_API_KEY or GUARDIAN_MOCK=1)\n", err)
			os.Exit(1)
		}
		client = c
	}
	return review.NewDefaultController(client, logger)
}

func contentFromFlags(cmd *cobra.Command) models.ContentInput {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: --content is required")
		os.Exit(1)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.GetLogger().Errorf("Failed to read content file: %v", err)
		fmt.Fprintf(os.Stderr, "Error: failed to read content file: %v\n", err)
		os.Exit(1)
	}

	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	audience, _ := cmd.Flags().GetString("audience")
	contentType, _ := cmd.Flags().GetString("type")
	return models.ContentInput{
		Content:        string(data),
		Title:          title,
		Author:         author,
		TargetAudience: audience,
		ContentType:    models.ContentType(strings.ToLower(contentType)),
	}
}

func workflowFromFlags(cmd *cobra.Command) models.WorkflowOptions {
	presetName, _ := cmd.Flags().GetString("preset")
	filePath, _ := cmd.Flags().GetString("file")
	parallel, _ := cmd.Flags().GetBool("parallel")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	var wf models.WorkflowOptions
	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read workflow file: %v\n", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &wf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid workflow file: %v\n", err)
			os.Exit(1)
		}
	case presetName != "":
		preset, ok := review.Presets[presetName]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset '%s'\n", presetName)
			os.Exit(1)
		}
		wf = preset()
	default:
		wf = review.ComprehensiveWorkflow()
	}

	if cmd.Flags().Changed("parallel") {
		wf.Parallel = parallel
	}
	if cmd.Flags().Changed("stop-on-error") {
		wf.StopOnError = stopOnError
	}
	return wf
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, string(data))
}
