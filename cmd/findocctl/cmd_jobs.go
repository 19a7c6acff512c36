package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and manage analysis jobs",
	}
	cmd.AddCommand(jobsListCmd(), jobsShowCmd(), jobsCancelCmd(), jobsDeleteCmd())
	return cmd
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all analysis jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := newAPIClient().get("/analysis/iterative")
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(body)
			}

			analyses, _ := body["analyses"].([]any)
			if len(analyses) == 0 {
				fmt.Println("No analysis jobs found.")
				return nil
			}
			fmt.Printf("%-6s %-12s %-5s %-6s %s\n", "ID", "STATUS", "ITER", "SCORE", "QUERY")
			for _, a := range analyses {
				job, ok := a.(map[string]any)
				if !ok {
					continue
				}
				fmt.Printf("%-6v %-12v %-5v %-6v %s\n",
					jsonNumber(job["id"]),
					job["status"],
					jsonNumber(job["totalIterations"]),
					jsonNumber(job["finalCompletenessScore"]),
					truncate(asText(job["query"]), 60))
			}
			fmt.Printf("Total: %v\n", jsonNumber(body["count"]))
			return nil
		},
	}
}

func jobsShowCmd() *cobra.Command {
	var results bool
	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show the status of one analysis job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			path := fmt.Sprintf("/analysis/iterative/%d/status", id)
			if results {
				path = fmt.Sprintf("/analysis/iterative/%d/results", id)
			}
			body, err := newAPIClient().get(path)
			if err != nil {
				return err
			}
			return printJSON(body)
		},
	}
	cmd.Flags().BoolVar(&results, "results", false, "Fetch the full results payload instead of the status")
	return cmd
}

func jobsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <job-id>",
		Short: "Request cancellation of a running analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			body, err := newAPIClient().post(fmt.Sprintf("/analysis/iterative/%d/cancel", id), nil)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(body)
			}
			fmt.Printf("Job %d: %v\n", id, body["message"])
			return nil
		},
	}
}

func jobsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-id>...",
		Short: "Delete finished analysis jobs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			var failed int
			var lastErr error
			for _, arg := range args {
				id, err := parseJobID(arg)
				if err == nil {
					_, err = client.delete(fmt.Sprintf("/analysis/iterative/%d", id))
				}
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
					failed++
					lastErr = err
					continue
				}
				fmt.Printf("Job %s deleted.\n", arg)
			}
			switch {
			case failed == len(args):
				return lastErr
			case failed > 0:
				return errPartialSuccess
			}
			return nil
		},
	}
}

func parseJobID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid job id %q", arg)
	}
	return id, nil
}

// jsonNumber formats a decoded JSON value without the float64 exponent noise.
func jsonNumber(v any) string {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', 1, 64)
	case nil:
		return "-"
	default:
		return fmt.Sprint(v)
	}
}

func asText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
