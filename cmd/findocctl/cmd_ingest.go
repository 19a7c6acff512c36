package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func ingestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "ingest <query>",
		Short: "Search SEC EDGAR and queue matching filings for ingestion",
		Long: `Ask the server to search SEC EDGAR for filings matching the query
(company name or ticker) and ingest the ones not already registered.
Ingestion runs asynchronously on the server; watch its logs or poll
'findocctl registry stats' for progress.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			payload := map[string]any{"query": query}
			if limit > 0 {
				payload["limit"] = limit
			}
			body, err := newAPIClient().post("/api/documents/search_and_store", payload)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(body)
			}
			fmt.Printf("%v\n", body["message"])
			fmt.Printf("Filings found:  %v\n", jsonNumber(body["documentsFound"]))
			fmt.Printf("Filings queued: %v\n", jsonNumber(body["documentsQueued"]))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum filings to fetch (server default when 0)")
	return cmd
}
