package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/findocgpt/findocgpt/pkg/config"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

func registryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the local document registry",
		Long: `Read the document registry file directly from disk. These commands
use REGISTRY_PATH (or the default under the cognee data root) and do
not require a running server.`,
	}
	cmd.AddCommand(registryListCmd(), registryShowCmd(), registryStatsCmd())
	return cmd
}

func openRegistry() *registry.Registry {
	return registry.New(config.Load().RegistryPath)
}

func registryListCmd() *cobra.Command {
	var company string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := openRegistry().ListEntries(company)
			if jsonOutput {
				return printJSON(entries)
			}
			if len(entries) == 0 {
				fmt.Println("No documents registered.")
				return nil
			}
			fmt.Printf("%-16s %-8s %-12s %-9s %s\n", "FINGERPRINT", "FORM", "FILED", "SUMMARY", "COMPANY")
			for _, e := range entries {
				hasSummary := "no"
				if e.Summary != nil {
					hasSummary = "yes"
				}
				fmt.Printf("%-16s %-8s %-12s %-9s %s\n",
					truncate(e.Fingerprint, 16),
					e.Metadata.FormType,
					e.Metadata.FilingDate,
					hasSummary,
					e.Metadata.CompanyName)
			}
			fmt.Printf("Total: %d documents\n", len(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "Filter by company name substring")
	return cmd
}

func registryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <fingerprint>",
		Short: "Show one registered document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := openRegistry().Get(args[0])
			if !ok {
				return fmt.Errorf("document %q not found in registry", args[0])
			}
			if jsonOutput {
				return printJSON(entry)
			}
			fmt.Printf("Fingerprint:    %s\n", entry.Fingerprint)
			fmt.Printf("Company:        %s\n", entry.Metadata.CompanyName)
			fmt.Printf("Form type:      %s\n", entry.Metadata.FormType)
			fmt.Printf("Filing date:    %s\n", entry.Metadata.FilingDate)
			fmt.Printf("Accession:      %s\n", entry.Metadata.AccessionNumber)
			fmt.Printf("Content length: %d\n", entry.ContentLength)
			fmt.Printf("Stored at:      %s\n", entry.StoredAt.Format("2006-01-02 15:04:05"))
			if entry.Summary != nil {
				fmt.Printf("\nExecutive summary:\n%s\n", entry.Summary.ExecutiveSummary)
			} else {
				fmt.Println("\nNo summary attached.")
			}
			return nil
		},
	}
}

func registryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print registry statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := openRegistry().Stats()
			if jsonOutput {
				return printJSON(stats)
			}
			fmt.Printf("Documents:      %d\n", stats.TotalDocuments)
			fmt.Printf("With summaries: %d\n", stats.WithSummaries)
			fmt.Printf("Content bytes:  %d\n", stats.TotalContentBytes)
			fmt.Printf("Companies:      %d\n", len(stats.Companies))
			for _, c := range stats.Companies {
				fmt.Printf("  - %s\n", c)
			}
			forms := make([]string, 0, len(stats.FormTypes))
			for f := range stats.FormTypes {
				forms = append(forms, f)
			}
			sort.Strings(forms)
			fmt.Println("Form types:")
			for _, f := range forms {
				fmt.Printf("  %-8s %d\n", f, stats.FormTypes[f])
			}
			return nil
		},
	}
}
