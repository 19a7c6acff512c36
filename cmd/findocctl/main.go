// findocctl is the operator CLI for a running FinDocGPT server. Job and
// document commands talk to the HTTP API; registry and RAG maintenance
// commands operate on the local state directories directly.
//
// Exit codes: 0 success, 1 error (bad configuration, unreachable server,
// rejected request), 2 partial success (some of a batch failed).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errPartialSuccess marks a command that completed only part of its work.
// Commands print the per-item details themselves before returning it.
var errPartialSuccess = errors.New("some operations failed")

func main() {
	// Maintenance commands read the same env vars as the server.
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, errPartialSuccess) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	serverURL  string
	jsonOutput bool
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findocctl",
		Short: "Operator CLI for the FinDocGPT analysis server",
		Long: `findocctl manages a running FinDocGPT server and its local state.

Job and document commands call the server's HTTP API (--server).
Registry and RAG commands operate directly on the on-disk state and
must run on the host that owns it, with the server stopped for
destructive operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Base URL of the FinDocGPT server")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	cmd.AddCommand(jobsCmd(), registryCmd(), ragCmd(), ingestCmd())
	return cmd
}
