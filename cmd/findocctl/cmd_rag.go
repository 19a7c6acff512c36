package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/findocgpt/findocgpt/pkg/config"
	"github.com/findocgpt/findocgpt/pkg/rag"
	"github.com/findocgpt/findocgpt/pkg/registry"
)

func ragCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rag",
		Short: "Maintain the RAG store",
		Long: `Maintenance operations on the cognee RAG store and its local state
directories. Run these on the host that owns the state, with the
server stopped. prune clears indexed data only; reset additionally
wipes the state directories and the document registry.`,
	}
	cmd.AddCommand(ragPruneCmd(), ragResetCmd())
	return cmd
}

func openGateway() *rag.Gateway {
	cfg := config.Load()
	reg := registry.New(cfg.RegistryPath)
	return rag.NewGateway(rag.NewCogneeClient(cfg.CogneeBaseURL), reg, cfg.CogneeDataRoot, cfg.CogneeSystemRoot)
}

func ragPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Clear the RAG store's indexed data, keeping the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openGateway().Prune(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("RAG store pruned. Registered documents are unchanged.")
			return nil
		},
	}
}

func ragResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the RAG store, state directories, and document registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm("This deletes all indexed data and registered documents. Continue? [y/N] ") {
				fmt.Println("Aborted.")
				return nil
			}
			if err := openGateway().ResetAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("RAG store and registry reset.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
