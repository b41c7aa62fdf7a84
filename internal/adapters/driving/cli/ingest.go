package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [corpus.csv]",
	Short: "Build the course index from a corpus file",
	Long: `Loads a course corpus CSV, rebuilds the search index from scratch,
and stores one searchable document per course. Any previously indexed
courses are discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	corpusPath := args[0]
	cmd.Printf("Building course index from %s...\n", corpusPath)

	count, err := ingestService.BuildIndex(context.Background(), corpusPath)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Indexed %d courses.\n", count)
	return nil
}
