package cli

import (
	"github.com/spf13/cobra"

	"noema/internal/chunker"
	"noema/internal/indexer"
	"noema/internal/ollama"
)

var (
	indexMaxChars int
	indexURL      string
	indexModel    string
)

var indexCmd = &cobra.Command{
	Use:   "index [PATH]",
	Short: "Index notes: scan, chunk, embed, store in memory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		client := ollamaClient(cmd, indexURL, indexModel)
		store, err := indexer.BuildIndex(cmd.Context(), root, client, indexMaxChars)
		if err != nil {
			return err
		}

		cmd.Printf("Indexed %d chunk(s) (in memory, no persistence)\n", store.Len())
		return nil
	},
}

func init() {
	indexCmd.Flags().IntVar(&indexMaxChars, "max-chars", chunker.DefaultMaxChars, "maximum characters per chunk")
	indexCmd.Flags().StringVar(&indexURL, "url", ollama.DefaultBaseURL, "Ollama base URL")
	indexCmd.Flags().StringVar(&indexModel, "model", ollama.DefaultModel, "embedding model")
	rootCmd.AddCommand(indexCmd)
}
