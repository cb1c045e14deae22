package cli

import (
	"github.com/spf13/cobra"

	"noema/internal/chunker"
	"noema/internal/indexer"
	"noema/internal/ollama"
)

var (
	searchK        int
	searchMaxChars int
	searchURL      string
	searchModel    string
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY [PATH]",
	Short: "Search notes by meaning",
	Long: `Runs the index pipeline over PATH (or the configured notes root), embeds
QUERY, and prints the chunks most similar to it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		root, err := resolveRoot(args[1:])
		if err != nil {
			return err
		}

		client := ollamaClient(cmd, searchURL, searchModel)
		store, err := indexer.BuildIndex(cmd.Context(), root, client, searchMaxChars)
		if err != nil {
			return err
		}

		queryEmbedding, err := client.Embed(cmd.Context(), query)
		if err != nil {
			return err
		}

		results := store.Search(queryEmbedding, searchK)
		if len(results) == 0 {
			cmd.Println("No results found.")
			return nil
		}
		for i, res := range results {
			cmd.Printf("%d  [%d] %s  %.3f\n    %s\n", i+1, res.Chunk.Index, res.Chunk.NotePath, res.Score, preview(res.Chunk.Text, 80))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchK, "k", "k", 5, "maximum number of results")
	searchCmd.Flags().IntVar(&searchMaxChars, "max-chars", chunker.DefaultMaxChars, "maximum characters per chunk")
	searchCmd.Flags().StringVar(&searchURL, "url", ollama.DefaultBaseURL, "Ollama base URL")
	searchCmd.Flags().StringVar(&searchModel, "model", ollama.DefaultModel, "embedding model")
	rootCmd.AddCommand(searchCmd)
}
