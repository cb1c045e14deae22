package cli

import (
	"github.com/spf13/cobra"

	"noema/internal/ollama"
)

var (
	embedURL   string
	embedModel string
)

var embedCmd = &cobra.Command{
	Use:   "embed TEXT",
	Short: "Embed a text with Ollama",
	Long:  `Embeds TEXT with a running Ollama instance and prints the vector dimension.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := ollamaClient(cmd, embedURL, embedModel)
		embedding, err := client.Embed(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Embedding: %d dimensions\n", len(embedding))
		return nil
	},
}

func init() {
	embedCmd.Flags().StringVar(&embedURL, "url", ollama.DefaultBaseURL, "Ollama base URL")
	embedCmd.Flags().StringVar(&embedModel, "model", ollama.DefaultModel, "embedding model")
	rootCmd.AddCommand(embedCmd)
}
