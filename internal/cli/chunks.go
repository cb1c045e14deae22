package cli

import (
	"github.com/spf13/cobra"

	"noema/internal/chunker"
	"noema/internal/notes"
)

var chunksMaxChars int

var chunksCmd = &cobra.Command{
	Use:   "chunks [PATH]",
	Short: "Chunk notes for embedding",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		ns, err := notes.Scan(root)
		if err != nil {
			return err
		}

		chunks := chunker.ChunkNotes(ns, chunksMaxChars)
		cmd.Printf("Chunked %d note(s) into %d chunk(s) (max %d chars)\n", len(ns), len(chunks), chunksMaxChars)
		for i, c := range chunks {
			if i >= 10 {
				cmd.Printf("  ... and %d more\n", len(chunks)-10)
				break
			}
			cmd.Printf("  [%d] %s  %s\n", c.Index, c.NotePath, preview(c.Text, 50))
		}
		return nil
	},
}

func init() {
	chunksCmd.Flags().IntVar(&chunksMaxChars, "max-chars", chunker.DefaultMaxChars, "maximum characters per chunk")
	rootCmd.AddCommand(chunksCmd)
}
