package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"noema/internal/config"
)

var setRootCmd = &cobra.Command{
	Use:   "set-root PATH",
	Short: "Set the notes root directory (persisted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetNotesRoot(args[0]); err != nil {
			return fmt.Errorf("failed to set notes root: %w", err)
		}
		cmd.Printf("Notes root set to %s\n", config.NotesRoot())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setRootCmd)
}
