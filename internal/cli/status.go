package cli

import (
	"github.com/spf13/cobra"

	"noema/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend status",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Noema backend")
		if root := config.NotesRoot(); root != "" {
			cmd.Printf("  notes root: %s\n", root)
		} else {
			cmd.Println("  notes root: (not set)")
		}
	},
}

var dataDirCmd = &cobra.Command{
	Use:   "data-dir",
	Short: "Show where noema stores its config and app data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DataDir()
		if err != nil {
			return err
		}
		cmd.Println(dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dataDirCmd)
}
