package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"noema/internal/notes"
)

var scanCmd = &cobra.Command{
	Use:   "scan [PATH]",
	Short: "Scan a directory for markdown notes",
	Long:  `Scans PATH (or the configured notes root) for markdown notes and lists them.`,
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

		cmd.Printf("Scanned %d note(s) under %s\n", len(ns), root)
		for _, n := range ns {
			firstLine, _, _ := strings.Cut(n.Body, "\n")
			cmd.Printf("  %s  %s\n", n.Path, preview(strings.TrimSpace(firstLine), 60))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
