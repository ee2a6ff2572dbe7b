package cmd

import (
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/cli"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a subscription",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Deleting an absent name is a quiet no-op.
	if err := s.Delete(args[0]); err != nil {
		return err
	}

	fmt.Println(cli.OK(fmt.Sprintf("  Removed %q.", args[0])))
	return nil
}
