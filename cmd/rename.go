package cmd

import (
	"errors"
	"fmt"

	"github.com/ibskk/subscription-tracker/internal/cli"
	"github.com/ibskk/subscription-tracker/internal/store"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a subscription",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(_ *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Rename(oldName, newName); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			fmt.Printf("  No subscription named %q.\n", oldName)
			return nil
		case errors.Is(err, store.ErrNameTaken):
			return fmt.Errorf("a subscription named %q already exists", newName)
		}
		return err
	}

	fmt.Println(cli.OK(fmt.Sprintf("  Renamed %q to %q.", oldName, newName)))
	return nil
}
