package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between open and done",
	Long: `Toggle completion of a task. The id may be the short prefix shown by list.

Examples:
  taskctl done 3f2a9c1b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := resolveID(ctx, args[0])
		if err != nil {
			return err
		}
		t, err := TaskUC.ToggleDone(ctx, id)
		if err != nil {
			return fmt.Errorf("toggling task: %w", err)
		}

		state := "reopened"
		if t.Done {
			state = "completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", idStyle.Render(shortID(t.ID)), state, t.Title)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}
		ctx := cmd.Context()

		id, err := resolveID(ctx, args[0])
		if err != nil {
			return err
		}
		if err := TaskUC.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", shortID(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
}
