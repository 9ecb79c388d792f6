package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-reminder/internal/task"
)

var addNotes string

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Quick add a task from a sentence",
	Long: `Create a task from a free-form sentence. Priority, day and time are
taken out of the text and the rest becomes the title.

Examples:
  taskctl add "buy milk tomorrow"
  taskctl add low priority tidy garage in 2 weeks --notes "rent a skip"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}
		ctx := cmd.Context()

		output, err := TaskUC.QuickAdd(ctx, task.QuickAddInput{Text: strings.Join(args, " ")})
		if err != nil {
			return fmt.Errorf("adding task: %w", err)
		}

		created := output.Task
		if addNotes != "" {
			notes := addNotes
			created, err = TaskUC.Update(ctx, task.UpdateInput{ID: created.ID, Notes: &notes})
			if err != nil {
				return fmt.Errorf("saving notes: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Task added"))
		fmt.Fprint(out, renderTask(created, DateMath.Location()))
		if output.CalendarLink != "" {
			fmt.Fprintf(out, "%s%s\n", labelStyle.Render("calendar"), output.CalendarLink)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Notes to attach to the task")
	rootCmd.AddCommand(addCmd)
}
