package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-reminder/internal/task"
)

var (
	listFilter string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks grouped by due date",
	Long: `List tasks in the order the API returns them, grouped into Overdue,
Due Today, Upcoming, No Due Date and Completed.

Examples:
  taskctl list
  taskctl list --filter active --search milk`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}

		output, err := TaskUC.List(cmd.Context(), task.ListInput{
			Filter: task.Filter(listFilter),
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if output.Total == 0 {
			fmt.Fprintln(out, "No tasks.")
			return nil
		}

		start := DateMath.StartOfDay(now())
		sections := task.Sections(output.Tasks, start, DateMath.EndOfDay(start))
		fmt.Fprint(out, renderSections(sections, DateMath.Location()))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "all, active or completed")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only tasks whose title or notes contain this text")
	rootCmd.AddCommand(listCmd)
}
