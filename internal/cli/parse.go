package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text...>",
	Short: "Show how a quick-add sentence is understood",
	Long: `Run the quick-add parser on a sentence without storing anything.

Examples:
  taskctl parse "remind me to pay rent in 3 days"
  taskctl parse high priority deploy friday at 14:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if DateMath == nil {
			return fmt.Errorf("parser not initialized")
		}

		res := DateMath.Parse(strings.Join(args, " "), now())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("title"), res.Title)
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("due"), renderDue(res.DueDate, DateMath.Location()))
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("priority"), renderPriority(res.Priority))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
