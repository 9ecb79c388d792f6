package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"task-reminder/pkg/gcalendar"
)

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth",
	Short: "Authorize Google Calendar access and save the token",
	Long: `Run once to let the service mirror tasks into Google Calendar.

It prints a consent URL; after signing in, paste the authorization code
back here and the token is written to google_calendar.token_path.
The credentials file must be an OAuth "Desktop app" client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if CalendarCredentialsPath == "" {
			return fmt.Errorf("google_calendar.credentials_path is not configured")
		}
		data, err := os.ReadFile(CalendarCredentialsPath)
		if err != nil {
			return fmt.Errorf("reading credentials %s: %w", CalendarCredentialsPath, err)
		}
		oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render("Step 1: open this URL and sign in"))
		fmt.Fprintln(out, gcalendar.AuthCodeURL(oauthCfg, "taskctl"))
		fmt.Fprintln(out)
		fmt.Fprint(out, headerStyle.Render("Step 2: paste the authorization code")+" ")

		code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && code == "" {
			return fmt.Errorf("reading authorization code: %w", err)
		}
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("authorization code is empty")
		}

		tok, err := gcalendar.ExchangeCode(cmd.Context(), oauthCfg, code)
		if err != nil {
			return err
		}
		if err := gcalendar.SaveToken(CalendarTokenPath, tok); err != nil {
			return err
		}

		path := CalendarTokenPath
		if path == "" {
			path = gcalendar.DefaultTokenPath
		}
		fmt.Fprintf(out, "\nToken saved to %s. Restart the API to enable the calendar mirror.\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarAuthCmd)
}
