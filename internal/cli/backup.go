package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"task-reminder/internal/task"
)

var (
	exportFormat string
	exportOutput string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every task to a backup file",
	Long: `Export all tasks as JSON (default), YAML or TOML.

Without --output the file is named tasks-backup-YYYY-MM-DD.<ext> in the
current directory. Use --output - to print to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}

		output, err := TaskUC.Export(cmd.Context(), task.ExportInput{Format: exportFormat})
		if err != nil {
			return fmt.Errorf("exporting tasks: %w", err)
		}

		if exportOutput == "-" {
			_, err := cmd.OutOrStdout().Write(output.Data)
			return err
		}

		path := exportOutput
		if path == "" {
			path = output.Filename
		}
		if err := os.WriteFile(path, output.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", output.Count, path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all tasks with the contents of a backup file",
	Long: `Import a backup written by export. Every existing task is replaced.

The format is taken from --format, or else from the file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTaskUC(); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		format := importFormat
		if format == "" {
			format = strings.TrimPrefix(filepath.Ext(args[0]), ".")
		}

		output, err := TaskUC.Import(cmd.Context(), task.ImportInput{Data: data, Format: format})
		if err != nil {
			return fmt.Errorf("importing tasks: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)\n", output.Count)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json, yaml or toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, or - for stdout")
	importCmd.Flags().StringVar(&importFormat, "format", "", "json, yaml or toml (default: from file extension)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
