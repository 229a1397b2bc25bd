package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportFormats are the valid --format values.
var exportFormats = []string{"json", "yaml"}

var exportFlags struct {
	format string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved session",
	Long: `Print the saved session (tree, current path, transcript and history)
exactly as the shell would restore it. Missing or damaged parts appear
in their fresh state.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "json", "Output format: json or yaml")
	_ = exportCmd.RegisterFlagCompletionFunc("format", completeExportFormats)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if !contains(exportFormats, exportFlags.format) {
		return fmt.Errorf("invalid argument %q for --format: want one of %v", exportFlags.format, exportFormats)
	}

	ctx := cmd.Context()
	env, err := openEnvironment(ctx, rootFlags)
	if err != nil {
		return err
	}
	defer env.Close()

	snapshot := env.adapter.Export(ctx)
	out := cmd.OutOrStdout()

	switch exportFlags.format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
