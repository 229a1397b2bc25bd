package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/internal/config"
)

// completeStoreBackends provides shell completion for --store values.
func completeStoreBackends(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(config.Backends, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeExportFormats provides shell completion for --format values.
func completeExportFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(exportFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func matchPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}
