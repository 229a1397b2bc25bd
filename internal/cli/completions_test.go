package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteStoreBackends(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"file", "memory", "postgres"}},
		{"p", []string{"postgres"}},
		{"f", []string{"file"}},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, directive := completeStoreBackends(nil, nil, tt.prefix)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}

func TestCompleteExportFormats(t *testing.T) {
	got, _ := completeExportFormats(nil, nil, "y")
	assert.Equal(t, []string{"yaml"}, got)
}
