package root_test

import (
	"testing"

	"fjacquet/statement-risk/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "statement-risk", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "OCR'd bank statements")
	assert.Contains(t, root.Cmd.Long, "pipe tables")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestInit_Flags(t *testing.T) {
	root.Init()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"format", "f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCommand_Run(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, []string{})
	})
}

func TestRootCommand_PersistentPostRunWithoutContainer(t *testing.T) {
	assert.Nil(t, root.GetContainer())
	assert.NotPanics(t, func() {
		root.Cmd.PersistentPostRun(&cobra.Command{}, []string{})
	})
}

func TestReportFormat(t *testing.T) {
	original := root.SharedFlags.Format
	t.Cleanup(func() { root.SharedFlags.Format = original })

	root.SharedFlags.Format = ""
	assert.Equal(t, "json", root.ReportFormat())

	root.SharedFlags.Format = "text"
	assert.Equal(t, "text", root.ReportFormat())
}

func TestGetLogrusAdapter(t *testing.T) {
	assert.NotNil(t, root.GetLogrusAdapter())
}
