package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	chromaticcli "github.com/thenoetrevino/chromatic/internal/cli"
)

// ExecuteCLICommand executes a CLI command with cliInstance injected into its
// context and returns what it wrote to stdout and stderr.
// A nil cliInstance runs the command without a CLI context.
func ExecuteCLICommand(t *testing.T, cliInstance *chromaticcli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	return ExecuteCLICommandWithContext(t, context.Background(), cliInstance, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, cliInstance *chromaticcli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if cliInstance != nil {
		ctx = chromaticcli.WithCLI(ctx, cliInstance)
	}

	SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
