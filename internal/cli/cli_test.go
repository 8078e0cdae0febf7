package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chromatic/internal/cli/styles"
	"github.com/thenoetrevino/chromatic/internal/config"
	"github.com/thenoetrevino/chromatic/internal/config/colors"
)

// ============================================================================
// OutputFormatter
// ============================================================================

func TestOutputFormatter_Success(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]string{"background": "#0c0c0c"},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				assert.Equal(t, "#0c0c0c", dataMap["background"])
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.Equal(t, "simple string", result["data"])
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]interface{}) {
				assert.Nil(t, result["data"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			f := &OutputFormatter{JSON: true, Out: &out}

			require.NoError(t, f.Success(tt.data))

			var result map[string]interface{}
			require.NoError(t, json.Unmarshal(out.Bytes(), &result))
			assert.Equal(t, true, result["success"])
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out, Err: &errOut}

	require.NoError(t, f.ErrorWithSuggestion("INITIALIZATION_ERROR", "cli not initialized", "run via chromatic"))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])

	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "INITIALIZATION_ERROR", errData["code"])
	assert.Equal(t, "cli not initialized", errData["message"])
	assert.Equal(t, "run via chromatic", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_JSONWithoutSuggestion(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out}

	require.NoError(t, f.Error("CODE", "message"))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	errData := result["error"].(map[string]interface{})
	assert.NotContains(t, errData, "suggestion")
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	styles.Init(colors.New(), true)

	var out, errOut bytes.Buffer
	f := &OutputFormatter{Out: &out, Err: &errOut}

	require.NoError(t, f.ErrorWithSuggestion("CODE", "went wrong", "try again"))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: went wrong\nSuggestion: try again\n", errOut.String())
}

func TestOutputFormatter_Error_HumanStyled(t *testing.T) {
	styles.Init(colors.New(), false)
	t.Cleanup(func() { styles.Init(colors.New(), true) })

	var errOut bytes.Buffer
	f := &OutputFormatter{Out: &bytes.Buffer{}, Err: &errOut}

	require.NoError(t, f.Error("CODE", "went wrong"))
	assert.Contains(t, errOut.String(), "Error: went wrong")
	assert.Equal(t, styles.ErrorStyle.Render("Error: went wrong")+"\n", errOut.String())
}

func TestOutputFormatter_Println(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Out: &out}

	f.Println("background=#0c0c0c")
	assert.Equal(t, "background=#0c0c0c\n", out.String())
}

// ============================================================================
// Exit codes
// ============================================================================

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", base, ExitError},
		{"coded", WithExitCode(ExitUsage, base), ExitUsage},
		{"wrapped coded", fmt.Errorf("outer: %w", WithExitCode(ExitDataErr, base)), ExitDataErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, WithExitCode(ExitUsage, nil))

	base := errors.New("boom")
	err := WithExitCode(ExitNotFound, base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
}

func TestErrorCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, "USAGE_ERROR", ErrorCode(WithExitCode(ExitUsage, base)))
	assert.Equal(t, "NOT_FOUND", ErrorCode(WithExitCode(ExitNotFound, base)))
	assert.Equal(t, "DATA_ERROR", ErrorCode(WithExitCode(ExitDataErr, base)))
	assert.Equal(t, "ERROR", ErrorCode(base))
}

func TestMarkReported(t *testing.T) {
	assert.NoError(t, MarkReported(nil))

	base := WithExitCode(ExitUsage, errors.New("boom"))
	assert.False(t, IsReported(base))

	err := MarkReported(base)
	assert.True(t, IsReported(err))
	assert.True(t, IsReported(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Equal(t, "boom", err.Error())
}

func TestNoArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "show"}

	assert.NoError(t, NoArgs(cmd, nil))

	err := NoArgs(cmd, []string{"extra"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

// ============================================================================
// Context
// ============================================================================

func TestGetCLIFromContext(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "info"}}
	c := NewCLI(cfg, zerolog.Nop(), nil)

	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, config.DefaultColorScheme(), got.Scheme)
}

type countingCloser struct {
	calls int
}

func (c *countingCloser) Close() error {
	c.calls++
	return nil
}

func TestCLIClose(t *testing.T) {
	closer := &countingCloser{}
	c := NewCLI(&config.Config{}, zerolog.Nop(), closer)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, closer.calls)

	assert.NoError(t, NewCLI(&config.Config{}, zerolog.Nop(), nil).Close())
}

func TestGetCLIFromContext_Missing(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoCLI)
}
