package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/chromatic/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful result wrapped in the JSON envelope.
// Human and quiet rendering is left to the caller.
func (f *OutputFormatter) Success(data interface{}) error {
	return json.NewEncoder(f.out()).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintln(f.errOut(), styles.ErrorStyle.Render("Error: "+message))
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Println writes a line of human-readable output
func (f *OutputFormatter) Println(a ...interface{}) {
	fmt.Fprintln(f.out(), a...)
}
