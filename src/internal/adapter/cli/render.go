package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// renderSuccess prints the envelope message followed by the response data
// as indented JSON, so subcommand output stays script friendly.
func renderSuccess(cmd *cobra.Command, message string, data any) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, message)
	if data == nil {
		return nil
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Fprintln(out, string(raw))
	return nil
}

// responseError folds an error envelope into a single error for cobra to
// report with a non-zero exit.
func responseError(message, details string) error {
	if details != "" {
		return fmt.Errorf("%s: %s", message, details)
	}
	return errors.New(message)
}
