package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd assembles gopartsctl. Commands run purely on the paginator and the access
// controller, no server is needed.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gopartsctl",
		Short: "GoParts dashboard tooling",
		Long: `gopartsctl exercises the GoParts dashboard core from the terminal.

Render page selectors, check navigation targets and evaluate a session
token against the dashboard route policy.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("output", "text", "output format: text, json")

	root.AddCommand(newTokensCmd(), newGotoCmd(), newAuthorizeCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func outputJSON(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString("output")
	return format == "json"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
