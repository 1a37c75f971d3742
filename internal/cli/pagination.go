package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goparts/internal/pagination"
)

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Int("total", 0, "total number of items")
	cmd.Flags().Int("page-size", 10, "items per page")
	cmd.Flags().Int("page", 1, "current page")
	cmd.Flags().Int("span", pagination.MaxNeighborSpan, "neighbor pages on each side of the current page (0-2)")
}

func windowFromFlags(cmd *cobra.Command) (pagination.Window, error) {
	total, _ := cmd.Flags().GetInt("total")
	size, _ := cmd.Flags().GetInt("page-size")
	page, _ := cmd.Flags().GetInt("page")
	span, _ := cmd.Flags().GetInt("span")
	if size <= 0 {
		return pagination.Window{}, fmt.Errorf("--page-size must be positive, got %d", size)
	}
	return pagination.NewWindow(page, total, size, span), nil
}

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Render the page selector for a window",
		Example: `  gopartsctl tokens --total 1000 --page-size 10 --page 10
  gopartsctl tokens --total 45 --page-size 20 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := windowFromFlags(cmd)
			if err != nil {
				return err
			}
			tokens := pagination.ComputePageTokens(w)
			if outputJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"total_pages": w.TotalPages(),
					"tokens":      tokens,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTokens(tokens, w.CurrentPage))
			return nil
		},
	}
	addWindowFlags(cmd)
	return cmd
}

func newGotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goto",
		Short: "Resolve a navigation request to the page it lands on",
		Example: `  gopartsctl goto --total 1000 --requested 5000
  gopartsctl goto --total 1000 --page 10 --move right`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := windowFromFlags(cmd)
			if err != nil {
				return err
			}

			var landed int
			nav := pagination.Navigator{Window: w, OnPageChanged: func(p int) { landed = p }}
			move, _ := cmd.Flags().GetString("move")
			switch strings.ToLower(move) {
			case "":
				requested, _ := cmd.Flags().GetInt("requested")
				nav.GoTo(requested)
			case "left":
				nav.Left()
			case "right":
				nav.Right()
			default:
				return fmt.Errorf("--move must be left or right, got %q", move)
			}

			if outputJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"page": landed, "total_pages": w.TotalPages()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), landed)
			return nil
		},
	}
	addWindowFlags(cmd)
	cmd.Flags().Int("requested", 1, "requested page number")
	cmd.Flags().String("move", "", "jump left or right by one block instead of --requested")
	return cmd
}

// renderTokens prints "1 << 8 9 [10] 11 12 >> 100".
func renderTokens(tokens []pagination.Token, current int) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch {
		case t.Kind == pagination.KindJumpBack:
			parts = append(parts, "<<")
		case t.Kind == pagination.KindJumpForward:
			parts = append(parts, ">>")
		case t.Page == current:
			parts = append(parts, "["+strconv.Itoa(t.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(t.Page))
		}
	}
	return strings.Join(parts, " ")
}
