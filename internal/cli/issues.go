package cli

import (
	"context"

	"multitrack/internal/output"
	"multitrack/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	issuesLabels   string
	issuesAssignee string
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List issues across all configured repositories",
	Long: `List issues from every configured repository as one merged sequence,
sorted by last update time (most recent first). Each issue carries the
repository it came from.

By default only open issues are listed; use --state to widen the filter.

Authentication:
  Multitrack uses a GitHub access token. It prefers GITHUB_TOKEN, but can also
  reuse GitHub CLI authentication if the gh CLI is installed and logged in.

Examples:
  multitrack issues --repos org/api,org/web
  multitrack issues --repos org/api --state all --labels bug
  multitrack issues --repos org/api,org/web --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		orch, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}

		filters := tracker.Filters{tracker.FilterState: cfg.State}
		if issuesLabels != "" {
			filters[tracker.FilterLabels] = issuesLabels
		}
		if issuesAssignee != "" {
			filters[tracker.FilterAssignee] = issuesAssignee
		}

		issues, err := orch.Issues(ctx, filters)
		if err != nil {
			return err
		}
		return output.Issues(cmd.OutOrStdout(), cfg.Format, issues)
	},
}

func init() {
	rootCmd.AddCommand(issuesCmd)

	issuesCmd.Flags().StringVar(&cfg.State, "state", "open", "Issue state filter: open|closed|all (default: open)")
	issuesCmd.Flags().StringVar(&issuesLabels, "labels", "", "Require all of these labels (comma-separated)")
	issuesCmd.Flags().StringVar(&issuesAssignee, "assignee", "", "Filter by assignee login")
}
