package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"multitrack/internal/output"
	"multitrack/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	createTitle       string
	createDue         string
	createDescription string
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "List and batch-manage milestones",
	Long: `Work with milestones across every configured repository at once.

"list" merges milestones from all repositories and groups them by exact title,
so a milestone that exists under the same name in several repositories shows
up as one group. "close" and "create" apply one mutation to every repository
in the set.

Examples:
  multitrack milestones list --repos org/api,org/web
  multitrack milestones close "Sprint 12" --repos org/api,org/web
  multitrack milestones create --title "Sprint 13" --due 2026-09-08 --repos org/api,org/web`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var milestonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List milestones grouped by title",
	Long: `List milestones from every configured repository, grouped by exact title.

Grouping is case-sensitive: "Sprint 1" and "sprint 1" are different groups.
Within a group, milestones appear in configured-repo order.

Examples:
  multitrack milestones list --repos org/api,org/web`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		orch, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}

		groups, err := orch.Milestones(ctx)
		if err != nil {
			return err
		}
		return output.MilestoneGroups(cmd.OutOrStdout(), cfg.Format, groups)
	},
}

var milestonesCloseCmd = &cobra.Command{
	Use:   "close <title>",
	Short: "Close every milestone matching a title",
	Long: `Close every milestone whose title exactly matches the given title, in every
configured repository that has one. If no repository has a matching milestone,
nothing is closed and the command succeeds with an empty result.

Closes are dispatched concurrently; on failure, milestones already closed stay
closed. Run "milestones list" to see actual remote state before retrying.

Examples:
  multitrack milestones close "Sprint 12" --repos org/api,org/web`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		orch, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}

		closed, err := orch.CloseMilestones(ctx, args[0])
		if err != nil {
			return err
		}
		return output.Milestones(cmd.OutOrStdout(), cfg.Format, closed)
	},
}

var milestonesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the same milestone in every configured repository",
	Long: `Create one milestone with identical title, due date, and description in every
configured repository. On success the created milestones are reported in
configured-repo order.

Examples:
  multitrack milestones create --title "Sprint 13" --due 2026-09-08 --repos org/api,org/web`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := buildMilestoneTemplate(createTitle, createDue, createDescription)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		orch, err := newOrchestrator(ctx)
		if err != nil {
			return err
		}

		created, err := orch.CreateMilestones(ctx, template)
		if err != nil {
			return err
		}
		return output.Milestones(cmd.OutOrStdout(), cfg.Format, created)
	},
}

func buildMilestoneTemplate(title, due, description string) (tracker.MilestoneTemplate, error) {
	template := tracker.MilestoneTemplate{
		Title:       strings.TrimSpace(title),
		Description: description,
	}
	if template.Title == "" {
		return tracker.MilestoneTemplate{}, fmt.Errorf("--title is required")
	}
	if due != "" {
		parsed, err := time.Parse("2006-01-02", due)
		if err != nil {
			return tracker.MilestoneTemplate{}, fmt.Errorf("invalid --due value %q: expected YYYY-MM-DD", due)
		}
		template.DueOn = &parsed
	}
	return template, nil
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
	milestonesCmd.AddCommand(milestonesListCmd)
	milestonesCmd.AddCommand(milestonesCloseCmd)
	milestonesCmd.AddCommand(milestonesCreateCmd)

	milestonesCreateCmd.Flags().StringVar(&createTitle, "title", "", "Milestone title (required)")
	milestonesCreateCmd.Flags().StringVar(&createDue, "due", "", "Due date as YYYY-MM-DD")
	milestonesCreateCmd.Flags().StringVar(&createDescription, "description", "", "Milestone description")
}
