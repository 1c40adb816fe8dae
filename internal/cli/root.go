package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"multitrack/internal/config"
	gh "multitrack/internal/github"
	"multitrack/internal/tracker"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "multitrack",
	Short: "Aggregate issues and batch-manage milestones across GitHub repositories",
	Long: `Multitrack treats a fixed set of GitHub repositories as one unit: it fetches
issues and milestones from all of them concurrently, merges the results with
their origin repository attached, and applies milestone mutations (close,
create) to every repository in the set.

Operations are all-or-nothing on the reporting side: the first repository
failure fails the whole command. Mutations already dispatched before a failure
are not rolled back; re-run "milestones list" to see actual remote state.

Examples:
	# Open issues across two repos, most recently updated first
	multitrack issues --repos org/api,org/web

	# Milestones grouped by title
	multitrack milestones list --repos org/api,org/web

	# Close "Sprint 12" everywhere it exists
	multitrack milestones close "Sprint 12" --repos org/api,org/web

	# Create the same milestone in every repo
	multitrack milestones create --title "Sprint 13" --due 2026-09-08 --repos org/api,org/web`,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&cfg.Repos, "repos", nil, "Repositories as OWNER/NAME (repeatable; comma-separated accepted)")
	rootCmd.PersistentFlags().StringVar(&cfg.Format, "format", "text", "Output format: text|json (default: text)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Global timeout per command (default: 2m)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging (prints every GitHub API call)")
}

// newOrchestrator validates the configuration, resolves authentication, and
// builds the orchestrator over the configured repo set.
func newOrchestrator(ctx context.Context) (*tracker.Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	token, _, err := gh.ResolveAuthToken(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve GitHub auth token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("GitHub auth token is required (set GITHUB_TOKEN or run 'gh auth login')")
	}

	client, err := gh.NewClient(ctx, token, gh.WithVerbose(cfg.Verbose, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return tracker.New(tracker.NewGitHubClient(client), cfg.Repos)
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
