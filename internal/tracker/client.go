package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/google/go-github/v81/github"
)

const defaultPageSize = 100

// Client is the remote issue-tracker surface the orchestrator consumes. The
// production implementation is backed by go-github; tests supply a fake.
// Implementations must be safe for concurrent use: every fan-out branch calls
// through the same handle.
type Client interface {
	ListIssues(ctx context.Context, repo Repo, filters Filters) ([]*github.Issue, error)
	ListMilestones(ctx context.Context, repo Repo) ([]*github.Milestone, error)
	UpdateMilestone(ctx context.Context, repo Repo, change MilestoneChange) (*github.Milestone, error)
	CreateMilestone(ctx context.Context, repo Repo, template MilestoneTemplate) (*github.Milestone, error)
}

// MilestoneChange identifies an existing milestone and the fields to update.
type MilestoneChange struct {
	Number int
	Title  string
	State  string
}

// MilestoneTemplate describes a milestone to create identically in every
// configured repository.
type MilestoneTemplate struct {
	Title       string
	Description string
	DueOn       *time.Time
}

type githubClient struct {
	gh *github.Client
}

// NewGitHubClient wraps an authenticated go-github client in the Client
// interface.
func NewGitHubClient(gh *github.Client) Client {
	return &githubClient{gh: gh}
}

func (c *githubClient) ListIssues(ctx context.Context, repo Repo, filters Filters) ([]*github.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       filters[FilterState],
		ListOptions: github.ListOptions{PerPage: defaultPageSize},
	}
	if v := filters[FilterLabels]; v != "" {
		opts.Labels = strings.Split(v, ",")
	}
	if v := filters[FilterAssignee]; v != "" {
		opts.Assignee = v
	}
	issues, _, err := c.gh.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
	return issues, err
}

func (c *githubClient) ListMilestones(ctx context.Context, repo Repo) ([]*github.Milestone, error) {
	opts := &github.MilestoneListOptions{
		ListOptions: github.ListOptions{PerPage: defaultPageSize},
	}
	milestones, _, err := c.gh.Issues.ListMilestones(ctx, repo.Owner, repo.Name, opts)
	return milestones, err
}

func (c *githubClient) UpdateMilestone(ctx context.Context, repo Repo, change MilestoneChange) (*github.Milestone, error) {
	payload := &github.Milestone{
		Title: github.Ptr(change.Title),
		State: github.Ptr(change.State),
	}
	updated, _, err := c.gh.Issues.EditMilestone(ctx, repo.Owner, repo.Name, change.Number, payload)
	return updated, err
}

func (c *githubClient) CreateMilestone(ctx context.Context, repo Repo, template MilestoneTemplate) (*github.Milestone, error) {
	payload := &github.Milestone{
		Title: github.Ptr(template.Title),
	}
	if template.Description != "" {
		payload.Description = github.Ptr(template.Description)
	}
	if template.DueOn != nil {
		payload.DueOn = &github.Timestamp{Time: *template.DueOn}
	}
	created, _, err := c.gh.Issues.CreateMilestone(ctx, repo.Owner, repo.Name, payload)
	return created, err
}
