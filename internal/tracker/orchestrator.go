package tracker

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/google/go-github/v81/github"
)

// TaggedIssue is an issue annotated with the canonical slug of the repository
// it was fetched from. The tag is set once at aggregation time.
type TaggedIssue struct {
	*github.Issue
	SourceRepo string `json:"source_repo"`
}

// TaggedMilestone is a milestone annotated with its origin repository slug.
type TaggedMilestone struct {
	*github.Milestone
	SourceRepo string `json:"source_repo"`
}

// GroupedMilestones maps an exact milestone title to the milestones carrying
// it, in configured-repo order.
type GroupedMilestones map[string][]TaggedMilestone

// Orchestrator runs issue-tracker operations against a fixed set of
// repositories as a unit: reads are fanned out concurrently and merged into
// one result, batch mutations are dispatched to every repository at once.
// The repo set is fixed at construction.
type Orchestrator struct {
	client Client
	repos  []Repo
}

// New parses the configured slugs and builds an orchestrator over them. The
// slug order is preserved and used as the canonical ordering for merged
// results.
func New(client Client, slugs []string) (*Orchestrator, error) {
	if client == nil {
		return nil, errors.New("tracker: client is nil")
	}
	if len(slugs) == 0 {
		return nil, errors.New("tracker: at least one repository is required")
	}
	repos, err := ParseSlugs(slugs)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{client: client, repos: repos}, nil
}

// Repos returns the configured repository set in canonical order.
func (o *Orchestrator) Repos() []Repo {
	return slices.Clone(o.repos)
}

// Issues fetches issues from every configured repository concurrently, tags
// each with its origin repo, and returns the merged list sorted by update
// time, most recently updated first. The default filter {state: open} is
// merged under the caller's filters; caller values win.
//
// On any per-repo failure the whole call fails with a *RepoError naming the
// offending repository; no issue data from other repositories is returned.
func (o *Orchestrator) Issues(ctx context.Context, filters Filters) ([]TaggedIssue, error) {
	merged := mergeFilters(filters)
	perRepo, err := fanOut(ctx, o.repos, func(ctx context.Context, repo Repo) ([]TaggedIssue, error) {
		issues, err := o.client.ListIssues(ctx, repo, merged.forRepo(repo))
		if err != nil {
			return nil, &RepoError{Repo: repo, Err: err}
		}
		tagged := make([]TaggedIssue, 0, len(issues))
		for _, issue := range issues {
			tagged = append(tagged, TaggedIssue{Issue: issue, SourceRepo: repo.Slug()})
		}
		return tagged, nil
	})
	if err != nil {
		return nil, err
	}

	all := flatten(perRepo)
	// Stable: ties keep repo-encounter order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].GetUpdatedAt().Time.After(all[j].GetUpdatedAt().Time)
	})
	return all, nil
}

// Milestones fetches milestones from every configured repository concurrently
// and groups them by exact title. Within a group, milestones appear in
// configured-repo order.
func (o *Orchestrator) Milestones(ctx context.Context) (GroupedMilestones, error) {
	perRepo, err := fanOut(ctx, o.repos, func(ctx context.Context, repo Repo) ([]TaggedMilestone, error) {
		milestones, err := o.client.ListMilestones(ctx, repo)
		if err != nil {
			return nil, &RepoError{Repo: repo, Err: err}
		}
		tagged := make([]TaggedMilestone, 0, len(milestones))
		for _, m := range milestones {
			tagged = append(tagged, TaggedMilestone{Milestone: m, SourceRepo: repo.Slug()})
		}
		return tagged, nil
	})
	if err != nil {
		return nil, err
	}

	groups := make(GroupedMilestones)
	for _, m := range flatten(perRepo) {
		groups[m.GetTitle()] = append(groups[m.GetTitle()], m)
	}
	return groups, nil
}

// CloseMilestones closes every milestone whose title exactly matches title,
// across all configured repositories. If no milestone matches, it returns an
// empty result without issuing any remote mutation.
//
// Closes are dispatched concurrently with fail-fast semantics; mutations
// already sent before a failure are not rolled back, so callers should re-run
// Milestones to learn the actual remote state before retrying.
func (o *Orchestrator) CloseMilestones(ctx context.Context, title string) ([]TaggedMilestone, error) {
	groups, err := o.Milestones(ctx)
	if err != nil {
		return nil, err
	}
	matched := groups[title]
	if len(matched) == 0 {
		return nil, nil
	}

	return fanOut(ctx, matched, func(ctx context.Context, m TaggedMilestone) (TaggedMilestone, error) {
		// Re-derive the target repo from the tag stamped at aggregation time,
		// inside this branch, so failure attribution can never name another
		// branch's repository.
		repo, err := ParseSlug(m.SourceRepo)
		if err != nil {
			return TaggedMilestone{}, err
		}
		updated, err := o.client.UpdateMilestone(ctx, repo, MilestoneChange{
			Number: m.GetNumber(),
			Title:  m.GetTitle(),
			State:  "closed",
		})
		if err != nil {
			return TaggedMilestone{}, &RepoError{Repo: repo, Err: err}
		}
		return TaggedMilestone{Milestone: updated, SourceRepo: repo.Slug()}, nil
	})
}

// CreateMilestones creates the same milestone in every configured repository
// concurrently. On full success the created milestones are returned in
// configured-repo order; otherwise the first failure is returned, attributed
// to its repository.
func (o *Orchestrator) CreateMilestones(ctx context.Context, template MilestoneTemplate) ([]TaggedMilestone, error) {
	if strings.TrimSpace(template.Title) == "" {
		return nil, errors.New("tracker: milestone title is required")
	}

	return fanOut(ctx, o.repos, func(ctx context.Context, repo Repo) (TaggedMilestone, error) {
		created, err := o.client.CreateMilestone(ctx, repo, template)
		if err != nil {
			return TaggedMilestone{}, &RepoError{Repo: repo, Err: err}
		}
		return TaggedMilestone{Milestone: created, SourceRepo: repo.Slug()}, nil
	})
}
