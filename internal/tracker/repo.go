package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSlug reports a repository slug that is not of the form OWNER/NAME.
var ErrInvalidSlug = errors.New("invalid repository slug")

// Repo identifies one remote repository. Immutable once parsed.
type Repo struct {
	Owner string
	Name  string
}

// Slug returns the canonical "owner/name" form.
func (r Repo) Slug() string {
	return r.Owner + "/" + r.Name
}

// ParseSlug parses a single "owner/name" slug. The slug must contain exactly
// one separator producing two non-empty segments.
func ParseSlug(slug string) (Repo, error) {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("%w: %q (expected owner/name)", ErrInvalidSlug, slug)
	}
	return Repo{Owner: owner, Name: name}, nil
}

// ParseSlugs parses an ordered slug list, preserving order. It fails on the
// first malformed slug.
func ParseSlugs(slugs []string) ([]Repo, error) {
	repos := make([]Repo, 0, len(slugs))
	for _, raw := range slugs {
		repo, err := ParseSlug(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
