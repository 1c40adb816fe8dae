package tracker

// Filters is a set of issue list filters keyed by filter name.
type Filters map[string]string

// Filter names understood by the GitHub-backed client. The org/repo keys are
// stamped per branch by the orchestrator; callers never set them.
const (
	FilterState    = "state"
	FilterLabels   = "labels"
	FilterAssignee = "assignee"

	filterOrg  = "org"
	filterRepo = "repo"
)

// mergeFilters merges the default filter set under the caller's overrides.
// Caller values win. The result is a fresh map; neither input is modified.
func mergeFilters(overrides Filters) Filters {
	merged := Filters{
		FilterState: "open",
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// forRepo returns an independent copy of f annotated with the target repo's
// owner and name. Every fan-out branch gets its own copy so concurrent
// branches never observe each other's in-flight values.
func (f Filters) forRepo(repo Repo) Filters {
	out := make(Filters, len(f)+2)
	for k, v := range f {
		out[k] = v
	}
	out[filterOrg] = repo.Owner
	out[filterRepo] = repo.Name
	return out
}
