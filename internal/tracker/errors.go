package tracker

import "fmt"

// RepoError attributes a remote failure to the repository that produced it.
type RepoError struct {
	Repo Repo
	Err  error
}

func (e *RepoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Repo.Slug(), e.Err)
}

func (e *RepoError) Unwrap() error {
	return e.Err
}
