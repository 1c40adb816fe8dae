package tracker

import "testing"

func TestMergeFilters_DefaultStateOpen(t *testing.T) {
	merged := mergeFilters(nil)
	if merged[FilterState] != "open" {
		t.Fatalf("expected default state open, got %q", merged[FilterState])
	}
}

func TestMergeFilters_CallerWins(t *testing.T) {
	caller := Filters{FilterState: "closed", FilterLabels: "bug"}
	merged := mergeFilters(caller)
	if merged[FilterState] != "closed" {
		t.Fatalf("caller state should win, got %q", merged[FilterState])
	}
	if merged[FilterLabels] != "bug" {
		t.Fatalf("expected labels carried over, got %q", merged[FilterLabels])
	}
	// The caller's map must not have been touched.
	if len(caller) != 2 {
		t.Fatalf("caller filters mutated: %v", caller)
	}
}

func TestForRepo_AnnotatesAndCopies(t *testing.T) {
	base := mergeFilters(nil)

	a := base.forRepo(Repo{Owner: "org", Name: "a"})
	b := base.forRepo(Repo{Owner: "org", Name: "b"})

	if a[filterOrg] != "org" || a[filterRepo] != "a" {
		t.Fatalf("unexpected annotation on a: %v", a)
	}
	if b[filterRepo] != "b" {
		t.Fatalf("unexpected annotation on b: %v", b)
	}

	// Copies are independent: mutating one branch's filters must not leak
	// into the other branch or the base set.
	a[filterRepo] = "mutated"
	a[FilterState] = "closed"
	if b[filterRepo] != "b" {
		t.Fatalf("mutation of a leaked into b: %v", b)
	}
	if base[FilterState] != "open" {
		t.Fatalf("mutation of a leaked into base: %v", base)
	}
	if _, ok := base[filterRepo]; ok {
		t.Fatalf("annotation leaked into base: %v", base)
	}
}
