package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"multitrack/internal/tracker"

	"github.com/google/go-github/v81/github"
)

func taggedIssue(number int, title, sourceRepo string, updated time.Time) tracker.TaggedIssue {
	return tracker.TaggedIssue{
		Issue: &github.Issue{
			Number:    github.Ptr(number),
			Title:     github.Ptr(title),
			State:     github.Ptr("open"),
			UpdatedAt: &github.Timestamp{Time: updated},
		},
		SourceRepo: sourceRepo,
	}
}

func taggedMilestone(number int, title, state, sourceRepo string) tracker.TaggedMilestone {
	return tracker.TaggedMilestone{
		Milestone: &github.Milestone{
			Number: github.Ptr(number),
			Title:  github.Ptr(title),
			State:  github.Ptr(state),
		},
		SourceRepo: sourceRepo,
	}
}

func TestIssues_Text(t *testing.T) {
	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	issues := []tracker.TaggedIssue{
		taggedIssue(7, "broken build", "org/a", when),
		taggedIssue(2, "flaky test", "org/b", when.Add(-time.Hour)),
	}

	buf := new(bytes.Buffer)
	if err := Issues(buf, "text", issues); err != nil {
		t.Fatalf("Issues: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"#7 broken build", "org/a", "#2 flaky test", "org/b", "2026-08-01T12:00:00Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q.\nOutput:\n%s", want, out)
		}
	}

	// Print order follows input order (already sorted by the orchestrator).
	if strings.Index(out, "#7") > strings.Index(out, "#2") {
		t.Errorf("expected #7 before #2.\nOutput:\n%s", out)
	}
}

func TestIssues_TextEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Issues(buf, "text", nil); err != nil {
		t.Fatalf("Issues: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues matched.") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestIssues_JSONCarriesSourceRepo(t *testing.T) {
	issues := []tracker.TaggedIssue{
		taggedIssue(7, "broken build", "org/a", time.Now()),
	}

	buf := new(bytes.Buffer)
	if err := Issues(buf, "json", issues); err != nil {
		t.Fatalf("Issues: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\nOutput:\n%s", err, buf.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 item, got %d", len(decoded))
	}
	if decoded[0]["source_repo"] != "org/a" {
		t.Fatalf("expected source_repo org/a, got %v", decoded[0]["source_repo"])
	}
}

func TestMilestoneGroups_Text(t *testing.T) {
	groups := tracker.GroupedMilestones{
		"Sprint 2": {taggedMilestone(4, "Sprint 2", "open", "org/b")},
		"Sprint 1": {
			taggedMilestone(3, "Sprint 1", "open", "org/a"),
			taggedMilestone(9, "Sprint 1", "open", "org/b"),
		},
	}

	buf := new(bytes.Buffer)
	if err := MilestoneGroups(buf, "text", groups); err != nil {
		t.Fatalf("MilestoneGroups: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"MILESTONE: Sprint 1", "MILESTONE: Sprint 2", "org/a", "org/b", "#3", "#9"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q.\nOutput:\n%s", want, out)
		}
	}

	// Titles print in lexical order.
	if strings.Index(out, "Sprint 1") > strings.Index(out, "Sprint 2") {
		t.Errorf("expected Sprint 1 before Sprint 2.\nOutput:\n%s", out)
	}
}

func TestMilestones_TextAndEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Milestones(buf, "text", []tracker.TaggedMilestone{
		taggedMilestone(3, "Sprint 1", "closed", "org/a"),
	}); err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"org/a", "#3", "Sprint 1", "closed", "no due date"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q.\nOutput:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Milestones(buf, "text", nil); err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	if !strings.Contains(buf.String(), "No milestones affected.") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if err := Issues(new(bytes.Buffer), "yaml", nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if err := MilestoneGroups(new(bytes.Buffer), "yaml", nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if err := Milestones(new(bytes.Buffer), "yaml", nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
