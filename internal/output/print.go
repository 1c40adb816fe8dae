package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"multitrack/internal/tracker"

	"github.com/fatih/color"
)

// Issues writes an aggregated issue list in the requested format.
// Issues arrive already sorted (most recently updated first); printing
// preserves that order.
func Issues(w io.Writer, format string, issues []tracker.TaggedIssue) error {
	switch format {
	case "json":
		return writeJSON(w, issues)
	case "text":
		if len(issues) == 0 {
			_, err := fmt.Fprintln(w, "No issues matched.")
			return err
		}
		bold := color.New(color.Bold)
		for _, issue := range issues {
			if _, err := bold.Fprintf(w, "#%d %s\n", issue.GetNumber(), issue.GetTitle()); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "    %s  %s  updated %s\n",
				issue.SourceRepo, issue.GetState(), issue.GetUpdatedAt().Format(time.RFC3339)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// MilestoneGroups writes milestones grouped by title. Titles are printed in
// lexical order so output is deterministic; entries within a group keep
// configured-repo order.
func MilestoneGroups(w io.Writer, format string, groups tracker.GroupedMilestones) error {
	switch format {
	case "json":
		return writeJSON(w, groups)
	case "text":
		if len(groups) == 0 {
			_, err := fmt.Fprintln(w, "No milestones found.")
			return err
		}
		titles := make([]string, 0, len(groups))
		for title := range groups {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		bold := color.New(color.Bold)
		for _, title := range titles {
			if _, err := fmt.Fprintln(w, "----------------------------------------"); err != nil {
				return err
			}
			if _, err := bold.Fprintf(w, "MILESTONE: %s\n", title); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, "----------------------------------------"); err != nil {
				return err
			}
			for _, m := range groups[title] {
				if err := printMilestoneLine(w, m); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Milestones writes a flat milestone list (close/create results) in
// configured-repo order.
func Milestones(w io.Writer, format string, milestones []tracker.TaggedMilestone) error {
	switch format {
	case "json":
		return writeJSON(w, milestones)
	case "text":
		if len(milestones) == 0 {
			_, err := fmt.Fprintln(w, "No milestones affected.")
			return err
		}
		for _, m := range milestones {
			if err := printMilestoneLine(w, m); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func printMilestoneLine(w io.Writer, m tracker.TaggedMilestone) error {
	due := "no due date"
	if m.DueOn != nil {
		due = "due " + m.GetDueOn().Format("2006-01-02")
	}
	_, err := fmt.Fprintf(w, "  %s  #%d  %s  %s  %s\n",
		m.SourceRepo, m.GetNumber(), m.GetTitle(), m.GetState(), due)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
