// Package dates formats the resume's employment and project periods for
// display. Source dates are ISO-ish strings ("2023-08-01", "2023-08" or
// "2023"); an empty end date means the period is still running.
package dates

import (
	"regexp"
	"strings"
	"time"
)

const Present = "Present"

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FormatDate renders a date string as "Jan 2006". Year-only inputs stay as
// the bare year. Unparseable input is returned unchanged so a typo in the
// data file degrades to odd display instead of a broken page.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, date)
		if err != nil {
			continue
		}
		if layout == "2006" {
			return t.Format("2006")
		}
		return t.Format("Jan 2006")
	}
	return date
}

// FormatDateRange renders "Aug 2023 - Present" style ranges. An empty end
// date means the role or project is ongoing.
func FormatDateRange(start, end string) string {
	endDate := Present
	if strings.TrimSpace(end) != "" {
		endDate = FormatDate(end)
	}
	return FormatDate(start) + " - " + endDate
}

var (
	nonWordRegex   = regexp.MustCompile(`[^\w\s-]`)
	separatorRegex = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts a project name into a URL path segment.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonWordRegex.ReplaceAllString(s, "")
	s = separatorRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
