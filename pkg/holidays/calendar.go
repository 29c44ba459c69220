// Package holidays loads the public-holiday table the surcharge classifier
// consults. The table is versioned configuration data, extended yearly by
// editing the JSON file, never by a code change.
package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

type calendarFile struct {
	Version string            `json:"version"`
	Country string            `json:"country"`
	Dates   map[string]string `json:"dates"`
}

// Calendar answers public-holiday lookups for the configured dates.
type Calendar struct {
	version string
	country string
	dates   map[string]string
}

// Load reads and validates a holiday calendar from the given JSON file.
func Load(path string) (*Calendar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading holiday calendar: %w", err)
	}

	var file calendarFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing holiday calendar: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("holiday calendar %s: version is required", path)
	}
	if len(file.Dates) == 0 {
		return nil, fmt.Errorf("holiday calendar %s: no dates configured", path)
	}
	for date := range file.Dates {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("holiday calendar %s: invalid date %q", path, date)
		}
	}

	return &Calendar{
		version: file.Version,
		country: file.Country,
		dates:   file.Dates,
	}, nil
}

// FromDates builds an in-memory calendar, used by tests and callers that
// source the table elsewhere.
func FromDates(version string, dates map[string]string) *Calendar {
	copied := make(map[string]string, len(dates))
	for k, v := range dates {
		copied[k] = v
	}
	return &Calendar{version: version, dates: copied}
}

// IsHoliday reports whether the calendar lists the given day. Dates outside
// the covered years simply return false.
func (c *Calendar) IsHoliday(day time.Time) bool {
	if c == nil {
		return false
	}
	_, ok := c.dates[day.Format(dateLayout)]
	return ok
}

// Name returns the configured holiday name for a date, if any.
func (c *Calendar) Name(day time.Time) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.dates[day.Format(dateLayout)]
	return name, ok
}

// Version returns the calendar's configured version tag.
func (c *Calendar) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Years lists, ascending, the years the calendar covers.
func (c *Calendar) Years() []int {
	if c == nil {
		return nil
	}
	seen := map[int]struct{}{}
	for date := range c.dates {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		seen[parsed.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
