// Package catalog parses semi-structured movie source rows into records ready
// for the movies repository. The parsers are pure functions; any parse miss
// yields an empty or absent value, never an error, so one malformed row cannot
// abort a whole catalog load.
package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// SourceRow mirrors the fields supplied by the external catalog loader.
type SourceRow struct {
	Title       string `json:"title"`
	Certificate string `json:"certificate"`
	Duration    string `json:"duration"`
	Genre       string `json:"genre"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
	Cast        string `json:"cast"`
	Info        string `json:"info"`
}

var (
	rankPrefixRe = regexp.MustCompile(`^\d+\.\s*`)
	yearRe       = regexp.MustCompile(`\((\d{4})\)`)
	votesRe      = regexp.MustCompile(`Votes: ([\d,]+)`)
	grossRe      = regexp.MustCompile(`Gross: \$([\d.]+)M`)
)

const starsSeparator = " | Stars: "

// ParseTitle strips the leading "N. " ranking prefix and the trailing "(YYYY)"
// year suffix from a raw title.
func ParseTitle(raw string) string {
	title := rankPrefixRe.ReplaceAllString(raw, "")
	title = yearRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// ParseYear extracts the 4-digit year from the title's parenthetical, or nil
// when none is present.
func ParseYear(raw string) *int {
	match := yearRe.FindStringSubmatch(raw)
	if match == nil {
		return nil
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &year
}

// ParseRate parses the numeric external rating, or nil when unparseable.
func ParseRate(raw string) *float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &rate
}

// SplitCredits splits a combined "Director: X | Stars: Y" field. Either part
// may come back empty.
func SplitCredits(raw string) (director, stars string) {
	parts := strings.SplitN(raw, starsSeparator, 2)
	director = strings.TrimSpace(strings.Replace(parts[0], "Director: ", "", 1))
	if len(parts) > 1 {
		stars = strings.TrimSpace(parts[1])
	}
	return director, stars
}

// ParseVotes extracts the vote count following "Votes: ", commas stripped.
// Returns 0 on a parse miss.
func ParseVotes(info string) int64 {
	match := votesRe.FindStringSubmatch(info)
	if match == nil {
		return 0
	}
	votes, err := strconv.ParseInt(strings.ReplaceAll(match[1], ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return votes
}

// ParseGross extracts the gross revenue following "Gross: " as the
// numeric-plus-"M" token, e.g. "28.34M". Returns "" on a parse miss.
func ParseGross(info string) string {
	match := grossRe.FindStringSubmatch(info)
	if match == nil {
		return ""
	}
	return match[1] + "M"
}
