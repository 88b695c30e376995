package catalog

import "testing"

func TestParseTitleAndYear(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantYear  int
		noYear    bool
	}{
		{"ranked with year", "1. The Shawshank Redemption (1994)", "The Shawshank Redemption", 1994, false},
		{"double digit rank", "42. 12 Angry Men (1957)", "12 Angry Men", 1957, false},
		{"no rank", "The Godfather (1972)", "The Godfather", 1972, false},
		{"no year", "3. Some Unreleased Film", "Some Unreleased Film", 0, true},
		{"empty", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTitle(tt.raw); got != tt.wantTitle {
				t.Fatalf("ParseTitle(%q) = %q, want %q", tt.raw, got, tt.wantTitle)
			}
			year := ParseYear(tt.raw)
			if tt.noYear {
				if year != nil {
					t.Fatalf("ParseYear(%q) = %d, want nil", tt.raw, *year)
				}
				return
			}
			if year == nil || *year != tt.wantYear {
				t.Fatalf("ParseYear(%q) = %v, want %d", tt.raw, year, tt.wantYear)
			}
		})
	}
}

func TestSplitCredits(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantDirector string
		wantStars    string
	}{
		{
			"director and stars",
			"Director: F. Darabont | Stars: T. Robbins, M. Freeman",
			"F. Darabont",
			"T. Robbins, M. Freeman",
		},
		{"director only", "Director: C. Nolan", "C. Nolan", ""},
		{"no director prefix", "Somebody | Stars: A, B", "Somebody", "A, B"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			director, stars := SplitCredits(tt.raw)
			if director != tt.wantDirector {
				t.Fatalf("director = %q, want %q", director, tt.wantDirector)
			}
			if stars != tt.wantStars {
				t.Fatalf("stars = %q, want %q", stars, tt.wantStars)
			}
		})
	}
}

func TestParseVotesAndGross(t *testing.T) {
	info := "Votes: 2,343,110 | Gross: $28.34M"

	if votes := ParseVotes(info); votes != 2343110 {
		t.Fatalf("ParseVotes = %d, want 2343110", votes)
	}
	if gross := ParseGross(info); gross != "28.34M" {
		t.Fatalf("ParseGross = %q, want %q", gross, "28.34M")
	}

	if votes := ParseVotes("no votes here"); votes != 0 {
		t.Fatalf("ParseVotes on miss = %d, want 0", votes)
	}
	if gross := ParseGross("Gross: unknown"); gross != "" {
		t.Fatalf("ParseGross on miss = %q, want empty", gross)
	}
}

func TestParseRate(t *testing.T) {
	if rate := ParseRate("9.3"); rate == nil || *rate != 9.3 {
		t.Fatalf("ParseRate(9.3) = %v", rate)
	}
	if rate := ParseRate(" 8.1 "); rate == nil || *rate != 8.1 {
		t.Fatalf("ParseRate with spaces = %v", rate)
	}
	if rate := ParseRate("n/a"); rate != nil {
		t.Fatalf("ParseRate on miss = %v, want nil", rate)
	}
}

func TestConvertMalformedRow(t *testing.T) {
	// A row with nothing parseable must still convert; misses become empty
	// values rather than errors.
	rec := Convert(SourceRow{Title: "garbage", Cast: "nobody", Info: "???"})
	if rec.Title != "garbage" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if rec.Year != nil {
		t.Fatalf("Year = %v, want nil", rec.Year)
	}
	if rec.IMDBRating != nil {
		t.Fatalf("IMDBRating = %v, want nil", rec.IMDBRating)
	}
	if rec.Votes != 0 || rec.Gross != "" {
		t.Fatalf("Votes/Gross = %d/%q, want zero values", rec.Votes, rec.Gross)
	}
}

func TestConvertFullRow(t *testing.T) {
	rec := Convert(SourceRow{
		Title:       "1. The Shawshank Redemption (1994)",
		Certificate: "A",
		Duration:    "142 min",
		Genre:       "Drama",
		Rate:        "9.3",
		Description: "Two imprisoned men bond over a number of years.",
		Cast:        "Director: F. Darabont | Stars: T. Robbins, M. Freeman",
		Info:        "Votes: 2,343,110 | Gross: $28.34M",
	})

	if rec.Title != "The Shawshank Redemption" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if rec.Year == nil || *rec.Year != 1994 {
		t.Fatalf("Year = %v, want 1994", rec.Year)
	}
	if rec.Certificate != "A" || rec.Runtime != "142 min" || rec.Genre != "Drama" {
		t.Fatalf("passthrough fields wrong: %+v", rec)
	}
	if rec.IMDBRating == nil || *rec.IMDBRating != 9.3 {
		t.Fatalf("IMDBRating = %v, want 9.3", rec.IMDBRating)
	}
	if rec.Director != "F. Darabont" {
		t.Fatalf("Director = %q", rec.Director)
	}
	if rec.Stars != "T. Robbins, M. Freeman" {
		t.Fatalf("Stars = %q", rec.Stars)
	}
	if rec.Votes != 2343110 {
		t.Fatalf("Votes = %d", rec.Votes)
	}
	if rec.Gross != "28.34M" {
		t.Fatalf("Gross = %q", rec.Gross)
	}
}
