package catalog

import (
	"strings"
	"testing"
)

func FuzzConvert(f *testing.F) {
	f.Add("1. The Shawshank Redemption (1994)", "Director: F. Darabont | Stars: T. Robbins", "Votes: 2,343,110 | Gross: $28.34M", "9.3")
	f.Add("", "", "", "")
	f.Add("(((", "Director: ", "Votes: ,,, Gross: $M", "NaN")

	f.Fuzz(func(t *testing.T, title, cast, info, rate string) {
		rec := Convert(SourceRow{Title: title, Cast: cast, Info: info, Rate: rate})

		if rec.Votes < 0 {
			t.Fatalf("votes must never be negative, got %d", rec.Votes)
		}
		if rec.Gross != "" && !strings.HasSuffix(rec.Gross, "M") {
			t.Fatalf("gross token must end in M, got %q", rec.Gross)
		}
		if rec.Year != nil && (*rec.Year < 0 || *rec.Year > 9999) {
			t.Fatalf("year out of range: %d", *rec.Year)
		}
		if strings.HasPrefix(rec.Title, " ") || strings.HasSuffix(rec.Title, " ") {
			t.Fatalf("title not trimmed: %q", rec.Title)
		}
	})
}
