package sentiment

import (
	"testing"

	"github.com/filmshelf/filmshelf/internal/domain"
)

func FuzzNormalizeLabel(f *testing.F) {
	f.Add("POSITIVE")
	f.Add("negative")
	f.Add(" Neutral ")
	f.Add("")
	f.Add("MIXED")

	f.Fuzz(func(t *testing.T, label string) {
		got := NormalizeLabel(label)
		switch got {
		case domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative:
		default:
			t.Fatalf("NormalizeLabel(%q) = %q, not a known sentiment", label, got)
		}
	})
}
