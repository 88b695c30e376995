package catalog

import (
	"context"
	"log"

	"github.com/filmshelf/filmshelf/internal/repository"
)

// Loader turns source rows into movie records and replaces the catalog
// wholesale.
type Loader struct {
	movies *repository.MoviesRepository
	logger *log.Logger
}

// NewLoader constructs a Loader over the movies repository.
func NewLoader(movies *repository.MoviesRepository, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{movies: movies, logger: logger}
}

// Convert parses one source row into an insertable record.
func Convert(row SourceRow) repository.MovieRecord {
	director, stars := SplitCredits(row.Cast)
	return repository.MovieRecord{
		Title:       ParseTitle(row.Title),
		Year:        ParseYear(row.Title),
		Certificate: row.Certificate,
		Runtime:     row.Duration,
		Genre:       row.Genre,
		IMDBRating:  ParseRate(row.Rate),
		Overview:    row.Description,
		Director:    director,
		Stars:       stars,
		Votes:       ParseVotes(row.Info),
		Gross:       ParseGross(row.Info),
	}
}

// Load replaces the entire catalog with the given rows and returns the number
// of movies stored.
func (l *Loader) Load(ctx context.Context, rows []SourceRow) (int, error) {
	records := make([]repository.MovieRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, Convert(row))
	}

	count, err := l.movies.ReplaceAll(ctx, records)
	if err != nil {
		return 0, err
	}
	l.logger.Printf("catalog: loaded %d movies", count)
	return count, nil
}
