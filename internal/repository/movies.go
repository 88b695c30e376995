package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmshelf/filmshelf/internal/domain"
)

// MoviesRepository persists the read-mostly catalog.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `
    movie_id,
    series_title,
    released_year,
    certificate,
    runtime,
    genre,
    imdb_rating,
    overview,
    director,
    stars,
    no_of_votes,
    gross
`

// MovieRecord bundles the parsed fields of one catalog row ready for insert.
type MovieRecord struct {
	Title       string
	Year        *int
	Certificate string
	Runtime     string
	Genre       string
	IMDBRating  *float64
	Overview    string
	Director    string
	Stars       string
	Votes       int64
	Gross       string
}

// ReplaceAll swaps the entire movies table for the given records inside a
// single transaction, so a crash mid-load never leaves a partial catalog.
// Dependent ratings and reviews go with the old rows via ON DELETE CASCADE.
func (r *MoviesRepository) ReplaceAll(ctx context.Context, records []MovieRecord) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin catalog load: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movies`); err != nil {
		return 0, fmt.Errorf("clear catalog: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
            INSERT INTO movies (
                series_title, released_year, certificate, runtime,
                genre, imdb_rating, overview, director, stars,
                no_of_votes, gross
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			rec.Title, rec.Year, rec.Certificate, rec.Runtime,
			rec.Genre, rec.IMDBRating, rec.Overview, rec.Director, rec.Stars,
			rec.Votes, rec.Gross)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert catalog rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit catalog load: %w", err)
	}
	return len(records), nil
}

// List returns every movie in storage order with the listing columns only.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.MovieSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT movie_id, series_title, released_year, imdb_rating
        FROM movies
        ORDER BY movie_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MovieSummary, 0)
	for rows.Next() {
		var m domain.MovieSummary
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.IMDBRating); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Get fetches the full record for one movie.
func (r *MoviesRepository) Get(ctx context.Context, id int64) (domain.Movie, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+movieColumns+` FROM movies WHERE movie_id = $1`, id)

	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Certificate,
		&movie.Runtime,
		&movie.Genre,
		&movie.IMDBRating,
		&movie.Overview,
		&movie.Director,
		&movie.Stars,
		&movie.Votes,
		&movie.Gross,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}
