package domain

import "time"

// Rating is a single user's 1-10 score for a movie. Resubmitting replaces the
// score and timestamp in place.
type Rating struct {
	UserID  string
	MovieID int64
	Score   int
	RatedAt time.Time
}

// RatingAggregate provides the average score and vote count for a movie.
// Average is nil when no ratings exist.
type RatingAggregate struct {
	Average *float64
	Count   int64
}
