package domain

import "time"

// Review is a user's free-text entry for a movie. At most one exists per
// (user, movie) pair and it is never updated once written.
type Review struct {
	ID        int64
	UserID    string
	MovieID   int64
	Text      string
	WrittenAt time.Time
}

// ReviewEntry is a review joined with its author's display name.
type ReviewEntry struct {
	ID        int64
	UserID    string
	Username  string
	Text      string
	WrittenAt time.Time
	Sentiment Sentiment
}

// Sentiment is an optional label attached to review text by an external
// classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)
