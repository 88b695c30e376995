package domain

// Movie is the canonical catalog record. Year and IMDBRating are nil when the
// source row did not carry a parseable value.
type Movie struct {
	ID          int64
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

// MovieSummary carries the columns shown in catalog listings.
type MovieSummary struct {
	ID         int64
	Title      string
	Year       *int
	IMDBRating *float64
}
