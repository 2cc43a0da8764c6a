package models

import "time"

// Movie represents a catalogued film and its derived review aggregate.
type Movie struct {
	// ID is the internal unique identifier of the movie.
	ID int64 `json:"id"`

	// Name is the display title of the movie. Always non-empty.
	Name string `json:"name"`

	// ReleaseDate is the calendar date the movie was released.
	ReleaseDate time.Time `json:"releaseDate"`

	// AverageRating is the arithmetic mean of all review ratings currently
	// referencing this movie. Nil when the movie has no reviews.
	// It is derived data: only the review repository writes it.
	AverageRating *float64 `json:"averageRating"`

	// CreatedAt is the timestamp when the movie record was created.
	CreatedAt time.Time `json:"createdAt"`

	// Reviews holds the embedded review list for endpoints that return a
	// movie together with its reviews. Empty (and omitted) elsewhere.
	Reviews []Review `json:"reviews,omitempty"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}
